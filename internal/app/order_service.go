package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cimillas/provapub-api/internal/clock"
	"github.com/cimillas/provapub-api/internal/domain"
	"github.com/cimillas/provapub-api/internal/payment"
)

// MaxOrderValue is the largest amount an order can record.
var MaxOrderValue = decimal.RequireFromString("9999999999.99")

type OrderRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetCustomerForUpdate(ctx context.Context, customerID int64) (*domain.Customer, error)
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
}

// PaymentMethods resolves a payment method by name.
type PaymentMethods interface {
	Lookup(name string) (payment.Method, error)
}

type OrderService struct {
	repo    OrderRepository
	methods PaymentMethods
	clock   clock.Clock
}

func NewOrderService(repo OrderRepository, methods PaymentMethods, clk clock.Clock) *OrderService {
	return &OrderService{
		repo:    repo,
		methods: methods,
		clock:   clk,
	}
}

type PayOrderInput struct {
	PaymentMethod string
	Value         decimal.Decimal
	CustomerID    int64
}

// PayOrder charges the customer through the named payment method and records
// the order. A declined or failed payment leaves no order behind.
func (s *OrderService) PayOrder(ctx context.Context, in PayOrderInput) (domain.Order, error) {
	if in.CustomerID <= 0 {
		return domain.Order{}, &domain.OutOfRangeError{Param: "customerId"}
	}
	// Values carry at most two fraction digits and must fit NUMERIC(12,2).
	if !in.Value.IsPositive() || !in.Value.Equal(in.Value.Round(2)) || in.Value.GreaterThan(MaxOrderValue) {
		return domain.Order{}, &domain.OutOfRangeError{Param: "paymentValue"}
	}

	method, err := s.methods.Lookup(in.PaymentMethod)
	if err != nil {
		return domain.Order{}, err
	}

	now := s.clock.Now()
	var result domain.Order

	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		customer, err := s.repo.GetCustomerForUpdate(txCtx, in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return &domain.CustomerNotFoundError{CustomerID: in.CustomerID}
		}

		if err := method.Process(txCtx, payment.Payment{
			Reference:  uuid.New(),
			CustomerID: in.CustomerID,
			Amount:     in.Value,
		}); err != nil {
			return err
		}

		order, err := s.repo.CreateOrder(txCtx, domain.Order{
			CustomerID: in.CustomerID,
			Value:      in.Value,
			OrderDate:  now,
		})
		if err != nil {
			return err
		}

		result = order
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return result, nil
}
