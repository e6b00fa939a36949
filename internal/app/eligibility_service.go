package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cimillas/provapub-api/internal/clock"
	"github.com/cimillas/provapub-api/internal/domain"
)

var tracer = otel.Tracer("github.com/cimillas/provapub-api/internal/app")

// CustomerFinder returns nil, nil when the customer does not exist.
type CustomerFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// OrderHistory counts a customer's orders, optionally only those placed at or
// after since.
type OrderHistory interface {
	CountOrders(ctx context.Context, customerID int64, since *time.Time) (int, error)
}

// EligibilityService decides whether a customer may complete a purchase.
// It keeps no state between calls and is safe for concurrent use.
type EligibilityService struct {
	customers CustomerFinder
	orders    OrderHistory
	clock     clock.Clock
}

func NewEligibilityService(customers CustomerFinder, orders OrderHistory, clk clock.Clock) *EligibilityService {
	return &EligibilityService{
		customers: customers,
		orders:    orders,
		clock:     clk,
	}
}

// Decision is the outcome of an eligibility evaluation. Reason is empty when
// the purchase is allowed.
type Decision struct {
	Allowed bool
	Reason  DenialReason
	At      time.Time
}

// CanPurchase reports whether customerID may buy purchaseValue right now.
// Rule denials are a false result, never an error.
func (s *EligibilityService) CanPurchase(ctx context.Context, customerID int64, purchaseValue decimal.Decimal) (bool, error) {
	d, err := s.Evaluate(ctx, customerID, purchaseValue)
	if err != nil {
		return false, err
	}
	return d.Allowed, nil
}

// Evaluate runs the purchase rules in order and stops at the first denial:
// input validation, customer existence, one purchase per trailing month,
// first-purchase value cap, business hours.
func (s *EligibilityService) Evaluate(ctx context.Context, customerID int64, purchaseValue decimal.Decimal) (Decision, error) {
	if customerID <= 0 {
		return Decision{}, &domain.OutOfRangeError{Param: "customerId"}
	}
	if !purchaseValue.IsPositive() {
		return Decision{}, &domain.OutOfRangeError{Param: "purchaseValue"}
	}

	ctx, span := tracer.Start(ctx, "EligibilityService.Evaluate", trace.WithAttributes(
		attribute.Int64("customer.id", customerID),
		attribute.String("purchase.value", purchaseValue.StringFixed(2)),
	))
	defer span.End()

	d, err := s.evaluate(ctx, customerID, purchaseValue)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Decision{}, err
	}
	span.SetAttributes(
		attribute.Bool("purchase.allowed", d.Allowed),
		attribute.String("purchase.denial_reason", string(d.Reason)),
	)
	return d, nil
}

func (s *EligibilityService) evaluate(ctx context.Context, customerID int64, purchaseValue decimal.Decimal) (Decision, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return Decision{}, err
	}
	if customer == nil {
		return Decision{}, &domain.CustomerNotFoundError{CustomerID: customerID}
	}

	now := s.clock.Now()

	recent, err := s.hasOrderSince(ctx, customerID, oneMonthBefore(now))
	if err != nil {
		return Decision{}, err
	}
	if recent {
		return Decision{Reason: ReasonPurchasedThisMonth, At: now}, nil
	}

	// Returning customers are exempt from the cap; the monthly rule has
	// already run.
	returning, err := s.hasAnyOrder(ctx, customerID)
	if err != nil {
		return Decision{}, err
	}
	if !returning && !withinFirstPurchaseLimit(purchaseValue) {
		return Decision{Reason: ReasonFirstPurchaseLimit, At: now}, nil
	}

	if !withinBusinessHours(now) {
		return Decision{Reason: ReasonOutsideBusinessHours, At: now}, nil
	}

	return Decision{Allowed: true, Reason: ReasonNone, At: now}, nil
}

func (s *EligibilityService) hasOrderSince(ctx context.Context, customerID int64, since time.Time) (bool, error) {
	n, err := s.orders.CountOrders(ctx, customerID, &since)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *EligibilityService) hasAnyOrder(ctx context.Context, customerID int64) (bool, error) {
	n, err := s.orders.CountOrders(ctx, customerID, nil)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
