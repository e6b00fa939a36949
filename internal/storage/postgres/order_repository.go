package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/provapub-api/internal/domain"
)

type OrderRepository struct {
	pool *pgxpool.Pool
	q    querier
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool, q: querier{pool: pool}}
}

func (r *OrderRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// GetCustomerForUpdate locks the customer row for the rest of the transaction,
// serializing concurrent payments by the same customer.
func (r *OrderRepository) GetCustomerForUpdate(ctx context.Context, customerID int64) (*domain.Customer, error) {
	const query = `
SELECT id, name
FROM customers
WHERE id = $1
FOR UPDATE`

	var c domain.Customer
	err := r.q.queryRow(ctx, query, customerID).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	const stmt = `
INSERT INTO orders (customer_id, value, order_date)
VALUES ($1, $2, $3)
RETURNING id`

	err := r.q.queryRow(ctx, stmt, order.CustomerID, order.Value, order.OrderDate).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Order{}, &domain.CustomerNotFoundError{CustomerID: order.CustomerID}
		}
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// CountOrders counts the customer's orders; with a non-nil since only orders
// dated at or after it are counted.
func (r *OrderRepository) CountOrders(ctx context.Context, customerID int64, since *time.Time) (int, error) {
	const query = `
SELECT COUNT(*)
FROM orders
WHERE customer_id = $1
  AND ($2::timestamptz IS NULL OR order_date >= $2::timestamptz)`

	var n int
	if err := r.q.queryRow(ctx, query, customerID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
