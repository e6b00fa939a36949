package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/provapub-api/internal/domain"
)

type CustomerRepository struct {
	q querier
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{q: querier{pool: pool}}
}

// FindByID returns nil, nil when no customer has the given id.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const query = `SELECT id, name FROM customers WHERE id = $1`

	var c domain.Customer
	err := r.q.queryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, offset, limit int) ([]domain.Customer, error) {
	const query = `
SELECT id, name
FROM customers
ORDER BY id ASC
OFFSET $1 LIMIT $2`

	rows, err := r.q.query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		var c domain.Customer
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
