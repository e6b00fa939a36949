package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/provapub-api/internal/domain"
)

type ProductRepository struct {
	q querier
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{q: querier{pool: pool}}
}

func (r *ProductRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	const query = `
SELECT id, name
FROM products
ORDER BY id ASC
OFFSET $1 LIMIT $2`

	rows, err := r.q.query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate products: %w", rows.Err())
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.queryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}
