package app

import (
	"context"

	"github.com/cimillas/provapub-api/internal/domain"
)

const DefaultPageSize = 10

type CatalogService struct {
	products  PageSource[domain.Product]
	customers PageSource[domain.Customer]
	pageSize  int
}

func NewCatalogService(products PageSource[domain.Product], customers PageSource[domain.Customer], opts ...CatalogServiceOption) *CatalogService {
	svc := &CatalogService{
		products:  products,
		customers: customers,
		pageSize:  DefaultPageSize,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CatalogServiceOption func(*CatalogService)

// WithPageSize overrides the default number of items per page.
func WithPageSize(n int) CatalogServiceOption {
	return func(s *CatalogService) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, page int) (domain.Page[domain.Product], error) {
	return Paginate(ctx, s.products, page, s.pageSize)
}

func (s *CatalogService) ListCustomers(ctx context.Context, page int) (domain.Page[domain.Customer], error) {
	return Paginate(ctx, s.customers, page, s.pageSize)
}
