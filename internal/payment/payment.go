// Package payment holds the payment methods an order can be paid with and the
// registry that resolves them by name.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cimillas/provapub-api/internal/domain"
)

// Payment is a single charge request.
type Payment struct {
	Reference  uuid.UUID
	CustomerID int64
	Amount     decimal.Decimal
}

// Method processes payments of one kind. Process returns
// domain.ErrPaymentDeclined when the charge is refused.
type Method interface {
	Name() string
	Process(ctx context.Context, p Payment) error
}

// Registry resolves payment methods by case-insensitive name.
type Registry struct {
	methods map[string]Method
}

func NewRegistry(methods ...Method) *Registry {
	r := &Registry{methods: make(map[string]Method, len(methods))}
	for _, m := range methods {
		r.methods[strings.ToLower(m.Name())] = m
	}
	return r
}

func (r *Registry) Lookup(name string) (Method, error) {
	m, ok := r.methods[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentMethod, name)
	}
	return m, nil
}

// Names lists the registered method keys.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	return names
}
