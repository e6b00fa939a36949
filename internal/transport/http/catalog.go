package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cimillas/provapub-api/internal/domain"
)

// ProductLister is the minimal interface needed to list products.
type ProductLister interface {
	ListProducts(ctx context.Context, page int) (domain.Page[domain.Product], error)
}

// CustomerLister is the minimal interface needed to list customers.
type CustomerLister interface {
	ListCustomers(ctx context.Context, page int) (domain.Page[domain.Customer], error)
}

// HandleListProducts returns an HTTP handler for GET /products?page=N.
func HandleListProducts(svc ProductLister) http.HandlerFunc {
	return handleList(svc.ListProducts, func(p domain.Product) productResponse {
		return productResponse{ID: p.ID, Name: p.Name}
	})
}

// HandleListCustomers returns an HTTP handler for GET /customers?page=N.
func HandleListCustomers(svc CustomerLister) http.HandlerFunc {
	return handleList(svc.ListCustomers, func(c domain.Customer) customerResponse {
		return customerResponse{ID: c.ID, Name: c.Name}
	})
}

func handleList[T, R any](list func(context.Context, int) (domain.Page[T], error), convert func(T) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := parsePage(r)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidPage, "page must be an integer")
			return
		}

		res, err := list(r.Context(), page)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		items := make([]R, 0, len(res.Items))
		for _, item := range res.Items {
			items = append(items, convert(item))
		}
		writeJSON(w, http.StatusOK, pageResponse[R]{
			Items:      items,
			TotalCount: res.TotalCount,
			HasNext:    res.HasNext,
		})
	}
}

// parsePage defaults to the first page when the parameter is absent.
func parsePage(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}

type pageResponse[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"total_count"`
	HasNext    bool `json:"has_next"`
}

type productResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type customerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
