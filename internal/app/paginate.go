package app

import (
	"context"
	"math"

	"github.com/sourcegraph/conc/pool"

	"github.com/cimillas/provapub-api/internal/domain"
)

// PageSource is any listing that can be read with skip/take semantics.
type PageSource[T any] interface {
	List(ctx context.Context, offset, limit int) ([]T, error)
	Count(ctx context.Context) (int, error)
}

// Paginate returns the 1-based page of src. The item query and the count
// query run concurrently; the first failure cancels the other.
func Paginate[T any](ctx context.Context, src PageSource[T], page, pageSize int) (domain.Page[T], error) {
	if page < 1 {
		return domain.Page[T]{}, &domain.OutOfRangeError{Param: "page"}
	}
	if pageSize < 1 {
		return domain.Page[T]{}, &domain.OutOfRangeError{Param: "pageSize"}
	}

	var (
		items []T
		total int
	)
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	// A page whose offset does not fit in an int is past any real listing.
	if page-1 <= math.MaxInt/pageSize {
		p.Go(func(ctx context.Context) error {
			var err error
			items, err = src.List(ctx, (page-1)*pageSize, pageSize)
			return err
		})
	}
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = src.Count(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		return domain.Page[T]{}, err
	}

	if items == nil {
		items = []T{}
	}
	return domain.Page[T]{
		Items:      items,
		TotalCount: total,
		HasNext:    page-1 < (total-1)/pageSize,
	}, nil
}
