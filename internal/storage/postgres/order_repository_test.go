package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cimillas/provapub-api/internal/domain"
	"github.com/cimillas/provapub-api/internal/testutil"
)

func TestOrderRepository(t *testing.T) {
	pool := testutil.NewTestPool(t)
	repo := NewOrderRepository(pool)
	testutil.ApplyMigrations(t, context.Background(), pool)

	now := time.Date(2023, 10, 16, 10, 0, 0, 0, time.UTC)

	t.Run("CountOrders with and without lower bound", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		customerID := testutil.InsertCustomer(t, ctx, pool, "Ana")
		otherID := testutil.InsertCustomer(t, ctx, pool, "Bruno")
		testutil.InsertOrder(t, ctx, pool, customerID, "50.00", now.AddDate(0, -2, 0))
		testutil.InsertOrder(t, ctx, pool, customerID, "20.00", now.AddDate(0, -1, 0))
		testutil.InsertOrder(t, ctx, pool, otherID, "10.00", now)

		total, err := repo.CountOrders(ctx, customerID, nil)
		if err != nil {
			t.Fatalf("count orders: %v", err)
		}
		if total != 2 {
			t.Fatalf("expected 2 orders, got %d", total)
		}

		since := now.AddDate(0, -1, 0)
		recent, err := repo.CountOrders(ctx, customerID, &since)
		if err != nil {
			t.Fatalf("count orders since: %v", err)
		}
		if recent != 1 {
			t.Fatalf("expected lower bound to be inclusive, got %d", recent)
		}

		later := since.Add(time.Second)
		none, err := repo.CountOrders(ctx, customerID, &later)
		if err != nil {
			t.Fatalf("count orders since: %v", err)
		}
		if none != 0 {
			t.Fatalf("expected 0 orders, got %d", none)
		}
	})

	t.Run("CreateOrder persists exact decimal value", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		customerID := testutil.InsertCustomer(t, ctx, pool, "Ana")

		var created domain.Order
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			c, err := repo.GetCustomerForUpdate(txCtx, customerID)
			if err != nil {
				return err
			}
			if c == nil || c.Name != "Ana" {
				t.Fatalf("unexpected customer: %+v", c)
			}
			created, err = repo.CreateOrder(txCtx, domain.Order{
				CustomerID: customerID,
				Value:      decimal.RequireFromString("100.10"),
				OrderDate:  now,
			})
			return err
		})
		if err != nil {
			t.Fatalf("create order: %v", err)
		}
		if created.ID == 0 {
			t.Fatalf("expected order id to be assigned")
		}

		var value decimal.Decimal
		var orderDate time.Time
		if err := pool.QueryRow(ctx, `SELECT value, order_date FROM orders WHERE id = $1`, created.ID).Scan(&value, &orderDate); err != nil {
			t.Fatalf("query order: %v", err)
		}
		if !value.Equal(decimal.RequireFromString("100.1")) {
			t.Fatalf("expected value 100.10, got %s", value)
		}
		if !orderDate.Equal(now) {
			t.Fatalf("expected order date %v, got %v", now, orderDate)
		}
	})

	t.Run("CreateOrder for unknown customer", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		_, err := repo.CreateOrder(ctx, domain.Order{
			CustomerID: 99,
			Value:      decimal.NewFromInt(1),
			OrderDate:  now,
		})
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)
		customerID := testutil.InsertCustomer(t, ctx, pool, "Ana")

		errAbort := errors.New("abort")
		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			if _, err := repo.CreateOrder(txCtx, domain.Order{
				CustomerID: customerID,
				Value:      decimal.NewFromInt(5),
				OrderDate:  now,
			}); err != nil {
				return err
			}
			return errAbort
		})
		if !errors.Is(err, errAbort) {
			t.Fatalf("expected abort error, got %v", err)
		}

		n, err := repo.CountOrders(ctx, customerID, nil)
		if err != nil {
			t.Fatalf("count orders: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected rollback, found %d orders", n)
		}
	})

	t.Run("GetCustomerForUpdate returns nil for unknown id", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, pool)

		err := repo.WithTx(ctx, func(txCtx context.Context) error {
			c, err := repo.GetCustomerForUpdate(txCtx, 1)
			if err != nil {
				return err
			}
			if c != nil {
				t.Fatalf("expected nil customer, got %+v", c)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("tx failed: %v", err)
		}
	})
}
