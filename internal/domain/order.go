package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a paid purchase. Orders are never updated after insertion.
type Order struct {
	ID         int64
	CustomerID int64
	Value      decimal.Decimal
	OrderDate  time.Time
}
