package domain

// Customer is a registered buyer.
type Customer struct {
	ID   int64
	Name string
}
