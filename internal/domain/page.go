package domain

// Page is one slice of a listing plus what a client needs to request the next one.
type Page[T any] struct {
	Items      []T
	TotalCount int
	HasNext    bool
}
