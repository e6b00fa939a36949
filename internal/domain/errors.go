package domain

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange           = errors.New("out of range")
	ErrInvalidState         = errors.New("invalid state")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentDeclined      = errors.New("payment declined")
)

// OutOfRangeError reports a structurally invalid argument.
type OutOfRangeError struct {
	Param string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, ErrOutOfRange)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CustomerNotFoundError is returned when a customer id is not in the store.
// The message wording is relied upon by API consumers; keep it as is.
type CustomerNotFoundError struct {
	CustomerID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("Customer Id %d does not exists", e.CustomerID)
}

func (e *CustomerNotFoundError) Is(target error) bool {
	return target == ErrInvalidState || target == ErrCustomerNotFound
}
