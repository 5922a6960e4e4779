package service

import "fmt"

// ValidationError rejects a malformed or incomplete request before any
// storage access happens.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// ProductNotFoundError aborts order creation when a requested product id
// is not in the catalog. No partial order is left behind.
type ProductNotFoundError struct {
	ProductID uint
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}
