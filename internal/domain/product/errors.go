package product

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("invalid product name")
	ErrProductNotFound = errors.New("product not found")
)

// NotFoundMessage returns the user facing text for a missing product.
// id is rendered as given so unparsable path values are echoed back.
func NotFoundMessage(id any) string {
	return fmt.Sprintf("Product with id %v not found.", id)
}

// NotOnSaleMessage returns the rejection text for linking a product that is not under sale.
func NotOnSaleMessage(name string) string {
	return fmt.Sprintf("Product %s is not under sale.", name)
}
