package usecases

import (
	"fmt"

	"shop/internal/domain/product"
)

// Scope selects which products a list or count covers.
type Scope string

const (
	ScopeAll     Scope = "all"
	ScopeSold    Scope = "sold"
	ScopeActive  Scope = "active"
	ScopePopular Scope = "popular"
)

// filter translates a scope into a repository filter.
func (s Scope) filter() (product.Filter, error) {
	switch s {
	case ScopeAll, "":
		return product.Filter{}, nil
	case ScopeSold:
		return product.Filter{HasSubscribers: true}, nil
	case ScopeActive:
		underSale := true
		return product.Filter{UnderSale: &underSale}, nil
	case ScopePopular:
		return product.Filter{OrderByPopularity: true}, nil
	default:
		return product.Filter{}, fmt.Errorf("unknown product scope %q", s)
	}
}
