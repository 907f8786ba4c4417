package product

import (
	"context"
	"time"
)

// Repository persists products. GetByID returns nil, nil when the product does not exist.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter Filter) ([]*Product, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}

// Filter narrows List and Count. The zero value selects every product in id order.
type Filter struct {
	UnderSale         *bool
	HasSubscribers    bool
	CreatedFrom       *time.Time
	CreatedTo         *time.Time
	OrderByPopularity bool
}
