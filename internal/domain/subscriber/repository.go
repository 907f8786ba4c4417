package subscriber

import "context"

// Repository persists subscribers. GetByID returns nil, nil when the subscriber does not exist.
type Repository interface {
	Create(ctx context.Context, subscriber *Subscriber) error
	GetByID(ctx context.Context, id uint) (*Subscriber, error)
	List(ctx context.Context) ([]*Subscriber, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, subscriber *Subscriber) error
	Delete(ctx context.Context, id uint) error
}
