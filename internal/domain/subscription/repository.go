package subscription

import "context"

// LinkRepository persists subscriber to product links.
type LinkRepository interface {
	Exists(ctx context.Context, subscriberID, productID uint) (bool, error)
	Create(ctx context.Context, link *Link) error
	DeleteByProductID(ctx context.Context, productID uint) error
	DeleteBySubscriberID(ctx context.Context, subscriberID uint) error
}
