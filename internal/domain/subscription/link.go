package subscription

import (
	"fmt"
	"time"

	"shop/internal/shared/biztime"
)

// Link associates a subscriber with a product it has subscribed to.
type Link struct {
	subscriberID uint
	productID    uint
	createdAt    time.Time
}

func NewLink(subscriberID, productID uint) (*Link, error) {
	if subscriberID == 0 {
		return nil, fmt.Errorf("subscriber ID cannot be zero")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}

	return &Link{
		subscriberID: subscriberID,
		productID:    productID,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructLink(subscriberID, productID uint, createdAt time.Time) *Link {
	return &Link{
		subscriberID: subscriberID,
		productID:    productID,
		createdAt:    createdAt,
	}
}

func (l *Link) SubscriberID() uint {
	return l.subscriberID
}

func (l *Link) ProductID() uint {
	return l.productID
}

func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}
