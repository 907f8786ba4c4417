// Package dto holds the subscriber view models returned by the subscriber use cases.
package dto

import "shop/internal/shared/biztime"

// SubscriberDTO is the JSON view of a subscriber with the products it is linked to.
type SubscriberDTO struct {
	ID         uint                    `json:"id" example:"1"`
	FirstName  string                  `json:"firstName" example:"John"`
	LastName   string                  `json:"lastName" example:"Doe"`
	JoinedDate biztime.Date            `json:"joinedDate" swaggertype:"string" example:"2024-05-02"`
	Products   []*SubscriberProductDTO `json:"products"`
}

// SubscriberProductDTO is a product as listed under a subscriber.
type SubscriberProductDTO struct {
	Name         string       `json:"name" example:"Widget"`
	CreationDate biztime.Date `json:"creationDate" swaggertype:"string" example:"2024-05-01"`
	UnderSale    bool         `json:"underSale" example:"true"`
}
