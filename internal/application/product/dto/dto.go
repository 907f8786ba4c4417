// Package dto holds the product view models returned by the product use cases.
package dto

import "shop/internal/shared/biztime"

// ProductDTO is the JSON view of a product with its subscribers.
type ProductDTO struct {
	ID           uint                    `json:"id" example:"1"`
	Name         string                  `json:"name" example:"Widget"`
	CreationDate biztime.Date            `json:"creationDate" swaggertype:"string" example:"2024-05-01"`
	UnderSale    bool                    `json:"underSale" example:"true"`
	Subscribers  []*ProductSubscriberDTO `json:"subscribers"`
}

// ProductSubscriberDTO is a subscriber as listed under a product. It carries no
// product list so the graph never nests back into products.
type ProductSubscriberDTO struct {
	FirstName  string       `json:"firstName" example:"John"`
	LastName   string       `json:"lastName" example:"Doe"`
	JoinedDate biztime.Date `json:"joinedDate" swaggertype:"string" example:"2024-05-02"`
}
