package dto

import (
	"shop/internal/domain/product"
	"shop/internal/shared/biztime"
	"shop/internal/shared/mapper"
)

// ToProductDTO converts a product entity to its view model.
func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}

	return &ProductDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		CreationDate: biztime.NewDate(p.CreationDate()),
		UnderSale:    p.IsUnderSale(),
		Subscribers:  mapper.MapSlice(p.Subscribers(), toProductSubscriberDTO),
	}
}

// ToProductDTOList converts products in order. Returns an empty slice for empty input.
func ToProductDTOList(products []*product.Product) []*ProductDTO {
	return mapper.MapSlicePtr(products, ToProductDTO)
}

func toProductSubscriberDTO(ref product.SubscriberRef) *ProductSubscriberDTO {
	return &ProductSubscriberDTO{
		FirstName:  ref.FirstName,
		LastName:   ref.LastName,
		JoinedDate: biztime.NewDate(ref.JoinedDate),
	}
}
