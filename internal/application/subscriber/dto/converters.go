package dto

import (
	"shop/internal/domain/subscriber"
	"shop/internal/shared/biztime"
	"shop/internal/shared/mapper"
)

// ToSubscriberDTO converts a subscriber entity to its view model.
func ToSubscriberDTO(s *subscriber.Subscriber) *SubscriberDTO {
	if s == nil {
		return nil
	}

	return &SubscriberDTO{
		ID:         s.ID(),
		FirstName:  s.FirstName(),
		LastName:   s.LastName(),
		JoinedDate: biztime.NewDate(s.JoinedDate()),
		Products:   mapper.MapSlice(s.Products(), toSubscriberProductDTO),
	}
}

func ToSubscriberDTOList(subscribers []*subscriber.Subscriber) []*SubscriberDTO {
	return mapper.MapSlicePtr(subscribers, ToSubscriberDTO)
}

func toSubscriberProductDTO(ref subscriber.ProductRef) *SubscriberProductDTO {
	return &SubscriberProductDTO{
		Name:         ref.Name,
		CreationDate: biztime.NewDate(ref.CreationDate),
		UnderSale:    ref.UnderSale,
	}
}
