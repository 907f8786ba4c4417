package mappers

import (
	"fmt"

	"shop/internal/domain/subscriber"
	"shop/internal/infrastructure/persistence/models"
)

// SubscriberMapper handles the conversion between subscriber entities and persistence models
type SubscriberMapper interface {
	// ToEntity converts a subscriber row and the product rows linked to it into a domain entity
	ToEntity(model *models.SubscriberModel, products []*models.ProductModel) (*subscriber.Subscriber, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *subscriber.Subscriber) *models.SubscriberModel
}

type subscriberMapper struct{}

// NewSubscriberMapper creates a new subscriber mapper
func NewSubscriberMapper() SubscriberMapper {
	return &subscriberMapper{}
}

func (m *subscriberMapper) ToEntity(model *models.SubscriberModel, products []*models.ProductModel) (*subscriber.Subscriber, error) {
	if model == nil {
		return nil, nil
	}

	refs := make([]subscriber.ProductRef, 0, len(products))
	for _, p := range products {
		refs = append(refs, subscriber.ProductRef{
			ID:           p.ID,
			Name:         p.Name,
			CreationDate: p.CreationDate.UTC(),
			UnderSale:    p.UnderSale,
		})
	}

	entity, err := subscriber.ReconstructSubscriber(
		model.ID,
		model.FirstName,
		model.LastName,
		model.JoinedDate.UTC(),
		refs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscriber: %w", err)
	}
	return entity, nil
}

func (m *subscriberMapper) ToModel(entity *subscriber.Subscriber) *models.SubscriberModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriberModel{
		ID:         entity.ID(),
		FirstName:  entity.FirstName(),
		LastName:   entity.LastName(),
		JoinedDate: entity.JoinedDate().UTC(),
	}
}
