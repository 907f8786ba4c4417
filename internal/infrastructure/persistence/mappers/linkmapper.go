package mappers

import (
	"shop/internal/domain/subscription"
	"shop/internal/infrastructure/persistence/models"
)

// LinkMapper handles the conversion between links and join rows
type LinkMapper interface {
	ToEntity(model *models.SubscriberProductModel) *subscription.Link
	ToModel(entity *subscription.Link) *models.SubscriberProductModel
}

type linkMapper struct{}

// NewLinkMapper creates a new link mapper
func NewLinkMapper() LinkMapper {
	return &linkMapper{}
}

func (m *linkMapper) ToEntity(model *models.SubscriberProductModel) *subscription.Link {
	if model == nil {
		return nil
	}
	return subscription.ReconstructLink(model.SubscriberID, model.ProductID, model.CreatedAt.UTC())
}

func (m *linkMapper) ToModel(entity *subscription.Link) *models.SubscriberProductModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriberProductModel{
		SubscriberID: entity.SubscriberID(),
		ProductID:    entity.ProductID(),
		CreatedAt:    entity.CreatedAt().UTC(),
	}
}
