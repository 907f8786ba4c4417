package mappers

import (
	"fmt"

	"shop/internal/domain/product"
	"shop/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between product entities and persistence models
type ProductMapper interface {
	// ToEntity converts a product row and the subscriber rows linked to it into a domain entity
	ToEntity(model *models.ProductModel, subscribers []*models.SubscriberModel) (*product.Product, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *product.Product) *models.ProductModel
}

type productMapper struct{}

// NewProductMapper creates a new product mapper
func NewProductMapper() ProductMapper {
	return &productMapper{}
}

func (m *productMapper) ToEntity(model *models.ProductModel, subscribers []*models.SubscriberModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}

	refs := make([]product.SubscriberRef, 0, len(subscribers))
	for _, s := range subscribers {
		refs = append(refs, product.SubscriberRef{
			ID:         s.ID,
			FirstName:  s.FirstName,
			LastName:   s.LastName,
			JoinedDate: s.JoinedDate.UTC(),
		})
	}

	entity, err := product.ReconstructProduct(
		model.ID,
		model.Name,
		model.CreationDate.UTC(),
		model.UnderSale,
		refs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product: %w", err)
	}
	return entity, nil
}

func (m *productMapper) ToModel(entity *product.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}

	return &models.ProductModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		CreationDate: entity.CreationDate().UTC(),
		UnderSale:    entity.IsUnderSale(),
	}
}
