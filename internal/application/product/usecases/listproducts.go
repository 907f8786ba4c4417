package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/shared/logger"
)

// ListProductsUseCase lists every product, the sold ones, the active ones or all of
// them ordered by subscriber count, depending on the scope.
type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, scope Scope) ([]*dto.ProductDTO, error) {
	filter, err := scope.filter()
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err, "scope", scope)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return dto.ToProductDTOList(products), nil
}
