package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error) {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError(product.NotFoundMessage(productID))
	}

	return dto.ToProductDTO(p), nil
}
