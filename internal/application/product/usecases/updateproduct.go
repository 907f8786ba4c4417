package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type UpdateProductCommand struct {
	ID        uint
	Name      string
	UnderSale bool
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*dto.ProductDTO, error) {
	uc.logger.Infow("executing update product use case", "product_id", cmd.ID)

	p, err := uc.productRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ID)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError(product.NotFoundMessage(cmd.ID))
	}

	// creation date and subscribers are never touched by an update
	if err := p.Update(cmd.Name, cmd.UnderSale); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "error", err, "product_id", cmd.ID)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated successfully", "product_id", cmd.ID)
	return dto.ToProductDTO(p), nil
}
