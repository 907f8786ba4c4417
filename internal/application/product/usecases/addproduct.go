package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type AddProductCommand struct {
	Name      string
	UnderSale bool
}

type AddProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewAddProductUseCase(productRepo product.Repository, logger logger.Interface) *AddProductUseCase {
	return &AddProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *AddProductUseCase) Execute(ctx context.Context, cmd AddProductCommand) (*dto.ProductDTO, error) {
	uc.logger.Infow("executing add product use case", "name", cmd.Name)

	p, err := product.NewProduct(cmd.Name, cmd.UnderSale)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create product", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	uc.logger.Infow("product created successfully", "product_id", p.ID())
	return dto.ToProductDTO(p), nil
}
