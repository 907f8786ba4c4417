package usecases

import (
	"context"
	"fmt"
	"time"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

// CreatedBetweenQuery bounds are inclusive.
type CreatedBetweenQuery struct {
	Start time.Time
	End   time.Time
}

type ListProductsCreatedBetweenUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsCreatedBetweenUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsCreatedBetweenUseCase {
	return &ListProductsCreatedBetweenUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsCreatedBetweenUseCase) Execute(ctx context.Context, query CreatedBetweenQuery) ([]*dto.ProductDTO, error) {
	if query.End.Before(query.Start) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	start, end := query.Start, query.End
	products, err := uc.productRepo.List(ctx, product.Filter{CreatedFrom: &start, CreatedTo: &end})
	if err != nil {
		uc.logger.Errorw("failed to list products by creation date", "error", err, "start", start, "end", end)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return dto.ToProductDTOList(products), nil
}
