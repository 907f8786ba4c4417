package usecases

import (
	"context"
	"fmt"

	"shop/internal/domain/product"
	"shop/internal/shared/logger"
)

type CountProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCountProductsUseCase(productRepo product.Repository, logger logger.Interface) *CountProductsUseCase {
	return &CountProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute counts the products in scope. ScopePopular counts the same set as ScopeAll.
func (uc *CountProductsUseCase) Execute(ctx context.Context, scope Scope) (int64, error) {
	filter, err := scope.filter()
	if err != nil {
		return 0, err
	}
	filter.OrderByPopularity = false

	count, err := uc.productRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count products", "error", err, "scope", scope)
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
