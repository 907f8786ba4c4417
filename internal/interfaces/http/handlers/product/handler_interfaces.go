package product

import (
	"context"

	"shop/internal/application/product/dto"
	"shop/internal/application/product/usecases"
)

// Use case interfaces for Handler

type addProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddProductCommand) (*dto.ProductDTO, error)
}

type getProductUseCase interface {
	Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, scope usecases.Scope) ([]*dto.ProductDTO, error)
}

type listProductsCreatedBetweenUseCase interface {
	Execute(ctx context.Context, query usecases.CreatedBetweenQuery) ([]*dto.ProductDTO, error)
}

type countProductsUseCase interface {
	Execute(ctx context.Context, scope usecases.Scope) (int64, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProductCommand) (*dto.ProductDTO, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error)
}
