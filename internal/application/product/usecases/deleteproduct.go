package usecases

import (
	"context"
	"fmt"

	"shop/internal/application/product/dto"
	"shop/internal/domain/product"
	"shop/internal/domain/subscription"
	"shop/internal/shared/db"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type DeleteProductUseCase struct {
	productRepo product.Repository
	linkRepo    subscription.LinkRepository
	txMgr       db.Transactor
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo product.Repository,
	linkRepo subscription.LinkRepository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		linkRepo:    linkRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Execute removes the product from every subscriber and deletes it. The returned
// view is the product as it was before deletion, subscribers included.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID uint) (*dto.ProductDTO, error) {
	uc.logger.Infow("executing delete product use case", "product_id", productID)

	var deleted *product.Product
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.productRepo.GetByID(txCtx, productID)
		if err != nil {
			uc.logger.Errorw("failed to get product", "error", err, "product_id", productID)
			return fmt.Errorf("failed to get product: %w", err)
		}
		if p == nil {
			return errors.NewNotFoundError(product.NotFoundMessage(productID))
		}

		if err := uc.linkRepo.DeleteByProductID(txCtx, productID); err != nil {
			uc.logger.Errorw("failed to unlink product", "error", err, "product_id", productID)
			return fmt.Errorf("failed to unlink product: %w", err)
		}

		if err := uc.productRepo.Delete(txCtx, productID); err != nil {
			uc.logger.Errorw("failed to delete product", "error", err, "product_id", productID)
			return fmt.Errorf("failed to delete product: %w", err)
		}

		deleted = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("product deleted successfully", "product_id", productID, "unlinked", deleted.SubscriberCount())
	return dto.ToProductDTO(deleted), nil
}
