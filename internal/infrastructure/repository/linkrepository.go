package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shop/internal/domain/subscription"
	"shop/internal/infrastructure/persistence/mappers"
	"shop/internal/infrastructure/persistence/models"
	"shop/internal/shared/db"
	"shop/internal/shared/errors"
	"shop/internal/shared/logger"
)

type LinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LinkMapper
	logger logger.Interface
}

func NewLinkRepository(db *gorm.DB, logger logger.Interface) subscription.LinkRepository {
	return &LinkRepositoryImpl{
		db:     db,
		mapper: mappers.NewLinkMapper(),
		logger: logger,
	}
}

func (r *LinkRepositoryImpl) Exists(ctx context.Context, subscriberID, productID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.SubscriberProductModel{}).
		Where("subscriber_id = ? AND product_id = ?", subscriberID, productID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check link", "error", err, "subscriber_id", subscriberID, "product_id", productID)
		return false, fmt.Errorf("failed to check link: %w", err)
	}
	return count > 0, nil
}

// Create inserts the join row. A unique index violation is reported as subscription.ErrLinkExists.
func (r *LinkRepositoryImpl) Create(ctx context.Context, link *subscription.Link) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.ToModel(link)).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return fmt.Errorf("failed to create link: %w", subscription.ErrLinkExists)
		}
		r.logger.Errorw("failed to create link", "error", err, "subscriber_id", link.SubscriberID(), "product_id", link.ProductID())
		return fmt.Errorf("failed to create link: %w", err)
	}
	return nil
}

func (r *LinkRepositoryImpl) DeleteByProductID(ctx context.Context, productID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("product_id = ?", productID).Delete(&models.SubscriberProductModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete links by product", "error", err, "product_id", productID)
		return fmt.Errorf("failed to delete links by product: %w", err)
	}
	return nil
}

func (r *LinkRepositoryImpl) DeleteBySubscriberID(ctx context.Context, subscriberID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("subscriber_id = ?", subscriberID).Delete(&models.SubscriberProductModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete links by subscriber", "error", err, "subscriber_id", subscriberID)
		return fmt.Errorf("failed to delete links by subscriber: %w", err)
	}
	return nil
}
