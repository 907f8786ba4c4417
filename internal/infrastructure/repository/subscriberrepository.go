package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop/internal/domain/subscriber"
	"shop/internal/infrastructure/persistence/mappers"
	"shop/internal/infrastructure/persistence/models"
	"shop/internal/shared/constants"
	"shop/internal/shared/db"
	"shop/internal/shared/logger"
)

type SubscriberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriberMapper
	logger logger.Interface
}

func NewSubscriberRepository(db *gorm.DB, logger logger.Interface) subscriber.Repository {
	return &SubscriberRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriberMapper(),
		logger: logger,
	}
}

// linkedProductRow is a product row tagged with the subscriber it is linked to.
type linkedProductRow struct {
	SubscriberID uint
	ID           uint
	Name         string
	CreationDate time.Time
	UnderSale    bool
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, s *subscriber.Subscriber) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(s)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscriber", "error", err)
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Debugw("subscriber created", "subscriber_id", model.ID)
	return nil
}

func (r *SubscriberRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscriber.Subscriber, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SubscriberModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscriber by ID", "error", err, "subscriber_id", id)
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	products, err := r.loadProducts(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&model, products[model.ID])
}

func (r *SubscriberRepositoryImpl) List(ctx context.Context) ([]*subscriber.Subscriber, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var subscriberModels []*models.SubscriberModel
	if err := tx.Scopes(db.OrderByID(constants.TableSubscribers)).Find(&subscriberModels).Error; err != nil {
		r.logger.Errorw("failed to list subscribers", "error", err)
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	ids := make([]uint, 0, len(subscriberModels))
	for _, m := range subscriberModels {
		ids = append(ids, m.ID)
	}
	products, err := r.loadProducts(tx, ids)
	if err != nil {
		return nil, err
	}

	subscribers := make([]*subscriber.Subscriber, 0, len(subscriberModels))
	for _, m := range subscriberModels {
		entity, err := r.mapper.ToEntity(m, products[m.ID])
		if err != nil {
			return nil, err
		}
		subscribers = append(subscribers, entity)
	}
	return subscribers, nil
}

func (r *SubscriberRepositoryImpl) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.SubscriberModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscribers", "error", err)
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

func (r *SubscriberRepositoryImpl) Update(ctx context.Context, s *subscriber.Subscriber) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.SubscriberModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"first_name": s.FirstName(),
			"last_name":  s.LastName(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update subscriber", "error", err, "subscriber_id", s.ID())
		return fmt.Errorf("failed to update subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.SubscriberModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete subscriber", "error", err, "subscriber_id", id)
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

// loadProducts fetches the products linked to each subscriber, in link order.
func (r *SubscriberRepositoryImpl) loadProducts(tx *gorm.DB, subscriberIDs []uint) (map[uint][]*models.ProductModel, error) {
	result := make(map[uint][]*models.ProductModel, len(subscriberIDs))
	if len(subscriberIDs) == 0 {
		return result, nil
	}

	var rows []linkedProductRow
	err := tx.Table(constants.TableSubscriberProducts+" AS sp").
		Select("sp.subscriber_id AS subscriber_id, p.id AS id, p.name AS name, p.creation_date AS creation_date, p.under_sale AS under_sale").
		Joins("JOIN "+constants.TableProducts+" p ON p.id = sp.product_id").
		Where("sp.subscriber_id IN ?", subscriberIDs).
		Order("sp.id ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load subscriber products", "error", err, "subscriber_ids", subscriberIDs)
		return nil, fmt.Errorf("failed to load subscriber products: %w", err)
	}

	for _, row := range rows {
		result[row.SubscriberID] = append(result[row.SubscriberID], &models.ProductModel{
			ID:           row.ID,
			Name:         row.Name,
			CreationDate: row.CreationDate,
			UnderSale:    row.UnderSale,
		})
	}
	return result, nil
}
