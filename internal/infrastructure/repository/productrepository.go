package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"shop/internal/domain/product"
	"shop/internal/infrastructure/persistence/mappers"
	"shop/internal/infrastructure/persistence/models"
	"shop/internal/shared/constants"
	"shop/internal/shared/db"
	"shop/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) product.Repository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

// linkedSubscriberRow is a subscriber row tagged with the product it is linked to.
type linkedSubscriberRow struct {
	ProductID  uint
	ID         uint
	FirstName  string
	LastName   string
	JoinedDate time.Time
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *product.Product) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(p)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Debugw("product created", "product_id", model.ID)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ProductModel
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	subscribers, err := r.loadSubscribers(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&model, subscribers[model.ID])
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := r.applyFilter(tx.Model(&models.ProductModel{}), filter)
	if filter.OrderByPopularity {
		query = query.
			Select(constants.TableProducts + ".*").
			Joins("LEFT JOIN " + constants.TableSubscriberProducts + " ON " + constants.TableSubscriberProducts + ".product_id = " + constants.TableProducts + ".id").
			Group(constants.TableProducts + ".id").
			Order("COUNT(" + constants.TableSubscriberProducts + ".id) DESC")
	}
	query = query.Scopes(db.OrderByID(constants.TableProducts))

	var productModels []*models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	ids := make([]uint, 0, len(productModels))
	for _, m := range productModels {
		ids = append(ids, m.ID)
	}
	subscribers, err := r.loadSubscribers(tx, ids)
	if err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(productModels))
	for _, m := range productModels {
		entity, err := r.mapper.ToEntity(m, subscribers[m.ID])
		if err != nil {
			return nil, err
		}
		products = append(products, entity)
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context, filter product.Filter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := r.applyFilter(tx.Model(&models.ProductModel{}), filter).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *product.Product) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ProductModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":       p.Name(),
			"under_sale": p.IsUnderSale(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update product", "error", err, "product_id", p.ID())
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.ProductModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete product", "error", err, "product_id", id)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) applyFilter(query *gorm.DB, filter product.Filter) *gorm.DB {
	if filter.UnderSale != nil {
		query = query.Where(constants.TableProducts+".under_sale = ?", *filter.UnderSale)
	}
	if filter.HasSubscribers {
		query = query.Where("EXISTS (SELECT 1 FROM " + constants.TableSubscriberProducts + " sp WHERE sp.product_id = " + constants.TableProducts + ".id)")
	}

	column := constants.TableProducts + ".creation_date"
	switch {
	case filter.CreatedFrom != nil && filter.CreatedTo != nil:
		query = query.Scopes(db.Between(column, filter.CreatedFrom.UTC(), filter.CreatedTo.UTC()))
	case filter.CreatedFrom != nil:
		query = query.Where(column+" >= ?", filter.CreatedFrom.UTC())
	case filter.CreatedTo != nil:
		query = query.Where(column+" <= ?", filter.CreatedTo.UTC())
	}
	return query
}

// loadSubscribers fetches the subscribers linked to each product, in link order.
func (r *ProductRepositoryImpl) loadSubscribers(tx *gorm.DB, productIDs []uint) (map[uint][]*models.SubscriberModel, error) {
	result := make(map[uint][]*models.SubscriberModel, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var rows []linkedSubscriberRow
	err := tx.Table(constants.TableSubscriberProducts+" AS sp").
		Select("sp.product_id AS product_id, s.id AS id, s.first_name AS first_name, s.last_name AS last_name, s.joined_date AS joined_date").
		Joins("JOIN "+constants.TableSubscribers+" s ON s.id = sp.subscriber_id").
		Where("sp.product_id IN ?", productIDs).
		Order("sp.id ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load product subscribers", "error", err, "product_ids", productIDs)
		return nil, fmt.Errorf("failed to load product subscribers: %w", err)
	}

	for _, row := range rows {
		result[row.ProductID] = append(result[row.ProductID], &models.SubscriberModel{
			ID:         row.ID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			JoinedDate: row.JoinedDate,
		})
	}
	return result, nil
}
