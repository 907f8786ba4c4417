package http

import (
	"gorm.io/gorm"

	"shop/internal/domain/product"
	"shop/internal/domain/subscriber"
	"shop/internal/domain/subscription"
	"shop/internal/infrastructure/repository"
	"shop/internal/shared/db"
	"shop/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	productRepo    product.Repository
	subscriberRepo subscriber.Repository
	linkRepo       subscription.LinkRepository
	txMgr          *db.TransactionManager
}

func newRepositories(gormDB *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		productRepo:    repository.NewProductRepository(gormDB, log),
		subscriberRepo: repository.NewSubscriberRepository(gormDB, log),
		linkRepo:       repository.NewLinkRepository(gormDB, log),
		txMgr:          db.NewTransactionManager(gormDB),
	}
}
