package migration

import (
	"shop/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns the models applied by the GORM strategy.
func AutoMigrateModels() []interface{} {
	return models.All()
}
