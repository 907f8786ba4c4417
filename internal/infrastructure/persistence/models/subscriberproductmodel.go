package models

import (
	"time"

	"shop/internal/shared/constants"
)

// SubscriberProductModel is the join row linking a subscriber to a product.
// The unique index makes a duplicate link impossible even under concurrent inserts.
type SubscriberProductModel struct {
	ID           uint      `gorm:"primarykey"`
	SubscriberID uint      `gorm:"not null;uniqueIndex:uk_subscriber_product,priority:1"`
	ProductID    uint      `gorm:"not null;uniqueIndex:uk_subscriber_product,priority:2;index:idx_subscriber_products_product_id"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SubscriberProductModel) TableName() string {
	return constants.TableSubscriberProducts
}
