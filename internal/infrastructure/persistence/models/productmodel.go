package models

import (
	"time"

	"shop/internal/shared/constants"
)

// ProductModel represents the database persistence model for products
type ProductModel struct {
	ID           uint      `gorm:"primarykey"`
	Name         string    `gorm:"not null;size:15"`
	CreationDate time.Time `gorm:"not null;index:idx_products_creation_date"`
	UnderSale    bool      `gorm:"not null;index:idx_products_under_sale"`
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return constants.TableProducts
}
