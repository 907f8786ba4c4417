package db

import (
	"time"

	"gorm.io/gorm"
)

// Between is a GORM scope that keeps rows whose column lies in [start, end].
//
// Example usage:
//
//	tx.Model(&models.ProductModel{}).Scopes(db.Between("creation_date", start, end)).Find(&rows)
func Between(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", start, end)
	}
}

// OrderByID orders rows of table by primary key, which matches insertion order.
// The column is qualified so the scope stays unambiguous on joined queries.
func OrderByID(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if table == "" {
			return db.Order("id ASC")
		}
		return db.Order(table + ".id ASC")
	}
}
