// Package models holds the GORM persistence models.
package models

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&ProductModel{},
		&SubscriberModel{},
		&SubscriberProductModel{},
	}
}
