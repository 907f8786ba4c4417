package models

import (
	"time"

	"shop/internal/shared/constants"
)

// SubscriberModel represents the database persistence model for subscribers
type SubscriberModel struct {
	ID         uint      `gorm:"primarykey"`
	FirstName  string    `gorm:"not null;size:15"`
	LastName   string    `gorm:"not null;size:15"`
	JoinedDate time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SubscriberModel) TableName() string {
	return constants.TableSubscribers
}
