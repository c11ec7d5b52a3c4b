// Package model holds the GORM persistence models. They mirror the goose migrations in the postgres package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;default:''"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	CartItems []CartItemModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CartItemModel mirrors the 'cart_items' table. One row per (user, item) with a non-negative quantity.
type CartItemModel struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID   string    `gorm:"type:varchar(64);primaryKey"`
	Quantity int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
