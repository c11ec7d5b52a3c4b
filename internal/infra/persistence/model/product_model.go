package model

import "time"

// ProductModel mirrors the 'products' table. CatalogID carries a unique index so concurrent id assignment collides.
type ProductModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	CatalogID int     `gorm:"uniqueIndex;not null"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Image     string  `gorm:"type:text;not null"`
	Category  string  `gorm:"type:varchar(64);not null;index"`
	NewPrice  float64 `gorm:"not null"`
	OldPrice  float64 `gorm:"not null"`
	Available bool    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
