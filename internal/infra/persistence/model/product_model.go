package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Price       float64    `gorm:"type:numeric(12,2);not null"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Variants    []VariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Photos      []PhotoModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Videos      []VideoModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// VariantModel is the GORM-specific struct for the 'variants' table.
type VariantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Color     string    `gorm:"type:varchar(100);not null"`
	Size      string    `gorm:"type:varchar(50);not null"`
	Stock     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "variants"
}

// PhotoModel is the GORM-specific struct for the 'photos' table.
type PhotoModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Caption   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhotoModel) TableName() string {
	return "photos"
}

// VideoModel is the GORM-specific struct for the 'videos' table.
type VideoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	URL         string    `gorm:"type:varchar(500);not null"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
