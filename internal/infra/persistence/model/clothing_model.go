// Package model contains the GORM-specific structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClothingModel is the GORM-specific struct for the 'clothing_items' table.
// The SKU carries a unique index; the brand is a mandatory reference and the
// designers relation goes through the 'clothing_designers' join table.
type ClothingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	SKU         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Image       string    `gorm:"type:varchar(500)"`
	Description string    `gorm:"type:text"`
	ReleaseDate time.Time
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Brand       *BrandModel     `gorm:"foreignKey:BrandID"`
	Designers   []DesignerModel `gorm:"many2many:clothing_designers"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClothingModel) TableName() string {
	return "clothing_items"
}

// BrandModel is the GORM-specific struct for the 'brands' table.
type BrandModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// DesignerModel is the GORM-specific struct for the 'designers' table.
type DesignerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DesignerModel) TableName() string {
	return "designers"
}
