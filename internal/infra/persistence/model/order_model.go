package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table. Details are
// owned by the order and written in the same transaction.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderDate  time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(50);not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	OperatorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Details    []OrderDetailModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel is the GORM-specific struct for the 'order_details' table.
type OrderDetailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
