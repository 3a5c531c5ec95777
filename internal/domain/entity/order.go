package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase placed by a user and handled by an operator. Order
// details are owned by the order and written in the same transaction.
type Order struct {
	ID         uuid.UUID
	OrderDate  time.Time
	Status     string
	UserID     uuid.UUID // The ordering user. Required; must reference a stored user.
	OperatorID uuid.UUID // The handling operator. Required; must reference a stored operator.
	Details    []*OrderDetail
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderDetail is a single line of an order, referencing the purchased product.
type OrderDetail struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID // Required; must reference a stored product.
	Quantity  int
	Price     float64
}
