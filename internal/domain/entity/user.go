package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account. A user owns at most one cart and any
// number of orders and reviews.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Cart      *Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cart is the single shopping cart owned by a user.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Operator is a staff member who manages orders and products.
type Operator struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
