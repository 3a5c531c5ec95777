package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left on a clothing item. A review belongs to exactly
// one clothing item and records which user authored it.
type Review struct {
	ID         uuid.UUID
	ClothingID uuid.UUID // The parent clothing item. Set from the request path by the service.
	UserID     uuid.UUID // The authoring user. Optional; uuid.Nil when anonymous.
	Rating     int       // Star rating, 1..5.
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
