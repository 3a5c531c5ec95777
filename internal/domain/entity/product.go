package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item of the generic product sub-model. Unlike
// Clothing it carries no cross-entity creation constraints; its children
// (variants, photos, videos) are managed through their own workflows.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	CategoryID  uuid.UUID // Optional grouping; uuid.Nil when uncategorized.
	Variants    []*Variant
	Photos      []*Photo
	Videos      []*Video
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups products.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant is a sellable variation of a product (color/size) with its own
// stock count. A variant belongs to exactly one product.
type Variant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Color     string
	Size      string
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Photo is an image attached to a product.
type Photo struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	Caption   string
	CreatedAt time.Time
}

// Video is a video attached to a product.
type Video struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	URL         string
	Description string
	CreatedAt   time.Time
}
