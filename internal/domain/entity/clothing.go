// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clothing is a catalog item of the clothing sub-model. A clothing item
// always belongs to exactly one Brand; the Brand value carried here is the
// canonical stored brand once the item has passed through the service layer.
type Clothing struct {
	ID          uuid.UUID   // Store-assigned identifier, immutable after creation.
	Name        string      // Display name of the item.
	SKU         string      // Stock keeping unit; must be non-empty and unique at creation.
	Image       string      // URL of the primary image.
	Description string      // Free-form description.
	ReleaseDate time.Time   // Date the item was released to the catalog.
	Brand       *Brand      // The owning brand. Required; resolved to the stored brand on create.
	Designers   []*Designer // Designers associated with the item. A non-empty list blocks deletion.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Brand groups clothing items under a label. Brands are referenced by
// clothing items but do not own them.
type Brand struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Designer is associated with clothing items through a many-to-many relation.
type Designer struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
