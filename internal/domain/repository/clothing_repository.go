// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for clothing persistence.
var (
	// ErrClothingNotFound is returned when a clothing item is not found.
	ErrClothingNotFound = errors.New("clothing item not found")
	// ErrDuplicateSKU is returned when a unique SKU constraint is violated on write.
	ErrDuplicateSKU = errors.New("sku already exists")
)

// ClothingRepository defines the interface for clothing-related database operations.
type ClothingRepository interface {
	// Create persists a new clothing item and fills in the generated id and timestamps.
	Create(ctx context.Context, clothing *entity.Clothing) error

	// FindAll retrieves every stored clothing item, brand included.
	FindAll(ctx context.Context) ([]*entity.Clothing, error)

	// FindByID retrieves a clothing item by id with its brand and designers loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Clothing, error)

	// FindBySKU retrieves the clothing item carrying the given SKU.
	FindBySKU(ctx context.Context, sku string) (*entity.Clothing, error)

	// Save overwrites every field of an existing clothing item.
	Save(ctx context.Context, clothing *entity.Clothing) error

	// Delete removes a clothing item by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
