package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is a domain-specific error returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository defines the operations for property persistence.
type PropertyRepository interface {
	// FindByID retrieves a single property by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// ListByAccountID retrieves all properties owned by the given account,
	// ordered by creation time, newest first.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Property, error)

	// Create persists a new property entity to the storage.
	Create(ctx context.Context, property *entity.Property) error

	// Update modifies an existing property entity in the storage.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property from the storage.
	Delete(ctx context.Context, id uuid.UUID) error
}
