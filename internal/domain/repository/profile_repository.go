package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the operations for agent profile persistence.
// Each account owns exactly one profile.
type ProfileRepository interface {
	// FindByAccountID retrieves the profile belonging to the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.AgentProfile, error)

	// Upsert creates the profile if absent or updates it in place.
	Upsert(ctx context.Context, profile *entity.AgentProfile) error
}
