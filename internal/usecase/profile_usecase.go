package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the full replacement state of the agent profile.
type UpdateProfileInput struct {
	Name          string
	CRECI         string
	PhotoURL      string
	WhatsApp      string
	HeaderMessage string
}

// ProfileUsecase defines the interface for agent profile operations.
type ProfileUsecase interface {
	// GetProfile returns the agent profile for the account. When the profile
	// row or the backing table is missing it returns a default profile
	// instead of failing, so a fresh deployment still renders.
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.AgentProfile, error)

	// UpdateProfile upserts the agent profile. Unlike reads, a missing
	// schema here is a hard error surfaced to the caller.
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.AgentProfile, error)
}
