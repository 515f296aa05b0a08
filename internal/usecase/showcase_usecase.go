package usecase

import (
	"context"

	"vitrine/internal/showcase"

	"github.com/google/uuid"
)

// PropertyPreview is the derived detail view of one listing, exactly what
// the public page shows when a visitor opens the property.
type PropertyPreview struct {
	Property      showcase.DisplayProperty
	Badge         string
	Tone          showcase.BadgeTone
	MapURL        string
	ContactLink   string
	ShowNav       bool
	FinancingOpen bool
}

// ShowcaseUsecase defines the interface for producing the public showcase
// artifacts: the self-contained HTML page, per-listing previews and the
// shareable QR code.
type ShowcaseUsecase interface {
	// GeneratePage snapshots the agent's profile and listings, projects
	// them through the display fallbacks and renders the full HTML page.
	GeneratePage(ctx context.Context, accountID uuid.UUID) ([]byte, error)

	// PreviewProperty opens the listing in a fresh view session and returns
	// the derived detail state. Unknown or foreign ids yield a not-found error.
	PreviewProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*PropertyPreview, error)

	// ShowcaseQR renders a PNG QR code pointing at the agent's public page.
	ShowcaseQR(ctx context.Context, accountID uuid.UUID) ([]byte, error)
}
