package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// PropertyInput carries the writable fields of a listing. It is used both
// for creation and for full replacement on update.
type PropertyInput struct {
	Title           string
	Description     string
	Type            string
	Status          string
	Neighborhood    string
	City            string
	Price           float64
	Area            float64
	Bedrooms        int
	Suites          int
	Bathrooms       int
	ParkingSpaces   int
	Features        []string
	Media           []entity.MediaItem
	Latitude        float64
	Longitude       float64
	ShowMap         bool
	ShowFinancing   bool
	ViewersMin      int
	ViewersMax      int
	WhatsAppMessage string
}

// ListPropertiesInput selects the ordering of the admin listing.
type ListPropertiesInput struct {
	Sort       entity.PropertySort
	Descending bool
}

// PropertyUsecase defines the interface for listing management operations.
// Every operation is scoped to the authenticated account; reading or
// mutating another account's listing yields a not-found error.
type PropertyUsecase interface {
	ListProperties(ctx context.Context, accountID uuid.UUID, input *ListPropertiesInput) ([]entity.Property, error)
	GetProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*entity.Property, error)
	CreateProperty(ctx context.Context, accountID uuid.UUID, input *PropertyInput) (*entity.Property, error)
	UpdateProperty(ctx context.Context, accountID, propertyID uuid.UUID, input *PropertyInput) (*entity.Property, error)
	DeleteProperty(ctx context.Context, accountID, propertyID uuid.UUID) error
}
