package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/showcase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propertyService implements the PropertyUsecase interface.
type propertyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// PropertyServiceParams holds dependencies for propertyService, injected by Fx.
type PropertyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPropertyService is the constructor for propertyService.
func NewPropertyService(params PropertyServiceParams) usecase.PropertyUsecase {
	return &propertyService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *propertyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProperties returns the account's listings in the requested order. A
// missing properties table degrades to an empty list with a warning, so the
// admin panel stays usable on an unprovisioned database.
func (srv *propertyService) ListProperties(ctx context.Context, accountID uuid.UUID, input *usecase.ListPropertiesInput) ([]entity.Property, error) {
	var properties []entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		found, err := propertyRepo.ListByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				srv.log(ctx).Warn("Tabela properties não encontrada, lista vazia",
					slog.String("accountID", accountID.String()))
				properties = []entity.Property{}

				return nil
			}

			return errors.Wrap(err, "failed to list properties")
		}
		properties = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if input != nil {
		sortProperties(properties, input.Sort, input.Descending)
	}

	return properties, nil
}

// GetProperty fetches one listing. Foreign ownership is reported as
// not-found so listing ids are not probeable across accounts.
func (srv *propertyService) GetProperty(ctx context.Context, accountID, propertyID uuid.UUID) (*entity.Property, error) {
	var property *entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOwned(ctx, repoFactory.NewPropertyRepository(), accountID, propertyID)
		if err != nil {
			return err
		}
		property = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return property, nil
}

// CreateProperty validates and persists a new listing. The display price is
// derived server-side from the numeric price.
func (srv *propertyService) CreateProperty(ctx context.Context, accountID uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	property := propertyFromInput(accountID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		if err := propertyRepo.Create(ctx, property); err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("properties table missing")
			}

			return errors.Wrap(err, "failed to create property")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Property created",
		slog.String("accountID", accountID.String()),
		slog.String("propertyID", property.ID.String()))

	return property, nil
}

// UpdateProperty replaces every writable field of an owned listing.
// CreatedAt is immutable and carried over from the stored row.
func (srv *propertyService) UpdateProperty(ctx context.Context, accountID, propertyID uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	var property *entity.Property

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		existing, err := srv.findOwned(ctx, propertyRepo, accountID, propertyID)
		if err != nil {
			return err
		}

		updated := propertyFromInput(accountID, input)
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt

		if err := propertyRepo.Update(ctx, updated); err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("properties table missing")
			}
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return domainerrors.ErrPropertyNotFound.WrapMessage("property vanished during update")
			}

			return errors.Wrap(err, "failed to update property")
		}
		property = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return property, nil
}

// DeleteProperty removes an owned listing.
func (srv *propertyService) DeleteProperty(ctx context.Context, accountID, propertyID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		propertyRepo := repoFactory.NewPropertyRepository()

		if _, err := srv.findOwned(ctx, propertyRepo, accountID, propertyID); err != nil {
			return err
		}

		if err := propertyRepo.Delete(ctx, propertyID); err != nil {
			if errors.Is(err, repository.ErrPropertyNotFound) {
				return domainerrors.ErrPropertyNotFound.WrapMessage("property already deleted")
			}

			return errors.Wrap(err, "failed to delete property")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Property deleted",
		slog.String("accountID", accountID.String()),
		slog.String("propertyID", propertyID.String()))

	return nil
}

// findOwned loads the listing and enforces ownership, collapsing every
// miss into the same not-found error.
func (srv *propertyService) findOwned(ctx context.Context, propertyRepo repository.PropertyRepository, accountID, propertyID uuid.UUID) (*entity.Property, error) {
	property, err := propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) || errors.Is(err, repository.ErrSchemaMissing) {
			return nil, domainerrors.ErrPropertyNotFound.WrapMessage("property not found")
		}

		return nil, errors.Wrap(err, "failed to find property")
	}
	if property.AccountID != accountID {
		return nil, domainerrors.ErrPropertyNotFound.WrapMessage("property owned by another account")
	}

	return property, nil
}

func validatePropertyInput(input *usecase.PropertyInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing property payload")
	}
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.ViewersMin < 0 || input.ViewersMax < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("viewer bounds must not be negative")
	}

	return nil
}

func propertyFromInput(accountID uuid.UUID, input *usecase.PropertyInput) *entity.Property {
	displayPrice := ""
	if input.Price > 0 {
		displayPrice = showcase.FormatBRL(input.Price)
	}

	return &entity.Property{
		AccountID:       accountID,
		Title:           input.Title,
		Description:     input.Description,
		Type:            entity.PropertyType(input.Type),
		Status:          entity.PropertyStatus(input.Status),
		Neighborhood:    input.Neighborhood,
		City:            input.City,
		DisplayPrice:    displayPrice,
		PriceValue:      input.Price,
		Area:            input.Area,
		Bedrooms:        input.Bedrooms,
		Suites:          input.Suites,
		Bathrooms:       input.Bathrooms,
		ParkingSpaces:   input.ParkingSpaces,
		Features:        input.Features,
		Media:           input.Media,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ShowMap:         input.ShowMap,
		ShowFinancing:   input.ShowFinancing,
		ViewersMin:      input.ViewersMin,
		ViewersMax:      input.ViewersMax,
		WhatsAppMessage: input.WhatsAppMessage,
	}
}

// sortProperties orders the slice in place. Ties keep their stored order,
// which is newest first.
func sortProperties(properties []entity.Property, key entity.PropertySort, descending bool) {
	var less func(a, b *entity.Property) bool

	switch key {
	case entity.SortByTitle:
		less = func(a, b *entity.Property) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case entity.SortByPrice:
		less = func(a, b *entity.Property) bool { return a.PriceValue < b.PriceValue }
	case entity.SortByStatus:
		less = func(a, b *entity.Property) bool { return a.Status < b.Status }
	case entity.SortByCreatedAt:
		less = func(a, b *entity.Property) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(properties, func(i, j int) bool {
		if descending {
			return less(&properties[j], &properties[i])
		}

		return less(&properties[i], &properties[j])
	})
}
