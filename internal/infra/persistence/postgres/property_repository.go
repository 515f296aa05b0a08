package postgres

import (
	"context"
	"encoding/json"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// propertyRepository implements the domain.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// FindByID retrieves a single property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}
		if isUndefinedTable(err) {
			return nil, repository.ErrSchemaMissing
		}

		return nil, errors.Wrap(err, "failed to find property by id")
	}

	return toPropertyDomain(&propertyM)
}

// ListByAccountID retrieves all properties owned by the given account,
// ordered by creation time, newest first.
func (repo *propertyRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]entity.Property, error) {
	var propertyMs []model.PropertyModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&propertyMs).Error
	if err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrSchemaMissing
		}

		return nil, errors.Wrap(err, "failed to list properties by account id")
	}

	properties := make([]entity.Property, 0, len(propertyMs))
	for i := range propertyMs {
		property, err := toPropertyDomain(&propertyMs[i])
		if err != nil {
			return nil, err
		}
		properties = append(properties, *property)
	}

	return properties, nil
}

// Create persists a new property entity to the storage.
// The database generates the ID and timestamps, which are written back to the entity.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM, err := fromPropertyDomain(property)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrAccountNotFound.WrapMessage("property account does not exist")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property field")
		case isUndefinedTable(err):
			return repository.ErrSchemaMissing
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
		}
	}

	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// Update modifies an existing property entity in the storage.
// Save writes every column, so cleared fields are persisted as their zero value.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyM, err := fromPropertyDomain(property)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Save(propertyM)
	if result.Error != nil {
		switch {
		case isUndefinedTable(result.Error):
			return repository.ErrSchemaMissing
		default:
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
		}
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// Delete removes a property from the storage.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return repository.ErrSchemaMissing
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// toPropertyDomain maps the persistence model to the pure domain entity,
// decoding the jsonb feature and media documents.
func toPropertyDomain(m *model.PropertyModel) (*entity.Property, error) {
	var features []string
	if len(m.Features) > 0 {
		if err := json.Unmarshal(m.Features, &features); err != nil {
			return nil, errors.Wrap(err, "failed to decode property features")
		}
	}

	var media []entity.MediaItem
	if len(m.Media) > 0 {
		if err := json.Unmarshal(m.Media, &media); err != nil {
			return nil, errors.Wrap(err, "failed to decode property media")
		}
	}

	return &entity.Property{
		ID:              m.ID,
		AccountID:       m.AccountID,
		Title:           m.Title,
		Description:     m.Description,
		Type:            entity.PropertyType(m.Type),
		Status:          entity.PropertyStatus(m.Status),
		Neighborhood:    m.Neighborhood,
		City:            m.City,
		DisplayPrice:    m.DisplayPrice,
		PriceValue:      m.PriceValue,
		Area:            m.Area,
		Bedrooms:        m.Bedrooms,
		Suites:          m.Suites,
		Bathrooms:       m.Bathrooms,
		ParkingSpaces:   m.ParkingSpaces,
		Features:        features,
		Media:           media,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		ShowMap:         m.ShowMap,
		ShowFinancing:   m.ShowFinancing,
		ViewersMin:      m.ViewersMin,
		ViewersMax:      m.ViewersMax,
		WhatsAppMessage: m.WhatsAppMessage,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// fromPropertyDomain maps the domain entity to the persistence model,
// encoding features and media as jsonb documents.
func fromPropertyDomain(e *entity.Property) (*model.PropertyModel, error) {
	features := e.Features
	if features == nil {
		features = []string{}
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode property features")
	}

	media := e.Media
	if media == nil {
		media = []entity.MediaItem{}
	}
	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode property media")
	}

	return &model.PropertyModel{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Title:           e.Title,
		Description:     e.Description,
		Type:            string(e.Type),
		Status:          string(e.Status),
		Neighborhood:    e.Neighborhood,
		City:            e.City,
		DisplayPrice:    e.DisplayPrice,
		PriceValue:      e.PriceValue,
		Area:            e.Area,
		Bedrooms:        e.Bedrooms,
		Suites:          e.Suites,
		Bathrooms:       e.Bathrooms,
		ParkingSpaces:   e.ParkingSpaces,
		Features:        featuresJSON,
		Media:           mediaJSON,
		Latitude:        e.Latitude,
		Longitude:       e.Longitude,
		ShowMap:         e.ShowMap,
		ShowFinancing:   e.ShowFinancing,
		ViewersMin:      e.ViewersMin,
		ViewersMax:      e.ViewersMax,
		WhatsAppMessage: e.WhatsAppMessage,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}, nil
}
