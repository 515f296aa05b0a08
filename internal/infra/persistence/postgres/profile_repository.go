package postgres

import (
	"context"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByAccountID retrieves the profile belonging to the given account.
func (repo *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.AgentProfile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}
		if isUndefinedTable(err) {
			return nil, repository.ErrSchemaMissing
		}

		return nil, errors.Wrap(err, "failed to find profile by account id")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert creates the profile row if absent or updates it in place.
// The account id is the primary key, so ON CONFLICT covers both cases in one statement.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.AgentProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "creci", "photo_url", "whatsapp", "header_message", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrAccountNotFound.WrapMessage("profile account does not exist")
		case isUndefinedTable(err):
			return repository.ErrSchemaMissing
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
		}
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// toProfileDomain maps the persistence model to the pure domain entity.
func toProfileDomain(m *model.ProfileModel) *entity.AgentProfile {
	return &entity.AgentProfile{
		AccountID:     m.AccountID,
		Name:          m.Name,
		CRECI:         m.CRECI,
		PhotoURL:      m.PhotoURL,
		WhatsApp:      m.WhatsApp,
		HeaderMessage: m.HeaderMessage,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromProfileDomain maps the domain entity to the persistence model.
func fromProfileDomain(e *entity.AgentProfile) *model.ProfileModel {
	return &model.ProfileModel{
		AccountID:     e.AccountID,
		Name:          e.Name,
		CRECI:         e.CRECI,
		PhotoURL:      e.PhotoURL,
		WhatsApp:      e.WhatsApp,
		HeaderMessage: e.HeaderMessage,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
