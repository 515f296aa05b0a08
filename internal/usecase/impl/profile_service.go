package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Stand-in profile served while the schema or the profile row is missing.
// Mirrors what a fresh deployment shows before the setup script runs.
const (
	placeholderProfileName      = "Seu Nome"
	placeholderProfileCRECI     = "00000"
	placeholderProfileWhatsApp  = "5511999999999"
	placeholderProfileGreeting  = "Olá, gostaria de saber mais sobre imóveis de alto padrão."
	placeholderProfileNameAdmin = "Admin"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the agent profile, degrading to placeholder defaults
// when the row or the whole table is missing. Reads never fail on an
// unprovisioned database; only unexpected errors propagate.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.AgentProfile, error) {
	var profile *entity.AgentProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		accountRepo := repoFactory.NewAccountRepository()

		found, err := profileRepo.FindByAccountID(ctx, accountID)
		if err == nil {
			profile = found

			return nil
		}

		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			// Normal for accounts created before the profile table existed.
		case errors.Is(err, repository.ErrSchemaMissing):
			srv.log(ctx).Warn("Tabela agent_profiles não encontrada, usando perfil padrão",
				slog.String("accountID", accountID.String()))
		default:
			return errors.Wrap(err, "failed to find profile")
		}

		name := placeholderProfileNameAdmin
		account, accErr := accountRepo.FindByID(ctx, accountID)
		if accErr == nil && account.Name != "" {
			name = account.Name
		}

		profile = placeholderProfile(accountID, name)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile upserts the full profile state. A missing schema here is a
// hard error carrying the setup instruction, unlike the read path.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.AgentProfile, error) {
	srv.log(ctx).Info("Updating profile", slog.String("accountID", accountID.String()))

	profile := &entity.AgentProfile{
		AccountID:     accountID,
		Name:          input.Name,
		CRECI:         input.CRECI,
		PhotoURL:      input.PhotoURL,
		WhatsApp:      input.WhatsApp,
		HeaderMessage: input.HeaderMessage,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		if err := profileRepo.Upsert(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("agent_profiles table missing")
			}

			return errors.Wrap(err, "failed to upsert profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func placeholderProfile(accountID uuid.UUID, name string) *entity.AgentProfile {
	if name == "" {
		name = placeholderProfileName
	}

	return &entity.AgentProfile{
		AccountID:     accountID,
		Name:          name,
		CRECI:         placeholderProfileCRECI,
		PhotoURL:      defaultProfilePhotoURL,
		WhatsApp:      placeholderProfileWhatsApp,
		HeaderMessage: placeholderProfileGreeting,
	}
}
