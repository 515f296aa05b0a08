// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrine/internal/delivery/context"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Profile defaults written on registration. The photo placeholder keeps the
// showcase hero from rendering an empty avatar before the agent uploads one.
const (
	defaultProfilePhotoURL      = "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=256&q=80"
	defaultProfileHeaderMessage = "Olá, gostaria de saber mais sobre imóveis."
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and its default profile in one transaction,
// so a half-registered agent never exists.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var registered *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("accounts table missing")
			}

			return errors.Wrap(err, "failed to check existing account")
		}

		account := &entity.Account{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hashed,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("accounts table missing")
			}

			return errors.Wrap(err, "failed to create account")
		}

		profile := &entity.AgentProfile{
			AccountID:     account.ID,
			Name:          input.Name,
			PhotoURL:      defaultProfilePhotoURL,
			HeaderMessage: defaultProfileHeaderMessage,
		}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("agent_profiles table missing")
			}

			return errors.Wrap(err, "failed to create default profile")
		}

		registered = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Registration completed", slog.String("accountID", registered.ID.String()))

	return &usecase.RegisterOutput{Account: registered}, nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		found, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("account not found")
			}
			if errors.Is(err, repository.ErrSchemaMissing) {
				return domainerrors.ErrSchemaMissing.WrapMessage("accounts table missing")
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(account.ID, account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{AccessToken: token, Account: account}, nil
}
