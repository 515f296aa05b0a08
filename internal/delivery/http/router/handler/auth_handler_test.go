package handler

import (
	"net/http"
	"testing"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	mockusecase "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandlerRegister(t *testing.T) {
	t.Parallel()

	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "ana@example.com",
		Name:      "Ana Souza",
		CreatedAt: time.Now(),
	}

	t.Run("creates the account and omits the password hash", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		uc.EXPECT().
			Register(mock.Anything, &usecase.RegisterInput{
				Name:     "Ana Souza",
				Email:    "ana@example.com",
				Password: "segredo1",
			}).
			Return(&usecase.RegisterOutput{Account: account}, nil)

		h := NewAuthHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/auth/register", map[string]string{
			"name":     "Ana Souza",
			"email":    "ana@example.com",
			"password": "segredo1",
		})

		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got accountResponse
		decodeData(t, rec, &got)
		assert.Equal(t, account.ID.String(), got.ID)
		assert.Equal(t, "ana@example.com", got.Email)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("rejects an invalid email before reaching the usecase", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/auth/register", map[string]string{
			"name":     "Ana Souza",
			"email":    "not-an-email",
			"password": "segredo1",
		})

		requireHTTPError(t, h.Register(c), http.StatusBadRequest)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/auth/register", map[string]string{
			"name":     "Ana Souza",
			"email":    "ana@example.com",
			"password": "123",
		})

		requireHTTPError(t, h.Register(c), http.StatusBadRequest)
	})

	t.Run("propagates a duplicate email conflict", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		uc.EXPECT().
			Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrAccountAlreadyExists)

		h := NewAuthHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/auth/register", map[string]string{
			"name":     "Ana Souza",
			"email":    "ana@example.com",
			"password": "segredo1",
		})

		err := h.Register(c)
		require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Parallel()

	account := &entity.Account{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Name:  "Ana Souza",
	}

	t.Run("returns the access token and account", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		uc.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{
				Email:    "ana@example.com",
				Password: "segredo1",
			}).
			Return(&usecase.LoginOutput{AccessToken: "token-123", Account: account}, nil)

		h := NewAuthHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ana@example.com",
			"password": "segredo1",
		})

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got loginResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "token-123", got.AccessToken)
		assert.Equal(t, account.ID.String(), got.Account.ID)
	})

	t.Run("propagates invalid credentials", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockAuthUsecase(t)
		uc.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredentials)

		h := NewAuthHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ana@example.com",
			"password": "errada",
		})

		require.ErrorIs(t, h.Login(c), domainerrors.ErrInvalidCredentials)
	})
}
