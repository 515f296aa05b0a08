package impl

import (
	"context"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		Logger:    discardLogger(),
	})

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_Found(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	stored := &entity.AgentProfile{
		AccountID:     accountID,
		Name:          "Ana Souza",
		CRECI:         "12345",
		WhatsApp:      "(79) 98888-7766",
		HeaderMessage: "Fale comigo",
	}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	factory.EXPECT().NewAccountRepository().Return(mockRepo.NewMockAccountRepository(t))
	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(stored, nil)

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_GetProfile_MissingRowDegradesToDefaults(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)

	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrProfileNotFound)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(&entity.Account{ID: accountID, Name: "Ana Souza"}, nil)

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", profile.Name)
	assert.Equal(t, placeholderProfileCRECI, profile.CRECI)
	assert.Equal(t, placeholderProfileWhatsApp, profile.WhatsApp)
	assert.Equal(t, defaultProfilePhotoURL, profile.PhotoURL)
	assert.Equal(t, placeholderProfileGreeting, profile.HeaderMessage)
}

func TestProfileService_GetProfile_MissingSchemaDegradesToDefaults(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)

	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrSchemaMissing)
	accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrSchemaMissing)

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, placeholderProfileNameAdmin, profile.Name)
	assert.Equal(t, placeholderProfileCRECI, profile.CRECI)
}

func TestProfileService_GetProfile_UnexpectedError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	factory.EXPECT().NewAccountRepository().Return(mockRepo.NewMockAccountRepository(t))

	profileRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, errors.New("connection reset"))

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.GetProfile(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	input := &usecase.UpdateProfileInput{
		Name:          "Ana Souza",
		CRECI:         "12345",
		PhotoURL:      "https://cdn.example.com/ana.jpg",
		WhatsApp:      "5579988887766",
		HeaderMessage: "Olá, fale comigo",
	}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().
		Upsert(ctx, &entity.AgentProfile{
			AccountID:     accountID,
			Name:          "Ana Souza",
			CRECI:         "12345",
			PhotoURL:      "https://cdn.example.com/ana.jpg",
			WhatsApp:      "5579988887766",
			HeaderMessage: "Olá, fale comigo",
		}).
		Return(nil)

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.UpdateProfile(ctx, accountID, input)

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", profile.Name)
	assert.Equal(t, accountID, profile.AccountID)
}

func TestProfileService_UpdateProfile_MissingSchemaIsHardError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProfileRepository().Return(profileRepo)
	profileRepo.EXPECT().Upsert(ctx, anyProfile()).Return(repository.ErrSchemaMissing)

	expectExecute(fx.txManager, factory)

	profile, err := fx.service.UpdateProfile(ctx, accountID, &usecase.UpdateProfileInput{Name: "Ana"})

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrSchemaMissing))
}
