package impl

import (
	"context"
	"testing"
	"time"

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

// propertyServiceFixtures holds all test dependencies for property service tests.
type propertyServiceFixtures struct {
	service   usecase.PropertyUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestPropertyService(t *testing.T) propertyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewPropertyService(PropertyServiceParams{
		TxManager: txManager,
		Logger:    discardLogger(),
	})

	return propertyServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func propertyFactory(t *testing.T, propertyRepo *mockRepo.MockPropertyRepository) *mockRepo.MockRepositoryFactory {
	t.Helper()
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPropertyRepository().Return(propertyRepo)

	return factory
}

func TestPropertyService_ListProperties_SchemaMissingDegradesToEmpty(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().ListByAccountID(ctx, accountID).Return(nil, repository.ErrSchemaMissing)
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	properties, err := fx.service.ListProperties(ctx, accountID, nil)

	require.NoError(t, err)
	assert.Empty(t, properties)
	assert.NotNil(t, properties)
}

func TestPropertyService_ListProperties_Sorting(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	stored := []entity.Property{
		{Title: "Cobertura Norte", PriceValue: 900000, Status: entity.StatusReservado, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "Apartamento Sul", PriceValue: 450000, Status: entity.StatusDisponivel, CreatedAt: base.Add(time.Hour)},
		{Title: "Casa Centro", PriceValue: 700000, Status: entity.StatusVendido, CreatedAt: base},
	}

	tests := []struct {
		name       string
		input      *usecase.ListPropertiesInput
		wantTitles []string
	}{
		{
			name:       "default keeps stored order",
			input:      nil,
			wantTitles: []string{"Cobertura Norte", "Apartamento Sul", "Casa Centro"},
		},
		{
			name:       "title ascending",
			input:      &usecase.ListPropertiesInput{Sort: entity.SortByTitle},
			wantTitles: []string{"Apartamento Sul", "Casa Centro", "Cobertura Norte"},
		},
		{
			name:       "price descending",
			input:      &usecase.ListPropertiesInput{Sort: entity.SortByPrice, Descending: true},
			wantTitles: []string{"Cobertura Norte", "Casa Centro", "Apartamento Sul"},
		},
		{
			name:       "created_at ascending",
			input:      &usecase.ListPropertiesInput{Sort: entity.SortByCreatedAt},
			wantTitles: []string{"Casa Centro", "Apartamento Sul", "Cobertura Norte"},
		},
		{
			name:       "status ascending",
			input:      &usecase.ListPropertiesInput{Sort: entity.SortByStatus},
			wantTitles: []string{"Apartamento Sul", "Cobertura Norte", "Casa Centro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPropertyService(t)
			ctx := context.Background()
			accountID := uuid.New()

			propertyRepo := mockRepo.NewMockPropertyRepository(t)
			propertyRepo.EXPECT().
				ListByAccountID(ctx, accountID).
				Return(append([]entity.Property(nil), stored...), nil)
			expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

			properties, err := fx.service.ListProperties(ctx, accountID, tt.input)

			require.NoError(t, err)
			titles := make([]string, 0, len(properties))
			for i := range properties {
				titles = append(titles, properties[i].Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestPropertyService_GetProperty_ForeignOwnerIsNotFound(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().
		FindByID(ctx, propertyID).
		Return(&entity.Property{ID: propertyID, AccountID: uuid.New()}, nil)
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	property, err := fx.service.GetProperty(ctx, accountID, propertyID)

	require.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}

func TestPropertyService_CreateProperty_DerivesDisplayPrice(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()
	newID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().
		Create(ctx, anyProperty()).
		RunAndReturn(func(_ context.Context, property *entity.Property) error {
			property.ID = newID
			return nil
		})
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	property, err := fx.service.CreateProperty(ctx, accountID, &usecase.PropertyInput{
		Title: "Apartamento Jardins",
		Price: 550000,
	})

	require.NoError(t, err)
	assert.Equal(t, newID, property.ID)
	assert.Equal(t, accountID, property.AccountID)
	assert.Equal(t, "R$ 550.000,00", property.DisplayPrice)
}

func TestPropertyService_CreateProperty_ZeroPriceKeepsDisplayEmpty(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().Create(ctx, anyProperty()).Return(nil)
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	property, err := fx.service.CreateProperty(ctx, accountID, &usecase.PropertyInput{
		Title: "Terreno Mosqueiro",
	})

	require.NoError(t, err)
	assert.Empty(t, property.DisplayPrice)
}

func TestPropertyService_CreateProperty_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.PropertyInput
	}{
		{name: "nil payload", input: nil},
		{name: "blank title", input: &usecase.PropertyInput{Title: "   "}},
		{name: "negative price", input: &usecase.PropertyInput{Title: "Casa", Price: -1}},
		{name: "negative viewers", input: &usecase.PropertyInput{Title: "Casa", ViewersMin: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPropertyService(t)

			property, err := fx.service.CreateProperty(context.Background(), uuid.New(), tt.input)

			require.Error(t, err)
			assert.Nil(t, property)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestPropertyService_UpdateProperty_PreservesCreatedAt(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()
	createdAt := time.Date(2025, 11, 20, 8, 30, 0, 0, time.UTC)

	existing := &entity.Property{
		ID:        propertyID,
		AccountID: accountID,
		Title:     "Título antigo",
		CreatedAt: createdAt,
	}

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(existing, nil)
	propertyRepo.EXPECT().
		Update(ctx, anyProperty()).
		RunAndReturn(func(_ context.Context, property *entity.Property) error {
			assert.Equal(t, propertyID, property.ID)
			assert.Equal(t, createdAt, property.CreatedAt)
			assert.Equal(t, "Título novo", property.Title)
			return nil
		})
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	property, err := fx.service.UpdateProperty(ctx, accountID, propertyID, &usecase.PropertyInput{
		Title: "Título novo",
		Price: 320000,
	})

	require.NoError(t, err)
	assert.Equal(t, createdAt, property.CreatedAt)
	assert.Equal(t, "R$ 320.000,00", property.DisplayPrice)
}

func TestPropertyService_DeleteProperty_Success(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().
		FindByID(ctx, propertyID).
		Return(&entity.Property{ID: propertyID, AccountID: accountID}, nil)
	propertyRepo.EXPECT().Delete(ctx, propertyID).Return(nil)
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	err := fx.service.DeleteProperty(ctx, accountID, propertyID)

	require.NoError(t, err)
}

func TestPropertyService_DeleteProperty_NotFound(t *testing.T) {
	fx := createTestPropertyService(t)
	ctx := context.Background()
	accountID := uuid.New()
	propertyID := uuid.New()

	propertyRepo := mockRepo.NewMockPropertyRepository(t)
	propertyRepo.EXPECT().FindByID(ctx, propertyID).Return(nil, repository.ErrPropertyNotFound)
	expectExecute(fx.txManager, propertyFactory(t, propertyRepo))

	err := fx.service.DeleteProperty(ctx, accountID, propertyID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPropertyNotFound))
}
