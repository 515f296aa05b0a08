package handler

import (
	"net/http"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	mockusecase "vitrine/internal/mocks/usecase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPropertyHandlerListProperties(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()

	t.Run("defaults to newest first", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			ListProperties(mock.Anything, accountID, &usecase.ListPropertiesInput{
				Sort:       entity.SortByCreatedAt,
				Descending: true,
			}).
			Return([]entity.Property{}, nil)

		h := NewPropertyHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/properties", nil)
		authenticate(c, accountID)

		require.NoError(t, h.ListProperties(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("honors sort and order query params", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			ListProperties(mock.Anything, accountID, &usecase.ListPropertiesInput{
				Sort:       entity.SortByPrice,
				Descending: false,
			}).
			Return([]entity.Property{}, nil)

		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/properties?sort=price&order=asc", nil)
		authenticate(c, accountID)

		require.NoError(t, h.ListProperties(c))
	})

	t.Run("falls back to creation order on an unknown sort key", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			ListProperties(mock.Anything, accountID, &usecase.ListPropertiesInput{
				Sort:       entity.SortByCreatedAt,
				Descending: true,
			}).
			Return([]entity.Property{}, nil)

		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/properties?sort=banana", nil)
		authenticate(c, accountID)

		require.NoError(t, h.ListProperties(c))
	})

	t.Run("serializes an empty list as an array", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			ListProperties(mock.Anything, accountID, mock.Anything).
			Return([]entity.Property{}, nil)

		h := NewPropertyHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/properties", nil)
		authenticate(c, accountID)

		require.NoError(t, h.ListProperties(c))
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})
}

func TestPropertyHandlerGetProperty(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	propertyID := uuid.New()

	t.Run("returns the listing with derived fields", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			GetProperty(mock.Anything, accountID, propertyID).
			Return(&entity.Property{
				ID:           propertyID,
				AccountID:    accountID,
				Title:        "Casa no Centro",
				DisplayPrice: "R$ 550.000,00",
				PriceValue:   550000,
			}, nil)

		h := NewPropertyHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/properties/"+propertyID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.NoError(t, h.GetProperty(c))

		var got propertyResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "Casa no Centro", got.Title)
		assert.Equal(t, "R$ 550.000,00", got.DisplayPrice)
		assert.Equal(t, float64(550000), got.Price)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/properties/abc", nil)
		c.SetParamNames("id")
		c.SetParamValues("abc")
		authenticate(c, accountID)

		requireHTTPError(t, h.GetProperty(c), http.StatusBadRequest)
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			GetProperty(mock.Anything, accountID, propertyID).
			Return(nil, domainerrors.ErrPropertyNotFound)

		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/properties/"+propertyID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.ErrorIs(t, h.GetProperty(c), domainerrors.ErrPropertyNotFound)
	})
}

func TestPropertyHandlerCreateProperty(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()

	t.Run("creates a listing with the submitted fields", func(t *testing.T) {
		t.Parallel()

		created := &entity.Property{
			ID:           uuid.New(),
			AccountID:    accountID,
			Title:        "Apartamento Jardins",
			DisplayPrice: "R$ 750.000,00",
			PriceValue:   750000,
		}

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			CreateProperty(mock.Anything, accountID, mock.MatchedBy(func(input *usecase.PropertyInput) bool {
				return input.Title == "Apartamento Jardins" &&
					input.Price == 750000 &&
					input.Bedrooms == 3
			})).
			Return(created, nil)

		h := NewPropertyHandler(uc)
		c, rec := newTestContext(t, http.MethodPost, "/properties", map[string]any{
			"title":    "Apartamento Jardins",
			"price":    750000,
			"bedrooms": 3,
		})
		authenticate(c, accountID)

		require.NoError(t, h.CreateProperty(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got propertyResponse
		decodeData(t, rec, &got)
		assert.Equal(t, created.ID.String(), got.ID)
	})

	t.Run("rejects a listing without a title", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/properties", map[string]any{
			"price": 750000,
		})
		authenticate(c, accountID)

		requireHTTPError(t, h.CreateProperty(c), http.StatusBadRequest)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodPost, "/properties", map[string]any{
			"title": "Apartamento Jardins",
			"price": -1,
		})
		authenticate(c, accountID)

		requireHTTPError(t, h.CreateProperty(c), http.StatusBadRequest)
	})
}

func TestPropertyHandlerUpdateProperty(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	propertyID := uuid.New()

	uc := mockusecase.NewMockPropertyUsecase(t)
	uc.EXPECT().
		UpdateProperty(mock.Anything, accountID, propertyID, mock.MatchedBy(func(input *usecase.PropertyInput) bool {
			return input.Title == "Casa Reformada" && input.Status == "Reservado"
		})).
		Return(&entity.Property{ID: propertyID, Title: "Casa Reformada"}, nil)

	h := NewPropertyHandler(uc)
	c, rec := newTestContext(t, http.MethodPut, "/properties/"+propertyID.String(), map[string]any{
		"title":  "Casa Reformada",
		"status": "Reservado",
	})
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	authenticate(c, accountID)

	require.NoError(t, h.UpdateProperty(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPropertyHandlerDeleteProperty(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	propertyID := uuid.New()

	t.Run("removes the listing", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			DeleteProperty(mock.Anything, accountID, propertyID).
			Return(nil)

		h := NewPropertyHandler(uc)
		c, rec := newTestContext(t, http.MethodDelete, "/properties/"+propertyID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.NoError(t, h.DeleteProperty(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("propagates not found for a foreign listing", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockPropertyUsecase(t)
		uc.EXPECT().
			DeleteProperty(mock.Anything, accountID, propertyID).
			Return(domainerrors.ErrPropertyNotFound)

		h := NewPropertyHandler(uc)
		c, _ := newTestContext(t, http.MethodDelete, "/properties/"+propertyID.String(), nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.ErrorIs(t, h.DeleteProperty(c), domainerrors.ErrPropertyNotFound)
	})
}
