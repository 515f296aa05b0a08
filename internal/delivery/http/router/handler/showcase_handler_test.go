package handler

import (
	"net/http"
	"testing"

	domainerrors "vitrine/internal/domain/errors"
	mockusecase "vitrine/internal/mocks/usecase"
	"vitrine/internal/showcase"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowcaseHandlerGeneratePage(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()

	t.Run("returns the rendered page as html", func(t *testing.T) {
		t.Parallel()

		page := []byte("<!DOCTYPE html><html><body>Vitrine</body></html>")

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().GeneratePage(mock.Anything, accountID).Return(page, nil)

		h := NewShowcaseHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/showcase", nil)
		authenticate(c, accountID)

		require.NoError(t, h.GeneratePage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, string(page), rec.Body.String())
	})

	t.Run("propagates a generation failure", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().GeneratePage(mock.Anything, accountID).Return(nil, domainerrors.ErrInternalError)

		h := NewShowcaseHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/showcase", nil)
		authenticate(c, accountID)

		require.ErrorIs(t, h.GeneratePage(c), domainerrors.ErrInternalError)
	})
}

func TestShowcaseHandlerPreviewProperty(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	propertyID := uuid.New()

	t.Run("returns the derived detail state", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().
			PreviewProperty(mock.Anything, accountID, propertyID).
			Return(&usecase.PropertyPreview{
				Property: showcase.DisplayProperty{
					ID:         propertyID.String(),
					Title:      "Cobertura Norte",
					PriceLabel: "R$ 1.200.000,00",
				},
				Badge:         "Últimas unidades",
				Tone:          showcase.ToneWarning,
				MapURL:        "https://www.google.com/maps?q=-10.9,-37.0",
				ContactLink:   "https://wa.me/5579988887766?text=Oi",
				ShowNav:       true,
				FinancingOpen: true,
			}, nil)

		h := NewShowcaseHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/properties/"+propertyID.String()+"/preview", nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.NoError(t, h.PreviewProperty(c))

		var got previewResponse
		decodeData(t, rec, &got)
		assert.Equal(t, "Cobertura Norte", got.Property.Title)
		assert.Equal(t, "Últimas unidades", got.Badge)
		assert.Equal(t, string(showcase.ToneWarning), got.Tone)
		assert.True(t, got.ShowNav)
		assert.True(t, got.FinancingOpen)
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().
			PreviewProperty(mock.Anything, accountID, propertyID).
			Return(nil, domainerrors.ErrPropertyNotFound)

		h := NewShowcaseHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/properties/"+propertyID.String()+"/preview", nil)
		c.SetParamNames("id")
		c.SetParamValues(propertyID.String())
		authenticate(c, accountID)

		require.ErrorIs(t, h.PreviewProperty(c), domainerrors.ErrPropertyNotFound)
	})
}

func TestShowcaseHandlerShowcaseQR(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()

	t.Run("returns the code as png", func(t *testing.T) {
		t.Parallel()

		png := []byte{0x89, 'P', 'N', 'G'}

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().ShowcaseQR(mock.Anything, accountID).Return(png, nil)

		h := NewShowcaseHandler(uc)
		c, rec := newTestContext(t, http.MethodGet, "/showcase/qr", nil)
		authenticate(c, accountID)

		require.NoError(t, h.ShowcaseQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("propagates a missing public base url", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockShowcaseUsecase(t)
		uc.EXPECT().ShowcaseQR(mock.Anything, accountID).Return(nil, domainerrors.ErrValidationFailed)

		h := NewShowcaseHandler(uc)
		c, _ := newTestContext(t, http.MethodGet, "/showcase/qr", nil)
		authenticate(c, accountID)

		require.ErrorIs(t, h.ShowcaseQR(c), domainerrors.ErrValidationFailed)
	})
}
