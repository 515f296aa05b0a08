package handler

import (
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/entity"
	"vitrine/internal/showcase"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShowcaseHandler holds dependencies for the public page generation endpoints.
type ShowcaseHandler struct {
	uc usecase.ShowcaseUsecase
}

// NewShowcaseHandler is the constructor for ShowcaseHandler, injected by Fx.
func NewShowcaseHandler(uc usecase.ShowcaseUsecase) *ShowcaseHandler {
	return &ShowcaseHandler{uc: uc}
}

type displayPropertyResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Type           string             `json:"type"`
	Status         string             `json:"status"`
	Neighborhood   string             `json:"neighborhood"`
	City           string             `json:"city"`
	PriceLabel     string             `json:"priceLabel"`
	PriceValue     float64            `json:"priceValue"`
	AreaLabel      string             `json:"areaLabel"`
	Bedrooms       int                `json:"bedrooms"`
	Suites         int                `json:"suites"`
	Bathrooms      int                `json:"bathrooms"`
	ParkingSpaces  int                `json:"parkingSpaces"`
	Features       []string           `json:"features"`
	Media          []entity.MediaItem `json:"media"`
	ShowFinancing  bool               `json:"showFinancing"`
	ViewersMin     int                `json:"viewersMin"`
	ViewersMax     int                `json:"viewersMax"`
	ContactMessage string             `json:"contactMessage"`
}

type previewResponse struct {
	Property      displayPropertyResponse `json:"property"`
	Badge         string                  `json:"badge"`
	Tone          string                  `json:"tone"`
	MapURL        string                  `json:"mapUrl"`
	ContactLink   string                  `json:"contactLink"`
	ShowNav       bool                    `json:"showNav"`
	FinancingOpen bool                    `json:"financingOpen"`
}

func toDisplayPropertyResponse(d showcase.DisplayProperty) displayPropertyResponse {
	return displayPropertyResponse{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		Type:           d.Type,
		Status:         d.Status,
		Neighborhood:   d.Neighborhood,
		City:           d.City,
		PriceLabel:     d.PriceLabel,
		PriceValue:     d.PriceValue,
		AreaLabel:      d.AreaLabel,
		Bedrooms:       d.Bedrooms,
		Suites:         d.Suites,
		Bathrooms:      d.Bathrooms,
		ParkingSpaces:  d.ParkingSpaces,
		Features:       d.Features,
		Media:          d.Media,
		ShowFinancing:  d.ShowFinancing,
		ViewersMin:     d.ViewersMin,
		ViewersMax:     d.ViewersMax,
		ContactMessage: d.ContactMessage,
	}
}

// GeneratePage renders the agent's complete showcase as a standalone HTML document.
func (h *ShowcaseHandler) GeneratePage(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	page, err := h.uc.GeneratePage(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTMLBlob(http.StatusOK, page)
}

// PreviewProperty returns the derived detail state of one listing.
func (h *ShowcaseHandler) PreviewProperty(c echo.Context) error {
	accountID, propertyID, err := propertyScope(c)
	if err != nil {
		return errors.WithStack(err)
	}

	preview, err := h.uc.PreviewProperty(c.Request().Context(), accountID, propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, previewResponse{
		Property:      toDisplayPropertyResponse(preview.Property),
		Badge:         preview.Badge,
		Tone:          string(preview.Tone),
		MapURL:        preview.MapURL,
		ContactLink:   preview.ContactLink,
		ShowNav:       preview.ShowNav,
		FinancingOpen: preview.FinancingOpen,
	})
}

// ShowcaseQR returns a PNG QR code pointing at the agent's public page.
func (h *ShowcaseHandler) ShowcaseQR(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.ShowcaseQR(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
