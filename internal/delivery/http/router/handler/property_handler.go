package handler

import (
	"net/http"
	"time"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for the listing management endpoints.
type PropertyHandler struct {
	uc usecase.PropertyUsecase
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{uc: uc}
}

type propertyRequest struct {
	Title           string             `json:"title" validate:"required"`
	Description     string             `json:"description"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	Neighborhood    string             `json:"neighborhood"`
	City            string             `json:"city"`
	Price           float64            `json:"price" validate:"gte=0"`
	Area            float64            `json:"area" validate:"gte=0"`
	Bedrooms        int                `json:"bedrooms" validate:"gte=0"`
	Suites          int                `json:"suites" validate:"gte=0"`
	Bathrooms       int                `json:"bathrooms" validate:"gte=0"`
	ParkingSpaces   int                `json:"parkingSpaces" validate:"gte=0"`
	Features        []string           `json:"features"`
	Media           []entity.MediaItem `json:"media"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	ShowMap         bool               `json:"showMap"`
	ShowFinancing   bool               `json:"showFinancing"`
	ViewersMin      int                `json:"viewersMin" validate:"gte=0"`
	ViewersMax      int                `json:"viewersMax" validate:"gte=0"`
	WhatsAppMessage string             `json:"whatsappMessage"`
}

type propertyResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Type            string             `json:"type"`
	Status          string             `json:"status"`
	Neighborhood    string             `json:"neighborhood"`
	City            string             `json:"city"`
	DisplayPrice    string             `json:"displayPrice"`
	Price           float64            `json:"price"`
	Area            float64            `json:"area"`
	Bedrooms        int                `json:"bedrooms"`
	Suites          int                `json:"suites"`
	Bathrooms       int                `json:"bathrooms"`
	ParkingSpaces   int                `json:"parkingSpaces"`
	Features        []string           `json:"features"`
	Media           []entity.MediaItem `json:"media"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	ShowMap         bool               `json:"showMap"`
	ShowFinancing   bool               `json:"showFinancing"`
	ViewersMin      int                `json:"viewersMin"`
	ViewersMax      int                `json:"viewersMax"`
	WhatsAppMessage string             `json:"whatsappMessage"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// ListProperties returns the account's listings ordered per the query params.
func (h *PropertyHandler) ListProperties(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ListPropertiesInput{}
	switch entity.PropertySort(c.QueryParam("sort")) {
	case entity.SortByTitle:
		input.Sort = entity.SortByTitle
	case entity.SortByPrice:
		input.Sort = entity.SortByPrice
	case entity.SortByStatus:
		input.Sort = entity.SortByStatus
	default:
		input.Sort = entity.SortByCreatedAt
	}
	// Creation order defaults to newest first, the admin grid's default view.
	switch c.QueryParam("order") {
	case "asc":
		input.Descending = false
	case "desc":
		input.Descending = true
	default:
		input.Descending = input.Sort == entity.SortByCreatedAt
	}

	properties, err := h.uc.ListProperties(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]propertyResponse, 0, len(properties))
	for i := range properties {
		items = append(items, toPropertyResponse(&properties[i]))
	}

	return response.Success(c, http.StatusOK, items)
}

// GetProperty returns one listing owned by the account.
func (h *PropertyHandler) GetProperty(c echo.Context) error {
	accountID, propertyID, err := propertyScope(c)
	if err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.GetProperty(c.Request().Context(), accountID, propertyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponse(property))
}

// CreateProperty creates a new listing for the account.
func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := bindPropertyInput(c)
	if err != nil {
		return err
	}

	property, err := h.uc.CreateProperty(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPropertyResponse(property))
}

// UpdateProperty fully replaces a listing's editable fields.
func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	accountID, propertyID, err := propertyScope(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input, err := bindPropertyInput(c)
	if err != nil {
		return err
	}

	property, err := h.uc.UpdateProperty(c.Request().Context(), accountID, propertyID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponse(property))
}

// DeleteProperty removes a listing owned by the account.
func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	accountID, propertyID, err := propertyScope(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProperty(c.Request().Context(), accountID, propertyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Imóvel removido"})
}

func propertyScope(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	accountID, err := requireAccountID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id de imóvel inválido")
	}

	return accountID, propertyID, nil
}

func bindPropertyInput(c echo.Context) (*usecase.PropertyInput, error) {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Dados de imóvel inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &usecase.PropertyInput{
		Title:           req.Title,
		Description:     req.Description,
		Type:            req.Type,
		Status:          req.Status,
		Neighborhood:    req.Neighborhood,
		City:            req.City,
		Price:           req.Price,
		Area:            req.Area,
		Bedrooms:        req.Bedrooms,
		Suites:          req.Suites,
		Bathrooms:       req.Bathrooms,
		ParkingSpaces:   req.ParkingSpaces,
		Features:        req.Features,
		Media:           req.Media,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ShowMap:         req.ShowMap,
		ShowFinancing:   req.ShowFinancing,
		ViewersMin:      req.ViewersMin,
		ViewersMax:      req.ViewersMax,
		WhatsAppMessage: req.WhatsAppMessage,
	}, nil
}

func toPropertyResponse(property *entity.Property) propertyResponse {
	features := property.Features
	if features == nil {
		features = []string{}
	}
	media := property.Media
	if media == nil {
		media = []entity.MediaItem{}
	}

	return propertyResponse{
		ID:              property.ID.String(),
		Title:           property.Title,
		Description:     property.Description,
		Type:            string(property.Type),
		Status:          string(property.Status),
		Neighborhood:    property.Neighborhood,
		City:            property.City,
		DisplayPrice:    property.DisplayPrice,
		Price:           property.PriceValue,
		Area:            property.Area,
		Bedrooms:        property.Bedrooms,
		Suites:          property.Suites,
		Bathrooms:       property.Bathrooms,
		ParkingSpaces:   property.ParkingSpaces,
		Features:        features,
		Media:           media,
		Latitude:        property.Latitude,
		Longitude:       property.Longitude,
		ShowMap:         property.ShowMap,
		ShowFinancing:   property.ShowFinancing,
		ViewersMin:      property.ViewersMin,
		ViewersMax:      property.ViewersMax,
		WhatsAppMessage: property.WhatsAppMessage,
		CreatedAt:       property.CreatedAt,
		UpdatedAt:       property.UpdatedAt,
	}
}
