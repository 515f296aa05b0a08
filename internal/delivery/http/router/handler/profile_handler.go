package handler

import (
	"net/http"
	"time"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/entity"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the agent profile endpoints.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type updateProfileRequest struct {
	Name          string `json:"name" validate:"required"`
	CRECI         string `json:"creci"`
	PhotoURL      string `json:"photoUrl"`
	WhatsApp      string `json:"whatsapp"`
	HeaderMessage string `json:"headerMessage"`
}

type profileResponse struct {
	AccountID     string    `json:"accountId"`
	Name          string    `json:"name"`
	CRECI         string    `json:"creci"`
	PhotoURL      string    `json:"photoUrl"`
	WhatsApp      string    `json:"whatsapp"`
	HeaderMessage string    `json:"headerMessage"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GetProfile returns the agent profile, falling back to defaults when the
// profile has never been saved.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile replaces the agent profile with the submitted state.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	accountID, err := requireAccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de perfil inválidos")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), accountID, &usecase.UpdateProfileInput{
		Name:          req.Name,
		CRECI:         req.CRECI,
		PhotoURL:      req.PhotoURL,
		WhatsApp:      req.WhatsApp,
		HeaderMessage: req.HeaderMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *entity.AgentProfile) profileResponse {
	return profileResponse{
		AccountID:     profile.AccountID.String(),
		Name:          profile.Name,
		CRECI:         profile.CRECI,
		PhotoURL:      profile.PhotoURL,
		WhatsApp:      profile.WhatsApp,
		HeaderMessage: profile.HeaderMessage,
		UpdatedAt:     profile.UpdatedAt,
	}
}
