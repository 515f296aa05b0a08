package handler

import (
	"vitrine/internal/delivery/http/middleware"
	domainerrors "vitrine/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireAccountID reads the account identity set by the auth middleware.
// Routes registered without Authenticate never reach the handlers using it.
func requireAccountID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.AccountID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}
