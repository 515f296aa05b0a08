package middleware

import (
	"net/http"
	"strings"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyAccountID is the echo context key under which the authenticated
// account id is stored for handlers.
const KeyAccountID = "accountID"

// AuthMiddleware validates JWT access tokens and scopes requests to an account.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_MISSING", "Sessão não informada", nil)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_INVALID", "Formato de token inválido, use Bearer", nil)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "TOKEN_INVALID", "Sessão inválida ou expirada", nil)
		}

		// Set the account identity on the context for handlers to use
		c.Set(KeyAccountID, claims.AccountID)

		return next(c)
	}
}

// AccountID extracts the authenticated account id placed on the context by
// Authenticate. The boolean is false on routes reached without it.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyAccountID).(uuid.UUID)

	return id, ok
}
