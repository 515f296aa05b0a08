package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"vitrine/config"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/service"
)

// defaultAccessTTL is used when the configuration does not set one.
const defaultAccessTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenDuration != 0 {
		ttl = cfg.Auth.AccessTokenDuration
	}
	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
	}, nil
}

// GenerateToken creates a signed access token carrying the account identity.
func (s *jwtService) GenerateToken(accountID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies a token string, returning its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	return claims, nil
}
