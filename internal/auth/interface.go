package auth

import (
	"github.com/google/uuid"
)

// TokenService handles JWT operations
type TokenService interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}
