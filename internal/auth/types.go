package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
)

// UserIDKey is the gin context key holding the authenticated user id
const UserIDKey = "userID"

// Config represents authentication configuration
type Config struct {
	JWT struct {
		Secret         string
		AccessTokenTTL time.Duration
		Issuer         string
	}
}

// NewConfigFromAuthConfig creates an auth.Config from config.AuthConfig
func NewConfigFromAuthConfig(cfg *config.AuthConfig) *Config {
	authConfig := &Config{}
	authConfig.JWT.Secret = cfg.JWT.Secret
	authConfig.JWT.AccessTokenTTL = cfg.JWT.AccessTokenTTL
	authConfig.JWT.Issuer = cfg.JWT.Issuer
	return authConfig
}

// TokenClaims represents the JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
