package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

// authService issues the access tokens returned by signup and login and
// checks them on protected routes. It holds no mutable state.
type authService struct {
	issuer   string
	signKey  string
	lifetime time.Duration

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		issuer:   cfg.TokenIssuer,
		signKey:  cfg.TokenSignKey,
		lifetime: cfg.TokenDuration,
		logger:   logger,
	}
}

// CreateToken signs a token for identity valid for the configured lifetime.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.issuer, identity, a.lifetime, a.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("user_id", identity.UserID).
			Msg("failed to sign access token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken returns ErrTokenIsExpiredOrInvalid for every rejected token;
// the underlying reason is only logged.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
