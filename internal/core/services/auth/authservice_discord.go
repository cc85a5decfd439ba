package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/global/logger"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ IAuthService = &discordAuthService{}

type discordAuthService struct {
	jwtProvider primary.JWTService
}

func NewDiscordAuthService(jwtProvider primary.JWTService) IAuthService {
	return &discordAuthService{
		jwtProvider: jwtProvider,
	}
}

func (d discordAuthService) ProviderName() domain.Provider {
	return domain.ProviderDiscord
}

func (d discordAuthService) Login(ctx context.Context, identity *domain.ExternalIdentity) (string, error) {
	if identity == nil || identity.ID == "" {
		return "", errs.InvalidCredentials
	}

	if identity.Email == "" {
		return "", errs.EmailRequired
	}

	claims := map[string]interface{}{
		"user_id":  identity.ID,
		"username": identity.Username,
		"email":    identity.Email,
	}

	token, err := d.jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		logger.Error("Failed to generate session token", "userId", identity.ID, "error", err)
		return "", errs.GeneratingToken
	}

	return token, nil
}
