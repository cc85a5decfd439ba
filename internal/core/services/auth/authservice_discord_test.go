package auth

import (
	"context"
	"errors"
	"testing"

	"gitlab.com/void-training.net/internal/adapter/crypto"
	"gitlab.com/void-training.net/internal/config"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

func newService() IAuthService {
	return NewDiscordAuthService(crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"}))
}

func TestProviderName(t *testing.T) {
	if got := newService().ProviderName(); got != domain.ProviderDiscord {
		t.Errorf("provider = %q", got)
	}
}

func TestLogin(t *testing.T) {
	svc := newService()

	token, err := svc.Login(context.Background(), &domain.ExternalIdentity{
		ID:       "discord-123",
		Username: "alice",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}

	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	payload, err := jwtProvider.DecodeTokenPayload(context.Background(), token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.UserID != "discord-123" || payload.Username != "alice" {
		t.Errorf("payload = %+v", payload)
	}
}

func TestLoginRejectsMissingIdentity(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, nil); !errors.Is(err, errs.InvalidCredentials) {
		t.Errorf("nil identity: %v", err)
	}
	if _, err := svc.Login(ctx, &domain.ExternalIdentity{Email: "a@b.c"}); !errors.Is(err, errs.InvalidCredentials) {
		t.Errorf("missing id: %v", err)
	}
	if _, err := svc.Login(ctx, &domain.ExternalIdentity{ID: "discord-123"}); !errors.Is(err, errs.EmailRequired) {
		t.Errorf("missing email: %v", err)
	}
}
