package auth

import (
	"context"

	"gitlab.com/void-training.net/internal/domain"
)

// IAuthService exchanges a provider-verified identity for a session token
type IAuthService interface {
	ProviderName() domain.Provider
	Login(ctx context.Context, identity *domain.ExternalIdentity) (string, error)
}
