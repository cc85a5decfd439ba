package rolegrant

import (
	"context"

	"gitlab.com/void-training.net/internal/domain"
)

// IRoleGrantService grants the verified role to an approved submitter.
// Grant never returns an error; every failure mode is reported as a
// terminal outcome in the result.
type IRoleGrantService interface {
	Grant(ctx context.Context, userID, roleName string) domain.GrantResult
}
