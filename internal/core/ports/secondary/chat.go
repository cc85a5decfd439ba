package secondary

import (
	"context"

	"gitlab.com/void-training.net/internal/domain"
)

// NoticePort delivers a new-submission notice to the review channel
type NoticePort interface {
	PostSubmissionNotice(ctx context.Context, notice *domain.SubmissionNotice) error
}

// GuildPort exposes the guild operations needed to mark a member as
// verified staff.
type GuildPort interface {
	// FindMember resolves a guild member by id, cache first then fetch;
	// errs.MemberNotFound when the guild has no such member
	FindMember(ctx context.Context, userID string) (*domain.GuildMember, error)

	// EnsureRole returns the id of the named role, creating the role when
	// it does not exist yet
	EnsureRole(ctx context.Context, name string) (string, error)

	// AddMemberRole grants the role to the member; errs.PermissionDenied
	// when the bot lacks the required permission
	AddMemberRole(ctx context.Context, userID, roleID string) error

	// SendDirectMessage sends a direct message to the member
	SendDirectMessage(ctx context.Context, userID, content string) error
}
