package rolegrant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ IRoleGrantService = (*RoleGrantService)(nil)

const defaultGrantTimeout = 15 * time.Second

// RoleGrantService implements the RoleGrantService interface
type RoleGrantService struct {
	guild   secondary.GuildPort
	timeout time.Duration
	logger  primary.Logger
}

// NewRoleGrantService creates a new role grant service. timeout bounds
// the whole grant sequence; zero means the default.
func NewRoleGrantService(guild secondary.GuildPort, timeout time.Duration, logger primary.Logger) *RoleGrantService {
	if timeout <= 0 {
		timeout = defaultGrantTimeout
	}
	return &RoleGrantService{
		guild:   guild,
		timeout: timeout,
		logger:  logger,
	}
}

// Grant walks the member through lookup, role resolution and role
// assignment, then sends a best-effort congratulation DM.
func (s *RoleGrantService) Grant(ctx context.Context, userID, roleName string) domain.GrantResult {
	if roleName == "" {
		roleName = domain.DefaultVerifiedRole
	}
	result := domain.GrantResult{UserID: userID, RoleName: roleName}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	member, err := s.guild.FindMember(ctx, userID)
	if err != nil {
		return s.failure(result, err, "find member")
	}

	roleID, err := s.guild.EnsureRole(ctx, roleName)
	if err != nil {
		return s.failure(result, err, "resolve role")
	}

	if member.HasRole(roleID) {
		s.logger.Info("Member already holds role", "userId", userID, "role", roleName)
		result.Outcome = domain.GrantAlreadyGranted
		return result
	}

	if err := s.guild.AddMemberRole(ctx, userID, roleID); err != nil {
		return s.failure(result, err, "add role")
	}

	s.logger.Info("Granted role", "userId", userID, "role", roleName)
	result.Outcome = domain.GrantGranted

	// The grant already succeeded; a failed DM only gets logged
	message := fmt.Sprintf("Congratulations %s! You have been approved and granted the %q role.", member.Username, roleName)
	if err := s.guild.SendDirectMessage(ctx, userID, message); err != nil {
		s.logger.Warn("Failed to send congratulation message", "userId", userID, "error", err)
	}

	return result
}

func (s *RoleGrantService) failure(result domain.GrantResult, err error, stage string) domain.GrantResult {
	switch {
	case errors.Is(err, errs.MemberNotFound):
		result.Outcome = domain.GrantMemberNotFound
	case errors.Is(err, errs.PermissionDenied):
		result.Outcome = domain.GrantPermissionDenied
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		result.Outcome = domain.GrantTimeout
	default:
		result.Outcome = domain.GrantUnavailable
	}
	result.Detail = fmt.Sprintf("%s: %v", stage, err)

	s.logger.Warn("Role grant failed",
		"userId", result.UserID,
		"role", result.RoleName,
		"outcome", string(result.Outcome),
		"stage", stage,
		"error", err)
	return result
}
