package rolegrant

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// fakeGuild is a configurable GuildPort double. Unset error fields make
// the corresponding step succeed.
type fakeGuild struct {
	member       *domain.GuildMember
	findErr      error
	roleID       string
	ensureErr    error
	addErr       error
	dmErr        error
	addCalls     int
	dmCalls      int
	lastDMUserID string
	lastDM       string
}

func (f *fakeGuild) FindMember(ctx context.Context, userID string) (*domain.GuildMember, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.member != nil {
		return f.member, nil
	}
	return &domain.GuildMember{ID: userID, Username: "alice"}, nil
}

func (f *fakeGuild) EnsureRole(ctx context.Context, name string) (string, error) {
	if f.ensureErr != nil {
		return "", f.ensureErr
	}
	if f.roleID != "" {
		return f.roleID, nil
	}
	return "role-1", nil
}

func (f *fakeGuild) AddMemberRole(ctx context.Context, userID, roleID string) error {
	f.addCalls++
	return f.addErr
}

func (f *fakeGuild) SendDirectMessage(ctx context.Context, userID, content string) error {
	f.dmCalls++
	f.lastDMUserID = userID
	f.lastDM = content
	return f.dmErr
}

func TestGrantSuccess(t *testing.T) {
	guild := &fakeGuild{}
	svc := NewRoleGrantService(guild, 0, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "")

	if result.Outcome != domain.GrantGranted {
		t.Fatalf("outcome = %q, detail = %q", result.Outcome, result.Detail)
	}
	if !result.Success() {
		t.Error("granted result should be a success")
	}
	if result.RoleName != domain.DefaultVerifiedRole {
		t.Errorf("role name = %q, want default", result.RoleName)
	}
	if guild.addCalls != 1 {
		t.Errorf("role added %d times", guild.addCalls)
	}
	if guild.dmCalls != 1 || guild.lastDMUserID != "discord-123" {
		t.Errorf("dm calls = %d to %q", guild.dmCalls, guild.lastDMUserID)
	}
}

func TestGrantAlreadyGranted(t *testing.T) {
	guild := &fakeGuild{
		member: &domain.GuildMember{ID: "discord-123", Username: "alice", RoleIDs: []string{"role-1"}},
		roleID: "role-1",
	}
	svc := NewRoleGrantService(guild, 0, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "Verified Staff")

	if result.Outcome != domain.GrantAlreadyGranted {
		t.Fatalf("outcome = %q", result.Outcome)
	}
	if !result.Success() {
		t.Error("already granted should count as success")
	}
	if guild.addCalls != 0 {
		t.Error("role re-added to a member that holds it")
	}
	if guild.dmCalls != 0 {
		t.Error("dm sent without a fresh grant")
	}
}

func TestGrantMemberNotFound(t *testing.T) {
	guild := &fakeGuild{findErr: errs.MemberNotFound}
	svc := NewRoleGrantService(guild, 0, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "")
	if result.Outcome != domain.GrantMemberNotFound {
		t.Errorf("outcome = %q", result.Outcome)
	}
	if guild.addCalls != 0 {
		t.Error("role added for missing member")
	}
}

func TestGrantPermissionDenied(t *testing.T) {
	tests := []struct {
		name  string
		guild *fakeGuild
	}{
		{name: "on role create", guild: &fakeGuild{ensureErr: errs.PermissionDenied}},
		{name: "on role add", guild: &fakeGuild{addErr: errs.PermissionDenied}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewRoleGrantService(tt.guild, 0, nopLogger{})
			result := svc.Grant(context.Background(), "discord-123", "")
			if result.Outcome != domain.GrantPermissionDenied {
				t.Errorf("outcome = %q", result.Outcome)
			}
		})
	}
}

func TestGrantTimeout(t *testing.T) {
	guild := &fakeGuild{findErr: context.DeadlineExceeded}
	svc := NewRoleGrantService(guild, time.Millisecond, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "")
	if result.Outcome != domain.GrantTimeout {
		t.Errorf("outcome = %q", result.Outcome)
	}
}

func TestGrantUnavailable(t *testing.T) {
	guild := &fakeGuild{findErr: errors.New("connection reset")}
	svc := NewRoleGrantService(guild, 0, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "")
	if result.Outcome != domain.GrantUnavailable {
		t.Errorf("outcome = %q", result.Outcome)
	}
	if result.Detail == "" {
		t.Error("detail should carry the failing stage")
	}
}

// A failed congratulation DM never downgrades a successful grant
func TestGrantDMFailureStillGranted(t *testing.T) {
	guild := &fakeGuild{dmErr: errors.New("cannot send messages to this user")}
	svc := NewRoleGrantService(guild, 0, nopLogger{})

	result := svc.Grant(context.Background(), "discord-123", "")
	if result.Outcome != domain.GrantGranted {
		t.Errorf("outcome = %q", result.Outcome)
	}
}
