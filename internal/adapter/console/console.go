package console

import (
	"context"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
)

// Adapter is a development stand-in for the Discord integrations. It logs
// every outbound call instead of talking to an external service so the full
// review flow can run without a bot token.
type Adapter struct {
	logger primary.Logger
}

var (
	_ secondary.NoticePort = (*Adapter)(nil)
	_ secondary.GuildPort  = (*Adapter)(nil)
)

func New(logger primary.Logger) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) PostSubmissionNotice(ctx context.Context, notice *domain.SubmissionNotice) error {
	a.logger.Info("submission notice",
		"submissionId", notice.Submission.ID.String(),
		"username", notice.Submission.Username,
		"score", notice.Submission.Score,
		"passed", notice.Submission.Passed,
		"adminPanel", notice.AdminPanelURL,
	)
	return nil
}

func (a *Adapter) FindMember(ctx context.Context, userID string) (*domain.GuildMember, error) {
	a.logger.Info("lookup guild member", "userId", userID)
	return &domain.GuildMember{ID: userID, Username: userID}, nil
}

func (a *Adapter) EnsureRole(ctx context.Context, name string) (string, error) {
	a.logger.Info("ensure guild role", "role", name)
	return name, nil
}

func (a *Adapter) AddMemberRole(ctx context.Context, userID, roleID string) error {
	a.logger.Info("grant guild role", "userId", userID, "roleId", roleID)
	return nil
}

func (a *Adapter) SendDirectMessage(ctx context.Context, userID, content string) error {
	a.logger.Info("direct message", "userId", userID, "content", content)
	return nil
}
