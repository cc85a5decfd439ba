package notify

import (
	"context"
	"strings"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
)

var _ INotificationService = (*NotificationService)(nil)

// NotificationService implements the NotificationService interface
type NotificationService struct {
	notices       secondary.NoticePort
	adminPanelURL string
	logger        primary.Logger
}

// NewNotificationService creates a new notification service. frontendURL
// is the base address of the admin frontend.
func NewNotificationService(notices secondary.NoticePort, frontendURL string, logger primary.Logger) *NotificationService {
	return &NotificationService{
		notices:       notices,
		adminPanelURL: strings.TrimRight(frontendURL, "/") + "/admin",
		logger:        logger,
	}
}

// NotifyCreated announces a freshly created submission to reviewers.
// Errors are logged and swallowed so a notice failure never surfaces to
// the submitter.
func (s *NotificationService) NotifyCreated(ctx context.Context, sub *domain.Submission) {
	notice := domain.NewSubmissionNotice(sub, s.adminPanelURL)

	if err := s.notices.PostSubmissionNotice(ctx, notice); err != nil {
		s.logger.Error("Failed to post submission notice",
			"submissionId", sub.ID,
			"error", err)
		return
	}

	s.logger.Info("Posted submission notice", "submissionId", sub.ID)
}
