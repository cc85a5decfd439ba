package notify

import (
	"context"

	"gitlab.com/void-training.net/internal/domain"
)

// INotificationService pushes review-channel notifications. Delivery is
// best effort; callers treat it as fire-and-forget.
type INotificationService interface {
	// NotifyCreated announces a freshly created submission to reviewers
	NotifyCreated(ctx context.Context, sub *domain.Submission)
}
