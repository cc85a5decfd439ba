package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/core/services/rolegrant"
	"gitlab.com/void-training.net/internal/dispatch"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ IReviewService = (*ReviewService)(nil)

// ReviewService implements the ReviewService interface
type ReviewService struct {
	repo       secondary.SubmissionRepository
	grants     rolegrant.IRoleGrantService
	dispatcher dispatch.Dispatcher
	roleName   string
	logger     primary.Logger
}

// NewReviewService creates a new review service. roleName is the role
// granted on acceptance; empty means the default verified role.
func NewReviewService(
	repo secondary.SubmissionRepository,
	grants rolegrant.IRoleGrantService,
	dispatcher dispatch.Dispatcher,
	roleName string,
	logger primary.Logger,
) *ReviewService {
	if roleName == "" {
		roleName = domain.DefaultVerifiedRole
	}
	return &ReviewService{
		repo:       repo,
		grants:     grants,
		dispatcher: dispatcher,
		roleName:   roleName,
		logger:     logger,
	}
}

// Apply sets the submission's status from the action and returns the
// updated record. The role grant runs off the request path so the admin
// response never waits on the chat platform.
func (s *ReviewService) Apply(ctx context.Context, id uuid.UUID, action domain.ReviewAction) (*domain.Submission, error) {
	if !action.Valid() {
		return nil, errs.InvalidAction
	}

	s.logger.Info("Applying review decision", "submissionId", id, "action", string(action))

	sub, err := s.repo.UpdateSubmissionStatus(ctx, id, action.Status(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if action == domain.ActionAccepted {
		userID := sub.UserID
		username := sub.Username
		s.dispatcher.Submit("role-grant", func(taskCtx context.Context) {
			result := s.grants.Grant(taskCtx, userID, s.roleName)
			if !result.Success() {
				s.logger.Warn("Role grant did not complete",
					"submissionId", id,
					"userId", userID,
					"username", username,
					"outcome", string(result.Outcome),
					"detail", result.Detail)
			}
		})
	}

	return sub, nil
}
