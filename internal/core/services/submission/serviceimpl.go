package submission

import (
	"context"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/core/services/notify"
	"gitlab.com/void-training.net/internal/dispatch"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the SubmissionService interface
type SubmissionService struct {
	repo       secondary.SubmissionRepository
	notifier   notify.INotificationService
	dispatcher dispatch.Dispatcher
	validate   *validator.Validate
	logger     primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	repo secondary.SubmissionRepository,
	notifier notify.INotificationService,
	dispatcher dispatch.Dispatcher,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		repo:       repo,
		notifier:   notifier,
		dispatcher: dispatcher,
		validate:   validator.New(),
		logger:     logger,
	}
}

// CreateSubmission records a new pending submission and schedules the
// review-channel notification off the request path.
func (s *SubmissionService) CreateSubmission(ctx context.Context, input *CreateInput) (*domain.Submission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.InvalidInput, err)
	}

	sub := domain.NewSubmission(input.UserID, input.UserEmail, input.Username, input.Answers, input.Score, input.Passed)

	s.logger.Info("Creating submission",
		"submissionId", sub.ID,
		"userId", sub.UserID,
		"score", sub.Score,
		"passed", sub.Passed)

	if err := s.repo.SaveSubmission(ctx, sub); err != nil {
		s.logger.Error("Failed to save submission", "submissionId", sub.ID, "error", err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	// Notify reviewers asynchronously; a failed notice never fails the create
	notified := sub.Clone()
	s.dispatcher.Submit("submission-notice", func(taskCtx context.Context) {
		s.notifier.NotifyCreated(taskCtx, notified)
	})

	return sub, nil
}

// GetSubmission retrieves a submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.logger.Debug("Getting submission", "submissionId", id)
	return s.repo.GetSubmission(ctx, id)
}

// ListSubmissions retrieves submissions, newest first
func (s *SubmissionService) ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	s.logger.Debug("Listing submissions", "status", string(status))
	return s.repo.ListSubmissions(ctx, status)
}

// ListUserSubmissions retrieves one user's submissions, newest first
func (s *SubmissionService) ListUserSubmissions(ctx context.Context, userID string) ([]*domain.Submission, error) {
	s.logger.Debug("Listing user submissions", "userId", userID)
	return s.repo.ListSubmissionsByUser(ctx, userID)
}

// DeleteSubmission removes a submission
func (s *SubmissionService) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Deleting submission", "submissionId", id)
	return s.repo.DeleteSubmission(ctx, id)
}

// GetStats summarizes review progress across all submissions. PassRate is
// the accepted share of decided submissions, in percent.
func (s *SubmissionService) GetStats(ctx context.Context) (*domain.SubmissionStats, error) {
	subs, err := s.repo.ListSubmissions(ctx, "")
	if err != nil {
		s.logger.Error("Failed to list submissions for stats", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	stats := &domain.SubmissionStats{Total: len(subs)}
	for _, sub := range subs {
		switch sub.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusAccepted:
			stats.Accepted++
		case domain.StatusDenied:
			stats.Denied++
		}
	}

	if decided := stats.Accepted + stats.Denied; decided > 0 {
		rate := float64(stats.Accepted) / float64(decided) * 100
		stats.PassRate = math.Round(rate*100) / 100
	}

	return stats, nil
}
