package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/domain"
)

// CreateInput carries the fields of an incoming test submission. Only
// presence is validated; score and email are recorded as the caller
// reports them.
type CreateInput struct {
	UserID    string          `json:"user_id" validate:"required"`
	UserEmail string          `json:"user_email" validate:"required"`
	Username  string          `json:"username" validate:"required"`
	Answers   []domain.Answer `json:"answers"`
	Score     float64         `json:"score"`
	Passed    bool            `json:"passed"`
}

// ISubmissionService defines the interface for managing submissions
type ISubmissionService interface {
	// CreateSubmission records a new pending submission and schedules the
	// review-channel notification
	CreateSubmission(ctx context.Context, input *CreateInput) (*domain.Submission, error)

	// GetSubmission retrieves a submission by ID
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListSubmissions retrieves submissions, newest first, optionally
	// filtered by status
	ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error)

	// ListUserSubmissions retrieves one user's submissions, newest first
	ListUserSubmissions(ctx context.Context, userID string) ([]*domain.Submission, error)

	// DeleteSubmission removes a submission
	DeleteSubmission(ctx context.Context, id uuid.UUID) error

	// GetStats summarizes review progress across all submissions
	GetStats(ctx context.Context) (*domain.SubmissionStats, error)
}
