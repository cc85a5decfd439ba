package secondary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/domain"
)

// SubmissionRepository is the storage port for submissions. The listing
// methods return records ordered by created_at descending. Implementations
// must never expose the status/updated_at pair half-written.
type SubmissionRepository interface {
	// SaveSubmission persists a submission, overwriting any record with
	// the same id
	SaveSubmission(ctx context.Context, sub *domain.Submission) error

	// GetSubmission retrieves a submission by id; errs.NotFound when absent
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListSubmissions retrieves all submissions, optionally filtered by
	// status (empty status means no filter)
	ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error)

	// ListSubmissionsByUser retrieves one user's submissions
	ListSubmissionsByUser(ctx context.Context, userID string) ([]*domain.Submission, error)

	// UpdateSubmissionStatus sets status and updated_at together and
	// returns the updated record; errs.NotFound when absent
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) (*domain.Submission, error)

	// DeleteSubmission removes a submission; errs.NotFound when absent
	DeleteSubmission(ctx context.Context, id uuid.UUID) error
}
