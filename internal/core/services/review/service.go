package review

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/domain"
)

// IReviewService applies admin decisions to submissions
type IReviewService interface {
	// Apply sets the submission's status from the action and returns the
	// updated record. Accepting schedules the role grant in the
	// background. Re-deciding an already decided submission overwrites
	// the previous decision.
	Apply(ctx context.Context, id uuid.UUID, action domain.ReviewAction) (*domain.Submission, error)
}
