package interaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/services/review"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ IInteractionService = (*InteractionService)(nil)

// InteractionService implements the InteractionService interface
type InteractionService struct {
	reviews review.IReviewService
	logger  primary.Logger
}

// NewInteractionService creates a new interaction service
func NewInteractionService(reviews review.IReviewService, logger primary.Logger) *InteractionService {
	return &InteractionService{
		reviews: reviews,
		logger:  logger,
	}
}

// HandleEvent turns an interaction event into an ack
func (s *InteractionService) HandleEvent(ctx context.Context, event *domain.InteractionEvent) domain.InteractionAck {
	switch event.Kind {
	case domain.InteractionPing:
		return domain.InteractionAck{Pong: true}
	case domain.InteractionComponentClick:
		return s.handleClick(ctx, event)
	default:
		return ephemeral("Unknown interaction type")
	}
}

func (s *InteractionService) handleClick(ctx context.Context, event *domain.InteractionEvent) domain.InteractionAck {
	token, rawID, ok := domain.SplitComponentKey(event.ComponentID)
	if !ok {
		return ephemeral("❌ Invalid button interaction")
	}

	action, ok := domain.ParseActionToken(token)
	if !ok {
		return ephemeral("❌ Invalid button interaction")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return ephemeral("❌ Invalid button interaction")
	}

	s.logger.Info("Button decision received",
		"submissionId", id,
		"action", string(action),
		"actorId", event.ActorID,
		"actorName", event.ActorName)

	sub, err := s.reviews.Apply(ctx, id, action)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return ephemeral("❌ Error: Submission not found")
		}
		s.logger.Error("Failed to apply button decision", "submissionId", id, "error", err)
		return ephemeral("❌ Error processing interaction")
	}

	if action == domain.ActionAccepted {
		return ephemeral(fmt.Sprintf("✅ Approved submission for **%s**", sub.Username))
	}
	return ephemeral(fmt.Sprintf("❌ Denied submission for **%s**", sub.Username))
}

func ephemeral(content string) domain.InteractionAck {
	return domain.InteractionAck{Content: content, Ephemeral: true}
}
