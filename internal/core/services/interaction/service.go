package interaction

import (
	"context"

	"gitlab.com/void-training.net/internal/domain"
)

// IInteractionService turns chat-platform interaction events into acks.
// Every event gets an ack; errors are folded into the ack content.
type IInteractionService interface {
	HandleEvent(ctx context.Context, event *domain.InteractionEvent) domain.InteractionAck
}
