package interactions

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/services/interaction"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/handlers/response"
)

// InteractionHandler receives Discord interaction callbacks on the
// endpoint registered in the Discord application settings.
type InteractionHandler struct {
	interactionService interaction.IInteractionService
	publicKey          ed25519.PublicKey
	logger             primary.Logger
}

// NewInteractionHandler creates a new interaction handler. hexPublicKey
// is the application public key from the Discord developer portal; when
// empty or malformed, signature verification is disabled.
func NewInteractionHandler(interactionService interaction.IInteractionService, hexPublicKey string, logger primary.Logger) *InteractionHandler {
	h := &InteractionHandler{
		interactionService: interactionService,
		logger:             logger,
	}

	if hexPublicKey == "" {
		logger.Warn("No interaction public key configured, signature verification disabled")
		return h
	}

	key, err := hex.DecodeString(hexPublicKey)
	if err != nil || len(key) != ed25519.PublicKeySize {
		logger.Warn("Invalid interaction public key, signature verification disabled", "error", err)
		return h
	}

	h.publicKey = ed25519.PublicKey(key)
	return h
}

// RegisterRoutes registers the API routes for InteractionHandler
func (h *InteractionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/interactions", h.HandleInteraction).Methods("POST")
}

// HandleInteraction verifies, decodes and answers one interaction callback
func (h *InteractionHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	if h.publicKey != nil && !discordgo.VerifyInteraction(r, h.publicKey) {
		h.logger.Warn("Rejected interaction with bad signature")
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request signature", StatusCode: http.StatusUnauthorized})
		return
	}

	var inter discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&inter); err != nil {
		h.logger.Error("Failed to decode interaction", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	ack := h.interactionService.HandleEvent(r.Context(), mapEvent(&inter))
	response.WriteSuccess(w, encodeAck(ack))
}

// mapEvent strips the Discord envelope down to a domain event
func mapEvent(inter *discordgo.Interaction) *domain.InteractionEvent {
	event := &domain.InteractionEvent{}

	switch inter.Type {
	case discordgo.InteractionPing:
		event.Kind = domain.InteractionPing
	case discordgo.InteractionMessageComponent:
		event.Kind = domain.InteractionComponentClick
		event.ComponentID = inter.MessageComponentData().CustomID
	default:
		event.Kind = domain.InteractionUnrecognized
	}

	// Guild interactions carry a member, direct ones a bare user
	switch {
	case inter.Member != nil && inter.Member.User != nil:
		event.ActorID = inter.Member.User.ID
		event.ActorName = inter.Member.User.Username
	case inter.User != nil:
		event.ActorID = inter.User.ID
		event.ActorName = inter.User.Username
	}

	return event
}

func encodeAck(ack domain.InteractionAck) *discordgo.InteractionResponse {
	if ack.Pong {
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
	}

	data := &discordgo.InteractionResponseData{Content: ack.Content}
	if ack.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
