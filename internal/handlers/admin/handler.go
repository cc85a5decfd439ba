package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/services/review"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/handlers/response"
	"gitlab.com/void-training.net/internal/static/errs"
)

// AdminHandler handles review decision requests from the admin panel and
// from webhook-style integrations.
type AdminHandler struct {
	reviewService review.IReviewService
	logger        primary.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reviewService review.IReviewService, logger primary.Logger) *AdminHandler {
	return &AdminHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// RegisterRoutes registers the API routes for AdminHandler
func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/admin/action", h.AdminAction).Methods("POST")
	router.HandleFunc("/webhook/action", h.WebhookAction).Methods("POST")
}

// AdminAction applies a panel decision to a submission
func (h *AdminHandler) AdminAction(w http.ResponseWriter, r *http.Request) {
	var req AdminActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode admin action request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	h.apply(w, r, req.SubmissionID, domain.ReviewAction(req.Action), "Submission %s successfully")
}

// WebhookAction applies a decision coming from an external integration.
// It accepts the button action tokens as well as the plain statuses.
func (h *AdminHandler) WebhookAction(w http.ResponseWriter, r *http.Request) {
	var req WebhookActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode webhook action request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	action, ok := domain.ParseActionToken(req.Action)
	if !ok {
		action = domain.ReviewAction(req.Action)
	}

	h.logger.Info("Webhook decision received",
		"submissionId", req.SubmissionID,
		"action", req.Action,
		"adminUserId", req.AdminUserID)

	h.apply(w, r, req.SubmissionID, action, "Submission %s via webhook")
}

func (h *AdminHandler) apply(w http.ResponseWriter, r *http.Request, rawID string, action domain.ReviewAction, messageFormat string) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", rawID)
		response.WriteError(w, response.FromError(errs.NotFound))
		return
	}

	sub, err := h.reviewService.Apply(r.Context(), id, action)
	if err != nil {
		h.logger.Error("Failed to apply decision", "submissionId", id, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, ActionResponse{
		Success:    true,
		Message:    fmt.Sprintf(messageFormat, string(action)),
		Submission: sub,
	})
}
