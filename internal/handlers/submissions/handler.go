package submissions

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/services/submission"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/handlers/response"
)

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/submissions", h.CreateSubmission).Methods("POST")
	router.HandleFunc("/submissions", h.ListSubmissions).Methods("GET")
	router.HandleFunc("/submissions/user/{userId}", h.ListUserSubmissions).Methods("GET")
	router.HandleFunc("/submissions/{submissionId}", h.GetSubmission).Methods("GET")
	router.HandleFunc("/submissions/{submissionId}", h.DeleteSubmission).Methods("DELETE")
	router.HandleFunc("/admin/stats", h.GetStats).Methods("GET")
}

// CreateSubmission handles submission creation requests
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var input submission.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Failed to decode submission request", "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid request body", StatusCode: http.StatusBadRequest})
		return
	}

	sub, err := h.submissionService.CreateSubmission(r.Context(), &input)
	if err != nil {
		h.logger.Error("Failed to create submission", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusCreated, SubmissionResponse{
		Message:    "Submission received successfully",
		Submission: sub,
	})
}

// ListSubmissions handles submission listing requests, optionally
// filtered with ?status=
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := domain.SubmissionStatus(r.URL.Query().Get("status"))

	subs, err := h.submissionService.ListSubmissions(r.Context(), status)
	if err != nil {
		h.logger.Error("Failed to list submissions", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	if subs == nil {
		subs = []*domain.Submission{}
	}
	response.WriteSuccess(w, subs)
}

// ListUserSubmissions handles per-user submission listing requests
func (h *SubmissionHandler) ListUserSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	subs, err := h.submissionService.ListUserSubmissions(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list user submissions", "userId", userID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	if subs == nil {
		subs = []*domain.Submission{}
	}
	response.WriteSuccess(w, subs)
}

// GetSubmission handles submission retrieval requests
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	sub, err := h.submissionService.GetSubmission(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, sub)
}

// DeleteSubmission handles submission deletion requests
func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.submissionService.DeleteSubmission(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete submission", "submissionId", id, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, DeleteResponse{Success: true, Message: "Submission deleted"})
}

// GetStats handles review stats requests
func (h *SubmissionHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.submissionService.GetStats(r.Context())
	if err != nil {
		h.logger.Error("Failed to get stats", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteSuccess(w, stats)
}

func (h *SubmissionHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["submissionId"]
	id, err := uuid.Parse(raw)
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", raw)
		response.WriteError(w, response.ErrorMessage{Message: "Invalid submission ID", StatusCode: http.StatusBadRequest})
		return uuid.Nil, false
	}
	return id, true
}
