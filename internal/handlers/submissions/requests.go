package submissions

import "gitlab.com/void-training.net/internal/domain"

// SubmissionResponse is returned from submission creation
type SubmissionResponse struct {
	Message    string             `json:"message"`
	Submission *domain.Submission `json:"submission"`
}

// DeleteResponse is returned from submission deletion
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
