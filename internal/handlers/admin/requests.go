package admin

import "gitlab.com/void-training.net/internal/domain"

// AdminActionRequest is a decision submitted from the admin panel
type AdminActionRequest struct {
	SubmissionID string `json:"submission_id"`
	Action       string `json:"action"`
}

// WebhookActionRequest is a decision submitted by an external integration
type WebhookActionRequest struct {
	SubmissionID string `json:"submission_id"`
	Action       string `json:"action"`
	AdminUserID  string `json:"admin_user_id"`
}

// ActionResponse is returned after a decision is applied
type ActionResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Submission *domain.Submission `json:"submission"`
}
