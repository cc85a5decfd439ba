package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultVerifiedRole is the role granted to approved submitters
const DefaultVerifiedRole = "Verified Staff"

// ReviewAction is a decision applied to a submission
type ReviewAction string

const (
	ActionAccepted ReviewAction = "accepted"
	ActionDenied   ReviewAction = "denied"
)

// Valid reports whether the action is one of the two recognized decisions
func (a ReviewAction) Valid() bool {
	return a == ActionAccepted || a == ActionDenied
}

// Status returns the submission status the action resolves to
func (a ReviewAction) Status() SubmissionStatus {
	return SubmissionStatus(a)
}

const componentKeySeparator = "_"

// ComponentKey builds the clickable component id carried on a notice
// button, e.g. "approve_<submissionId>".
func ComponentKey(token string, id uuid.UUID) string {
	return token + componentKeySeparator + id.String()
}

// SplitComponentKey splits a component id on the first separator only.
// ok is false when the key does not have exactly two non-empty parts.
func SplitComponentKey(key string) (token, rawID string, ok bool) {
	parts := strings.SplitN(key, componentKeySeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ParseActionToken maps a button action token to its review action
func ParseActionToken(token string) (ReviewAction, bool) {
	switch token {
	case "approve":
		return ActionAccepted, true
	case "deny":
		return ActionDenied, true
	}
	return "", false
}

// GrantOutcome classifies the result of a role grant attempt
type GrantOutcome string

const (
	GrantGranted          GrantOutcome = "granted"
	GrantAlreadyGranted   GrantOutcome = "already_granted"
	GrantMemberNotFound   GrantOutcome = "member_not_found"
	GrantTimeout          GrantOutcome = "timeout"
	GrantPermissionDenied GrantOutcome = "permission_denied"
	GrantUnavailable      GrantOutcome = "unavailable"
)

// GrantResult is the terminal outcome of a role grant attempt. Failures
// are carried as outcomes, never as errors.
type GrantResult struct {
	Outcome  GrantOutcome `json:"outcome"`
	UserID   string       `json:"user_id"`
	RoleName string       `json:"role_name"`
	Detail   string       `json:"detail,omitempty"`
}

// Success reports whether the member ended up holding the role
func (r GrantResult) Success() bool {
	return r.Outcome == GrantGranted || r.Outcome == GrantAlreadyGranted
}

// SubmissionNotice is the platform-neutral payload of a new-submission
// notification posted to the review channel.
type SubmissionNotice struct {
	Submission    *Submission
	ApproveKey    string
	DenyKey       string
	AdminPanelURL string
}

// NewSubmissionNotice builds the notice for a freshly created submission
func NewSubmissionNotice(sub *Submission, adminPanelURL string) *SubmissionNotice {
	return &SubmissionNotice{
		Submission:    sub,
		ApproveKey:    ComponentKey("approve", sub.ID),
		DenyKey:       ComponentKey("deny", sub.ID),
		AdminPanelURL: adminPanelURL,
	}
}
