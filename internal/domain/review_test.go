package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestSplitComponentKey(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		key       string
		wantToken string
		wantID    string
		wantOK    bool
	}{
		{name: "approve key", key: "approve_" + id.String(), wantToken: "approve", wantID: id.String(), wantOK: true},
		{name: "deny key", key: "deny_" + id.String(), wantToken: "deny", wantID: id.String(), wantOK: true},
		{name: "no separator", key: "approve", wantOK: false},
		{name: "empty token", key: "_" + id.String(), wantOK: false},
		{name: "empty id", key: "approve_", wantOK: false},
		{name: "empty key", key: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, rawID, ok := SplitComponentKey(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("SplitComponentKey(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if token != tt.wantToken || rawID != tt.wantID {
				t.Errorf("SplitComponentKey(%q) = (%q, %q), want (%q, %q)", tt.key, token, rawID, tt.wantToken, tt.wantID)
			}
		})
	}
}

func TestSplitComponentKeyPreservesUnderscoresInID(t *testing.T) {
	token, rawID, ok := SplitComponentKey("approve_abc_def")
	if !ok {
		t.Fatal("expected key to split")
	}
	if token != "approve" || rawID != "abc_def" {
		t.Errorf("got (%q, %q), want (approve, abc_def)", token, rawID)
	}
}

func TestParseActionToken(t *testing.T) {
	tests := []struct {
		token  string
		want   ReviewAction
		wantOK bool
	}{
		{token: "approve", want: ActionAccepted, wantOK: true},
		{token: "deny", want: ActionDenied, wantOK: true},
		{token: "accepted", wantOK: false},
		{token: "", wantOK: false},
		{token: "Approve", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseActionToken(tt.token)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseActionToken(%q) = (%q, %v), want (%q, %v)", tt.token, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReviewActionValid(t *testing.T) {
	if !ActionAccepted.Valid() || !ActionDenied.Valid() {
		t.Error("expected accepted and denied to be valid")
	}
	if ReviewAction("pending").Valid() || ReviewAction("").Valid() || ReviewAction("approve").Valid() {
		t.Error("expected non-decision actions to be invalid")
	}
}

func TestReviewActionStatus(t *testing.T) {
	if ActionAccepted.Status() != StatusAccepted {
		t.Errorf("accepted action resolves to %q", ActionAccepted.Status())
	}
	if ActionDenied.Status() != StatusDenied {
		t.Errorf("denied action resolves to %q", ActionDenied.Status())
	}
}

func TestGrantResultSuccess(t *testing.T) {
	okOutcomes := []GrantOutcome{GrantGranted, GrantAlreadyGranted}
	for _, outcome := range okOutcomes {
		if !(GrantResult{Outcome: outcome}).Success() {
			t.Errorf("outcome %q should be a success", outcome)
		}
	}

	failed := []GrantOutcome{GrantMemberNotFound, GrantTimeout, GrantPermissionDenied, GrantUnavailable}
	for _, outcome := range failed {
		if (GrantResult{Outcome: outcome}).Success() {
			t.Errorf("outcome %q should not be a success", outcome)
		}
	}
}

func TestNewSubmissionNotice(t *testing.T) {
	sub := NewSubmission("u1", "u1@example.com", "alice", nil, 92.5, true)
	notice := NewSubmissionNotice(sub, "http://localhost:3000/admin")

	if notice.ApproveKey != "approve_"+sub.ID.String() {
		t.Errorf("approve key = %q", notice.ApproveKey)
	}
	if notice.DenyKey != "deny_"+sub.ID.String() {
		t.Errorf("deny key = %q", notice.DenyKey)
	}
	if notice.AdminPanelURL != "http://localhost:3000/admin" {
		t.Errorf("admin panel url = %q", notice.AdminPanelURL)
	}
	if notice.Submission != sub {
		t.Error("notice should carry the submission")
	}
}

func TestNewSubmission(t *testing.T) {
	sub := NewSubmission("u1", "u1@example.com", "alice", []Answer{{QuestionNumber: 1, IsCorrect: true}}, 80, true)

	if sub.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if sub.Status != StatusPending {
		t.Errorf("status = %q, want pending", sub.Status)
	}
	if !sub.CreatedAt.Equal(sub.UpdatedAt) {
		t.Error("created_at and updated_at should match at creation")
	}
}

func TestSubmissionClone(t *testing.T) {
	sub := NewSubmission("u1", "u1@example.com", "alice", []Answer{{QuestionNumber: 1}}, 80, true)
	cp := sub.Clone()

	cp.Status = StatusAccepted
	cp.Answers[0].QuestionNumber = 99

	if sub.Status != StatusPending {
		t.Error("clone mutation leaked into original status")
	}
	if sub.Answers[0].QuestionNumber != 1 {
		t.Error("clone mutation leaked into original answers")
	}
}
