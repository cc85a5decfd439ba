package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	submissionstore "gitlab.com/void-training.net/internal/adapter/memory/submissionstore"
	"gitlab.com/void-training.net/internal/core/services/review"
	"gitlab.com/void-training.net/internal/dispatch"
	"gitlab.com/void-training.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type inlineDispatcher struct{}

func (inlineDispatcher) Submit(name string, task dispatch.Task) bool {
	task(context.Background())
	return true
}

type fakeGrant struct {
	mu      sync.Mutex
	userIDs []string
}

func (f *fakeGrant) Grant(ctx context.Context, userID, roleName string) domain.GrantResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userIDs = append(f.userIDs, userID)
	return domain.GrantResult{Outcome: domain.GrantGranted, UserID: userID, RoleName: roleName}
}

func newRouter(t *testing.T) (*mux.Router, *submissionstore.Store, *fakeGrant, *domain.Submission) {
	t.Helper()
	store := submissionstore.New()
	grants := &fakeGrant{}
	svc := review.NewReviewService(store, grants, inlineDispatcher{}, "", nopLogger{})

	router := mux.NewRouter()
	NewAdminHandler(svc, nopLogger{}).RegisterRoutes(router)

	sub := domain.NewSubmission("discord-123", "alice@example.com", "alice", nil, 90, true)
	if err := store.SaveSubmission(context.Background(), sub); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return router, store, grants, sub
}

func post(router *mux.Router, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminActionAccept(t *testing.T) {
	router, store, grants, sub := newRouter(t)

	rec := post(router, "/admin/action", AdminActionRequest{
		SubmissionID: sub.ID.String(),
		Action:       "accepted",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp ActionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message != "Submission accepted successfully" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Submission == nil || resp.Submission.Status != domain.StatusAccepted {
		t.Errorf("submission = %+v", resp.Submission)
	}

	got, err := store.GetSubmission(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusAccepted {
		t.Errorf("stored status = %q", got.Status)
	}

	if len(grants.userIDs) != 1 || grants.userIDs[0] != "discord-123" {
		t.Errorf("grants = %v", grants.userIDs)
	}
}

func TestAdminActionDeny(t *testing.T) {
	router, _, grants, sub := newRouter(t)

	rec := post(router, "/admin/action", AdminActionRequest{
		SubmissionID: sub.ID.String(),
		Action:       "denied",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp ActionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Submission denied successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if len(grants.userIDs) != 0 {
		t.Error("denial triggered a role grant")
	}
}

func TestAdminActionInvalid(t *testing.T) {
	router, store, _, sub := newRouter(t)

	rec := post(router, "/admin/action", AdminActionRequest{
		SubmissionID: sub.ID.String(),
		Action:       "maybe",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}

	got, err := store.GetSubmission(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusPending {
		t.Error("invalid action mutated the submission")
	}
}

func TestAdminActionUnknownSubmission(t *testing.T) {
	router, _, _, _ := newRouter(t)

	rec := post(router, "/admin/action", AdminActionRequest{
		SubmissionID: uuid.New().String(),
		Action:       "accepted",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

// A malformed id is indistinguishable from a missing submission
func TestAdminActionBadID(t *testing.T) {
	router, _, _, _ := newRouter(t)

	rec := post(router, "/admin/action", AdminActionRequest{
		SubmissionID: "not-a-uuid",
		Action:       "accepted",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestWebhookActionTokens(t *testing.T) {
	tests := []struct {
		action     string
		wantStatus domain.SubmissionStatus
	}{
		{action: "approve", wantStatus: domain.StatusAccepted},
		{action: "deny", wantStatus: domain.StatusDenied},
		{action: "accepted", wantStatus: domain.StatusAccepted},
		{action: "denied", wantStatus: domain.StatusDenied},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			router, store, _, sub := newRouter(t)

			rec := post(router, "/webhook/action", WebhookActionRequest{
				SubmissionID: sub.ID.String(),
				Action:       tt.action,
				AdminUserID:  "admin-9",
			})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			got, err := store.GetSubmission(context.Background(), sub.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestWebhookActionInvalid(t *testing.T) {
	router, _, _, sub := newRouter(t)

	rec := post(router, "/webhook/action", WebhookActionRequest{
		SubmissionID: sub.ID.String(),
		Action:       "promote",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
