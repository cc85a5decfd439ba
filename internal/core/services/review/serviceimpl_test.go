package review

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	submissionstore "gitlab.com/void-training.net/internal/adapter/memory/submissionstore"
	"gitlab.com/void-training.net/internal/dispatch"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
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

type grantCall struct {
	userID   string
	roleName string
}

type fakeGrant struct {
	mu    sync.Mutex
	calls []grantCall
}

func (f *fakeGrant) Grant(ctx context.Context, userID, roleName string) domain.GrantResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, grantCall{userID: userID, roleName: roleName})
	return domain.GrantResult{Outcome: domain.GrantGranted, UserID: userID, RoleName: roleName}
}

func newService(roleName string) (*ReviewService, *submissionstore.Store, *fakeGrant) {
	store := submissionstore.New()
	grants := &fakeGrant{}
	svc := NewReviewService(store, grants, inlineDispatcher{}, roleName, nopLogger{})
	return svc, store, grants
}

func seed(t *testing.T, store *submissionstore.Store) *domain.Submission {
	t.Helper()
	sub := domain.NewSubmission("discord-123", "alice@example.com", "alice", nil, 90, true)
	if err := store.SaveSubmission(context.Background(), sub); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return sub
}

func TestApplyAccepted(t *testing.T) {
	svc, store, grants := newService("")
	sub := seed(t, store)

	got, err := svc.Apply(context.Background(), sub.ID, domain.ActionAccepted)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got.Status != domain.StatusAccepted {
		t.Errorf("status = %q", got.Status)
	}
	if !got.UpdatedAt.After(sub.UpdatedAt) {
		t.Error("updated_at not refreshed")
	}
	if !got.CreatedAt.Equal(sub.CreatedAt) {
		t.Error("created_at changed")
	}

	if len(grants.calls) != 1 {
		t.Fatalf("grant called %d times, want 1", len(grants.calls))
	}
	if grants.calls[0].userID != "discord-123" {
		t.Errorf("grant user = %q", grants.calls[0].userID)
	}
	if grants.calls[0].roleName != domain.DefaultVerifiedRole {
		t.Errorf("grant role = %q, want default", grants.calls[0].roleName)
	}
}

func TestApplyAcceptedCustomRole(t *testing.T) {
	svc, store, grants := newService("Trusted Helper")
	sub := seed(t, store)

	if _, err := svc.Apply(context.Background(), sub.ID, domain.ActionAccepted); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(grants.calls) != 1 || grants.calls[0].roleName != "Trusted Helper" {
		t.Errorf("grant calls = %+v", grants.calls)
	}
}

// Acceptance does not depend on whether the test itself was passed;
// admins can approve a failed attempt.
func TestApplyAcceptedFailedAttempt(t *testing.T) {
	svc, store, grants := newService("")
	sub := domain.NewSubmission("discord-456", "bob@example.com", "bob", nil, 40, false)
	if err := store.SaveSubmission(context.Background(), sub); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := svc.Apply(context.Background(), sub.ID, domain.ActionAccepted)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Status != domain.StatusAccepted {
		t.Errorf("status = %q", got.Status)
	}
	if len(grants.calls) != 1 {
		t.Errorf("grant called %d times, want 1", len(grants.calls))
	}
}

func TestApplyDenied(t *testing.T) {
	svc, store, grants := newService("")
	sub := seed(t, store)

	got, err := svc.Apply(context.Background(), sub.ID, domain.ActionDenied)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Status != domain.StatusDenied {
		t.Errorf("status = %q", got.Status)
	}
	if len(grants.calls) != 0 {
		t.Errorf("grant called on denial")
	}
}

func TestApplyInvalidAction(t *testing.T) {
	svc, store, grants := newService("")
	sub := seed(t, store)

	for _, action := range []domain.ReviewAction{"", "pending", "approve", "ACCEPTED"} {
		_, err := svc.Apply(context.Background(), sub.ID, action)
		if !errors.Is(err, errs.InvalidAction) {
			t.Errorf("Apply(%q) err = %v, want InvalidAction", action, err)
		}
	}

	// The record must be untouched by rejected actions
	got, err := store.GetSubmission(context.Background(), sub.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.StatusPending || !got.UpdatedAt.Equal(sub.UpdatedAt) {
		t.Errorf("record mutated: %+v", got)
	}
	if len(grants.calls) != 0 {
		t.Error("grant called for invalid action")
	}
}

func TestApplyUnknownSubmission(t *testing.T) {
	svc, _, grants := newService("")

	_, err := svc.Apply(context.Background(), uuid.New(), domain.ActionAccepted)
	if !errors.Is(err, errs.NotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
	if len(grants.calls) != 0 {
		t.Error("grant called for unknown submission")
	}
}

// Re-deciding overwrites the previous decision, last write wins
func TestApplyRedecide(t *testing.T) {
	svc, store, grants := newService("")
	sub := seed(t, store)
	ctx := context.Background()

	if _, err := svc.Apply(ctx, sub.ID, domain.ActionAccepted); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	got, err := svc.Apply(ctx, sub.ID, domain.ActionDenied)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if got.Status != domain.StatusDenied {
		t.Errorf("status = %q, want denied", got.Status)
	}
	stored, err := store.GetSubmission(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != domain.StatusDenied {
		t.Errorf("stored status = %q", stored.Status)
	}
	// Only the first decision was an acceptance
	if len(grants.calls) != 1 {
		t.Errorf("grant called %d times, want 1", len(grants.calls))
	}
}
