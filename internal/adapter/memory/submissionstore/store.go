package submissionstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ secondary.SubmissionRepository = (*Store)(nil)

// Store is the default in-memory submission repository. A single RWMutex
// guards the records; status and updated_at always change under the same
// write lock so the pair is never observable half-written.
type Store struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.Submission
	ordered []uuid.UUID
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		byID: make(map[uuid.UUID]*domain.Submission),
	}
}

// SaveSubmission persists a submission, overwriting any record with the same id
func (s *Store) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[sub.ID]; !ok {
		s.ordered = append(s.ordered, sub.ID)
	}
	s.byID[sub.ID] = sub.Clone()
	return nil
}

// GetSubmission retrieves a submission by id
func (s *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.byID[id]
	if !ok {
		return nil, errs.NotFound
	}
	return sub.Clone(), nil
}

// ListSubmissions retrieves submissions newest first, optionally filtered by status
func (s *Store) ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Submission, 0, len(s.ordered))
	for i := len(s.ordered) - 1; i >= 0; i-- {
		sub := s.byID[s.ordered[i]]
		if status != "" && sub.Status != status {
			continue
		}
		out = append(out, sub.Clone())
	}
	sortByCreatedDesc(out)
	return out, nil
}

// ListSubmissionsByUser retrieves one user's submissions, newest first
func (s *Store) ListSubmissionsByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Submission
	for i := len(s.ordered) - 1; i >= 0; i-- {
		sub := s.byID[s.ordered[i]]
		if sub.UserID != userID {
			continue
		}
		out = append(out, sub.Clone())
	}
	sortByCreatedDesc(out)
	return out, nil
}

// UpdateSubmissionStatus sets status and updated_at together
func (s *Store) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.byID[id]
	if !ok {
		return nil, errs.NotFound
	}
	sub.Status = status
	sub.UpdatedAt = updatedAt
	return sub.Clone(), nil
}

// DeleteSubmission removes a submission
func (s *Store) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return errs.NotFound
	}
	delete(s.byID, id)
	for i, ordered := range s.ordered {
		if ordered == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}
	return nil
}

func sortByCreatedDesc(subs []*domain.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
}
