package submissionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

const (
	submissionKeyPrefix = "submission:"
	statusIndexPrefix   = "submission:status:"
)

var _ secondary.SubmissionRepository = (*Store)(nil)

// Store implements the SubmissionRepository interface with Redis. Records
// are stored as JSON under prefixed keys with a set per status as index.
type Store struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// New creates a new Redis submission repository
func New(redisClient *redis.Client, logger primary.Logger) *Store {
	return &Store{
		redisClient: redisClient,
		logger:      logger,
	}
}

// SaveSubmission saves a submission to Redis and indexes it by status
func (r *Store) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	subJSON, err := json.Marshal(sub)
	if err != nil {
		r.logger.Error("Failed to marshal submission", "error", err)
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	pipe := r.redisClient.TxPipeline()
	pipe.Set(ctx, submissionKey(sub.ID), subJSON, 0)
	for _, status := range allStatuses() {
		if status == sub.Status {
			pipe.SAdd(ctx, statusIndexPrefix+string(status), sub.ID.String())
		} else {
			pipe.SRem(ctx, statusIndexPrefix+string(status), sub.ID.String())
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to save submission", "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission from Redis by id
func (r *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	subJSON, err := r.redisClient.Get(ctx, submissionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errs.NotFound
		}
		r.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal(subJSON, &sub); err != nil {
		r.logger.Error("Failed to unmarshal submission", "error", err)
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	return &sub, nil
}

// ListSubmissions retrieves submissions newest first, optionally filtered by status
func (r *Store) ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	if status != "" {
		ids, err := r.redisClient.SMembers(ctx, statusIndexPrefix+string(status)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read status index: %w", err)
		}
		subs, err := r.fetchByIDStrings(ctx, ids)
		if err != nil {
			return nil, err
		}
		sortByCreatedDesc(subs)
		return subs, nil
	}

	subs, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByCreatedDesc(subs)
	return subs, nil
}

// ListSubmissionsByUser retrieves one user's submissions, newest first
func (r *Store) ListSubmissionsByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	all, err := r.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	var subs []*domain.Submission
	for _, sub := range all {
		if sub.UserID == userID {
			subs = append(subs, sub)
		}
	}
	sortByCreatedDesc(subs)
	return subs, nil
}

// UpdateSubmissionStatus sets status and updated_at on the stored record
func (r *Store) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) (*domain.Submission, error) {
	sub, err := r.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Status = status
	sub.UpdatedAt = updatedAt
	if err := r.SaveSubmission(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// DeleteSubmission removes a submission and its index entries
func (r *Store) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.redisClient.Del(ctx, submissionKey(id)).Result()
	if err != nil {
		r.logger.Error("Failed to delete submission", "submissionId", id, "error", err)
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if deleted == 0 {
		return errs.NotFound
	}

	for _, status := range allStatuses() {
		if err := r.redisClient.SRem(ctx, statusIndexPrefix+string(status), id.String()).Err(); err != nil {
			r.logger.Error("Failed to remove submission from status index", "submissionId", id, "error", err)
		}
	}

	return nil
}

// scanAll iterates over all submission keys and loads every record
func (r *Store) scanAll(ctx context.Context) ([]*domain.Submission, error) {
	var cursor uint64
	var keys []string
	var err error

	var submissionKeys []string
	for {
		keys, cursor, err = r.redisClient.Scan(ctx, cursor, submissionKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission keys: %w", err)
		}
		submissionKeys = append(submissionKeys, keys...)
		if cursor == 0 {
			break
		}
	}

	if len(submissionKeys) == 0 {
		return nil, nil
	}

	subData, err := r.redisClient.MGet(ctx, submissionKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve submission data: %w", err)
	}

	var subs []*domain.Submission
	for _, data := range subData {
		// index sets match the scan pattern too but yield nil here
		if data == nil {
			continue
		}
		var sub domain.Submission
		if err := json.Unmarshal([]byte(data.(string)), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission data: %w", err)
		}
		subs = append(subs, &sub)
	}

	return subs, nil
}

func (r *Store) fetchByIDStrings(ctx context.Context, ids []string) ([]*domain.Submission, error) {
	subs := make([]*domain.Submission, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Error("Invalid submission id in status index", "id", raw)
			continue
		}
		sub, err := r.GetSubmission(ctx, id)
		if err != nil {
			if err == errs.NotFound {
				continue
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

func submissionKey(id uuid.UUID) string {
	return fmt.Sprintf("%s%s", submissionKeyPrefix, id)
}

func allStatuses() []domain.SubmissionStatus {
	return []domain.SubmissionStatus{domain.StatusPending, domain.StatusAccepted, domain.StatusDenied}
}

func sortByCreatedDesc(subs []*domain.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})
}
