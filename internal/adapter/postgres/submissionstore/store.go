// package submissionstore contains the PostgreSQL implementation of the
// submission repository
package submissionstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/ports/secondary"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/static/errs"
)

var _ secondary.SubmissionRepository = (*Store)(nil)

var subTbl = domain.GetSubmissionTable()

// submissionColumns is the column list in scanSubmission order
func submissionColumns() string {
	return strings.Join([]string{
		subTbl.ID,
		subTbl.UserID,
		subTbl.UserEmail,
		subTbl.Username,
		subTbl.Answers,
		subTbl.Score,
		subTbl.Passed,
		subTbl.Status,
		subTbl.CreatedAt,
		subTbl.UpdatedAt,
	}, ", ")
}

// Store implements the SubmissionRepository interface with PostgreSQL
type Store struct {
	db     *sqlx.DB
	logger primary.Logger
}

// New creates a new PostgreSQL submission repository
func New(db *sqlx.DB, logger primary.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// SaveSubmission saves a submission to PostgreSQL
func (r *Store) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	answersJSON, err := json.Marshal(sub.Answers)
	if err != nil {
		r.logger.Error("Failed to marshal submission answers", "error", err)
		return fmt.Errorf("failed to marshal submission answers: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`, subTbl.TableName(), submissionColumns(),
		subTbl.ID,
		subTbl.Status, subTbl.Status,
		subTbl.UpdatedAt, subTbl.UpdatedAt)

	_, err = r.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.UserEmail,
		sub.Username,
		answersJSON,
		sub.Score,
		sub.Passed,
		sub.Status,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission from PostgreSQL by id
func (r *Store) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, submissionColumns(), subTbl.TableName(), subTbl.ID)

	row := r.db.QueryRowContext(ctx, query, id)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFound
		}
		r.logger.Error("Failed to get submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return sub, nil
}

// ListSubmissions retrieves submissions ordered by created_at descending,
// optionally filtered by status
func (r *Store) ListSubmissions(ctx context.Context, status domain.SubmissionStatus) ([]*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
	`, submissionColumns(), subTbl.TableName())
	var args []interface{}
	if status != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, subTbl.Status)
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY %s DESC`, subTbl.CreatedAt)

	return r.querySubmissions(ctx, query, args...)
}

// ListSubmissionsByUser retrieves one user's submissions, newest first
func (r *Store) ListSubmissionsByUser(ctx context.Context, userID string) ([]*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`, submissionColumns(), subTbl.TableName(), subTbl.UserID, subTbl.CreatedAt)

	return r.querySubmissions(ctx, query, userID)
}

// UpdateSubmissionStatus sets status and updated_at in a single statement
func (r *Store) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, updatedAt time.Time) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
		RETURNING %s
	`, subTbl.TableName(), subTbl.Status, subTbl.UpdatedAt, subTbl.ID, submissionColumns())

	row := r.db.QueryRowContext(ctx, query, id, status, updatedAt)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NotFound
		}
		r.logger.Error("Failed to update submission status", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	return sub, nil
}

// DeleteSubmission removes a submission from PostgreSQL
func (r *Store) DeleteSubmission(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, subTbl.TableName(), subTbl.ID)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("Failed to delete submission", "submissionId", id, "error", err)
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if affected == 0 {
		return errs.NotFound
	}

	return nil
}

func (r *Store) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]*domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []*domain.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return subs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*domain.Submission, error) {
	var sub domain.Submission
	var answersJSON []byte

	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.UserEmail,
		&sub.Username,
		&answersJSON,
		&sub.Score,
		&sub.Passed,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &sub.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission answers: %w", err)
		}
	}

	return &sub, nil
}
