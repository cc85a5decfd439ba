package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus represents the review state of a submission
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusAccepted SubmissionStatus = "accepted"
	StatusDenied   SubmissionStatus = "denied"
)

// Answer is a single answered question within a submission
type Answer struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	UserAnswer     string `json:"user_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// Submission represents one completed staff training test awaiting review.
// Identity fields, answers, score and passed are fixed at creation; only
// Status and UpdatedAt change afterwards, and always together.
type Submission struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    string           `json:"user_id" db:"user_id"`
	UserEmail string           `json:"user_email" db:"user_email"`
	Username  string           `json:"username" db:"username"`
	Answers   []Answer         `json:"answers" db:"-"`
	Score     float64          `json:"score" db:"score"`
	Passed    bool             `json:"passed" db:"passed"`
	Status    SubmissionStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// NewSubmission creates a pending submission with a fresh id
func NewSubmission(userID, userEmail, username string, answers []Answer, score float64, passed bool) *Submission {
	now := time.Now().UTC()
	return &Submission{
		ID:        uuid.New(),
		UserID:    userID,
		UserEmail: userEmail,
		Username:  username,
		Answers:   answers,
		Score:     score,
		Passed:    passed,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy that is safe to hand out of the store
func (s *Submission) Clone() *Submission {
	cp := *s
	cp.Answers = make([]Answer, len(s.Answers))
	copy(cp.Answers, s.Answers)
	return &cp
}

type SubmissionTable struct {
	ID        string
	UserID    string
	UserEmail string
	Username  string
	Answers   string
	Score     string
	Passed    string
	Status    string
	CreatedAt string
	UpdatedAt string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:        "id",
		UserID:    "user_id",
		UserEmail: "user_email",
		Username:  "username",
		Answers:   "answers",
		Score:     "score",
		Passed:    "passed",
		Status:    "status",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}

// SubmissionStats summarizes review progress for the admin dashboard
type SubmissionStats struct {
	Total    int     `json:"total_submissions"`
	Pending  int     `json:"pending"`
	Accepted int     `json:"accepted"`
	Denied   int     `json:"denied"`
	PassRate float64 `json:"pass_rate"`
}
