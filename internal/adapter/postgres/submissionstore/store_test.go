package submissionstore

import (
	"strings"
	"testing"

	"gitlab.com/void-training.net/internal/domain"
)

func TestSubmissionColumnsMatchTableMetadata(t *testing.T) {
	tbl := domain.GetSubmissionTable()

	want := []string{
		tbl.ID,
		tbl.UserID,
		tbl.UserEmail,
		tbl.Username,
		tbl.Answers,
		tbl.Score,
		tbl.Passed,
		tbl.Status,
		tbl.CreatedAt,
		tbl.UpdatedAt,
	}

	got := strings.Split(submissionColumns(), ", ")
	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d", len(got), len(want))
	}
	for i, col := range want {
		if got[i] != col {
			t.Errorf("column %d = %q, want %q", i, got[i], col)
		}
	}
}

func TestSubmissionTableName(t *testing.T) {
	if got := subTbl.TableName(); got != "submissions" {
		t.Errorf("table name = %q", got)
	}
}
