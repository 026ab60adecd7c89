package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsBindParameterMismatch(t *testing.T) {
	t.Run("matches bind mismatch error", func(t *testing.T) {
		err := fakeErr("pq: bind message supplies 2 parameters, but prepared statement \"\" requires 1 (08P01)")
		if !isBindParameterMismatch(err) {
			t.Fatalf("expected true for bind mismatch error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		err := fakeErr("pq: relation players does not exist")
		if isBindParameterMismatch(err) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsUnnamedPreparedStatementMissing(t *testing.T) {
	t.Run("matches statement missing message", func(t *testing.T) {
		err := fakeErr("pq: unnamed prepared statement does not exist (26000)")
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for statement missing error")
		}
	})

	t.Run("matches pq error code", func(t *testing.T) {
		err := fmt.Errorf("select players: %w", &pq.Error{Code: "26000", Message: "prepared statement missing"})
		if !isUnnamedPreparedStatementMissing(err) {
			t.Fatalf("expected true for wrapped 26000 pq error")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isUnnamedPreparedStatementMissing(fakeErr("pq: relation players does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
		if shouldRetryStatement(nil) {
			t.Fatalf("expected false for nil error")
		}
	})
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get archive: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("boom")) {
		t.Fatalf("expected unrelated error to be found")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString("  "); got.Valid {
		t.Fatalf("expected blank to be null, got %+v", got)
	}
	if got := nullString(" BUF "); !got.Valid || got.String != "BUF" {
		t.Fatalf("unexpected value: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
