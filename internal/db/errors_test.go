package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
)

func TestMapDBError(t *testing.T) {
	if MapDBError(nil) != nil {
		t.Fatal("expected nil to map to nil")
	}

	for _, msg := range []string{
		"Error 1062: Duplicate entry 'ana@softwear.ph' for key 'users.email'",
		"ERROR: duplicate key value violates unique constraint \"users_email_key\" (SQLSTATE 23505)",
		"constraint failed: UNIQUE constraint failed: users.email",
	} {
		if !errors.Is(MapDBError(errors.New(msg)), ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate for %q", msg)
		}
	}

	plain := errors.New("syntax error near SELECT")
	if got := MapDBError(plain); got != plain {
		t.Fatalf("expected unrelated error passed through, got %v", got)
	}
}

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "dial tcp: lookup db" }
func (fakeNetError) Timeout() bool   { return false }
func (fakeNetError) Temporary() bool { return true }

func TestIsUnreachable(t *testing.T) {
	unreachable := []error{
		driver.ErrBadConn,
		context.DeadlineExceeded,
		fmt.Errorf("query: %w", driver.ErrBadConn),
		fakeNetError{},
		errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
		errors.New("write: broken pipe"),
		errors.New("read tcp 10.0.0.2:3306: i/o timeout"),
		errors.New("Error 2006: MySQL server has gone away"),
		errors.New("FATAL: the database system is starting up"),
	}
	for _, err := range unreachable {
		if !IsUnreachable(err) {
			t.Fatalf("expected %v to classify as unreachable", err)
		}
	}

	reachable := []error{
		nil,
		errors.New("no rows in result set"),
		errors.New("constraint failed: NOT NULL"),
		context.Canceled,
	}
	for _, err := range reachable {
		if IsUnreachable(err) {
			t.Fatalf("expected %v to not classify as unreachable", err)
		}
	}
}
