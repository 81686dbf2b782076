package testutil

import (
	"testing"

	"github.com/ticksolve/ticksolve/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied.
// It automatically closes the store when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

// NewTestTicketStore creates a TicketStore backed by an in-memory database.
func NewTestTicketStore(t *testing.T) *store.TicketStore {
	t.Helper()
	return store.NewTicketStore(NewTestStore(t), nil)
}
