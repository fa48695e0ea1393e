package testsupport

import (
	"context"
	"testing"

	"slugline/internal/runstore"
)

// MustOpenStore opens a runstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB) *runstore.Store {
	t.Helper()

	store, err := runstore.Open(context.Background())
	if err != nil {
		t.Fatalf("runstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
