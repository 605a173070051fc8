package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robalobadob/wordle/apps/solver-server/internal/solver"
)

func testEntry(t *testing.T, id string) *Entry {
	t.Helper()
	d, err := solver.NewDictionary([]string{"abcde", "abcdf"}, nil, nil)
	if err != nil {
		t.Fatalf("build dictionary: %v", err)
	}
	sess, err := solver.NewSession(d, solver.Config{Alpha: 0.7, TopK: 5})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return &Entry{ID: id, Sess: sess, CreatedAt: time.Now()}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	e := testEntry(t, "s1")
	if err := m.Put(ctx, e); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := m.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != e {
		t.Fatalf("expected the same entry pointer back")
	}

	if n, _ := m.Len(ctx); n != 1 {
		t.Fatalf("expected 1 session, got %d", n)
	}

	if err := m.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.Delete(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if n, _ := m.Len(ctx); n != 0 {
		t.Fatalf("expected 0 sessions, got %d", n)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	e := testEntry(t, "shared")
	if err := m.Put(ctx, e); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Readers race against Put of other keys; the race detector keeps us
	// honest here.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_, _ = m.Get(ctx, "shared")
		}
	}()
	for i := 0; i < 100; i++ {
		_ = m.Put(ctx, testEntry(t, "other"))
	}
	<-done
}
