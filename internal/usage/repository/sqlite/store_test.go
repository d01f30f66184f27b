package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/pkg/sqlitedb"
)

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "usage.db")
	start := time.UnixMilli(1_700_000_000_000)

	db, err := sqlitedb.Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s, err := New(ctx, db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := s.Get(ctx, usage.ResourceSearch); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Fatalf("Get() on empty store err = %v, want ErrCounterNotFound", err)
	}
	if _, err := s.Incr(ctx, usage.ResourceSearch, 1); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Fatalf("Incr() on missing counter err = %v, want ErrCounterNotFound", err)
	}
	if err := s.Put(ctx, usage.ResourceSearch, usage.Counter{Count: 4, WindowStart: start}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if c, err := s.Incr(ctx, usage.ResourceSearch, 1); err != nil || c.Count != 5 {
		t.Fatalf("Incr() = %+v, %v; want count 5", c, err)
	}
	db.Close()

	db, err = sqlitedb.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	s, err = New(ctx, db)
	if err != nil {
		t.Fatalf("New() after reopen error = %v", err)
	}

	c, err := s.Get(ctx, usage.ResourceSearch)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if c.Count != 5 || !c.WindowStart.Equal(start) {
		t.Errorf("counter after reopen = %+v, want count 5 start %v", c, start)
	}
}

func TestStore_NeverNegative(t *testing.T) {
	ctx := context.Background()
	db, err := sqlitedb.Open(ctx, filepath.Join(t.TempDir(), "usage.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	s, err := New(ctx, db)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := s.Put(ctx, usage.ResourceRequest, usage.Counter{Count: 1, WindowStart: time.Now()}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	c, err := s.Incr(ctx, usage.ResourceRequest, -5)
	if err != nil {
		t.Fatalf("Incr() error = %v", err)
	}
	if c.Count != 0 {
		t.Errorf("count = %d, want 0", c.Count)
	}
}
