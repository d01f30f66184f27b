package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"snowboarding-assistant/internal/usage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Incr(ctx, usage.ResourceSearch, 1); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Fatalf("Incr() on missing counter err = %v", err)
	}
	if err := s.Put(ctx, usage.ResourceSearch, usage.Counter{Count: -3, WindowStart: time.Now()}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	c, err := s.Get(ctx, usage.ResourceSearch)
	if err != nil || c.Count != 0 {
		t.Errorf("Get() = %+v, %v; negative count should clamp to 0", c, err)
	}
	if _, err := s.Incr(ctx, usage.ResourceSearch, 2); err != nil {
		t.Fatalf("Incr() error = %v", err)
	}
	c, _ = s.Incr(ctx, usage.ResourceSearch, -5)
	if c.Count != 0 {
		t.Errorf("count = %d, want 0", c.Count)
	}
}
