package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"snowboarding-assistant/internal/usage"
)

func newTestStore(t *testing.T) (*implStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb), mr
}

func TestParseCounter(t *testing.T) {
	c, err := parseCounter(map[string]string{fieldCount: "7", fieldWindowStart: "1700000000000"})
	if err != nil {
		t.Fatalf("parseCounter() error = %v", err)
	}
	if c.Count != 7 || !c.WindowStart.Equal(time.UnixMilli(1700000000000)) {
		t.Errorf("parseCounter() = %+v", c)
	}

	if _, err := parseCounter(map[string]string{fieldCount: "x", fieldWindowStart: "1"}); err == nil {
		t.Error("expected error for malformed count")
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	if _, err := NewClient("not-a-redis-url"); err == nil {
		t.Error("expected error for invalid url")
	}
}

func TestStore_MissingCounter(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.Get(ctx, usage.ResourceSearch); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Errorf("Get() err = %v, want ErrCounterNotFound", err)
	}
	if _, err := s.Incr(ctx, usage.ResourceSearch, 1); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Errorf("Incr() err = %v, want ErrCounterNotFound", err)
	}
}

func TestStore_PutGetIncr(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	start := time.UnixMilli(1_700_000_000_000)

	if err := s.Put(ctx, usage.ResourceSearch, usage.Counter{Count: 4, WindowStart: start}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	c, err := s.Get(ctx, usage.ResourceSearch)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if c.Count != 4 || !c.WindowStart.Equal(start) {
		t.Errorf("Get() = %+v, want count 4 start %v", c, start)
	}

	c, err = s.Incr(ctx, usage.ResourceSearch, 1)
	if err != nil || c.Count != 5 {
		t.Fatalf("Incr() = %+v, %v; want count 5", c, err)
	}
	if got := mr.HGet(key(usage.ResourceSearch), fieldCount); got != "5" {
		t.Errorf("stored count = %q, want 5", got)
	}

	if _, err := s.Get(ctx, usage.ResourceRequest); !errors.Is(err, usage.ErrCounterNotFound) {
		t.Errorf("resources must not share a key, got err = %v", err)
	}
}

func TestStore_IncrClampsAtZero(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Put(ctx, usage.ResourceRequest, usage.Counter{Count: 2, WindowStart: time.UnixMilli(0)}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	c, err := s.Incr(ctx, usage.ResourceRequest, -5)
	if err != nil {
		t.Fatalf("Incr() error = %v", err)
	}
	if c.Count != 0 {
		t.Errorf("Incr() count = %d, want 0", c.Count)
	}
}

func TestStore_PutClampsNegative(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if err := s.Put(ctx, usage.ResourceSearch, usage.Counter{Count: -3, WindowStart: time.UnixMilli(0)}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if c, err := s.Get(ctx, usage.ResourceSearch); err != nil || c.Count != 0 {
		t.Errorf("Get() = %+v, %v; want count 0", c, err)
	}
}
