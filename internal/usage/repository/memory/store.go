package memory

import (
	"context"
	"sync"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/internal/usage/repository"
)

type implStore struct {
	mu       sync.Mutex
	counters map[usage.Resource]usage.Counter
}

var _ repository.Store = (*implStore)(nil)

// New returns a process-local counter store.
func New() *implStore {
	return &implStore{counters: make(map[usage.Resource]usage.Counter)}
}

func (s *implStore) Get(ctx context.Context, r usage.Resource) (usage.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[r]
	if !ok {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	return c, nil
}

func (s *implStore) Put(ctx context.Context, r usage.Resource, c usage.Counter) error {
	if c.Count < 0 {
		c.Count = 0
	}
	s.mu.Lock()
	s.counters[r] = c
	s.mu.Unlock()
	return nil
}

func (s *implStore) Incr(ctx context.Context, r usage.Resource, delta int) (usage.Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[r]
	if !ok {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	c.Count += delta
	if c.Count < 0 {
		c.Count = 0
	}
	s.counters[r] = c
	return c, nil
}
