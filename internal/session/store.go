// Package session keeps conversation history and location consent in an
// in-process expirable LRU. Sessions idle longer than the TTL are forgotten.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"snowboarding-assistant/internal/model"
)

type Store struct {
	mu         sync.Mutex
	cache      *expirable.LRU[string, Session]
	maxHistory int
	now        func() time.Time
}

func New(cfg Config) *Store {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	return &Store{
		cache:      expirable.NewLRU[string, Session](cfg.Size, nil, cfg.TTL),
		maxHistory: cfg.MaxHistory,
		now:        time.Now,
	}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// Get returns the session for id, or an empty one if it is unknown or expired.
func (s *Store) Get(id string) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id), nil
}

// SaveHistory replaces the session history, keeping the most recent turns.
func (s *Store) SaveHistory(id string, history []model.Turn) (Session, error) {
	return s.update(id, func(sess *Session) {
		if len(history) > s.maxHistory {
			history = history[len(history)-s.maxHistory:]
		}
		sess.History = model.AppendTurns(nil, history...)
	})
}

// GrantLocation records the user's consent together with their position.
func (s *Store) GrantLocation(id string, loc model.Location) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.Location = &loc
	})
}

func (s *Store) RevokeLocation(id string) (Session, error) {
	return s.update(id, func(sess *Session) {
		sess.Location = nil
	})
}

// Reset forgets the session entirely.
func (s *Store) Reset(id string) {
	s.cache.Remove(strings.TrimSpace(id))
}

func (s *Store) Len() int {
	return s.cache.Len()
}

func (s *Store) update(id string, fn func(*Session)) (Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Session{}, ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(id)
	fn(&sess)
	sess.UpdatedAt = s.now()
	s.cache.Add(id, sess)
	return sess, nil
}

func (s *Store) get(id string) Session {
	sess, ok := s.cache.Get(id)
	if !ok {
		return Session{ID: id, History: []model.Turn{}}
	}
	sess.History = model.AppendTurns(nil, sess.History...)
	if sess.Location != nil {
		loc := *sess.Location
		sess.Location = &loc
	}
	return sess
}
