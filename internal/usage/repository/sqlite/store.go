package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"snowboarding-assistant/internal/usage"
	"snowboarding-assistant/internal/usage/repository"
	"snowboarding-assistant/pkg/sqlitedb"
)

type implStore struct {
	db *sql.DB
}

var _ repository.Store = (*implStore)(nil)

// New migrates db and returns a durable counter store.
func New(ctx context.Context, db *sql.DB) (*implStore, error) {
	if err := sqlitedb.Migrate(ctx, db, migrations); err != nil {
		return nil, err
	}
	return &implStore{db: db}, nil
}

var migrations = []sqlitedb.Migration{
	{
		Name: "usage_001_counters",
		Up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS usage_counters (
					resource TEXT PRIMARY KEY,
					count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
					window_start_ms INTEGER NOT NULL
				)
			`)
			return err
		},
	},
}

func (s *implStore) Get(ctx context.Context, r usage.Resource) (usage.Counter, error) {
	var (
		count   int
		startMS int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT count, window_start_ms FROM usage_counters WHERE resource = ?", string(r),
	).Scan(&count, &startMS)
	if errors.Is(err, sql.ErrNoRows) {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	if err != nil {
		return usage.Counter{}, fmt.Errorf("get counter %s: %w", r, err)
	}
	return usage.Counter{Count: count, WindowStart: time.UnixMilli(startMS)}, nil
}

func (s *implStore) Put(ctx context.Context, r usage.Resource, c usage.Counter) error {
	if c.Count < 0 {
		c.Count = 0
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO usage_counters (resource, count, window_start_ms) VALUES (?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET count = excluded.count, window_start_ms = excluded.window_start_ms
	`, string(r), c.Count, c.WindowStart.UnixMilli())
	if err != nil {
		return fmt.Errorf("put counter %s: %w", r, err)
	}
	return nil
}

func (s *implStore) Incr(ctx context.Context, r usage.Resource, delta int) (usage.Counter, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE usage_counters SET count = MAX(count + ?, 0) WHERE resource = ?", delta, string(r),
	)
	if err != nil {
		return usage.Counter{}, fmt.Errorf("incr counter %s: %w", r, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return usage.Counter{}, usage.ErrCounterNotFound
	}
	return s.Get(ctx, r)
}
