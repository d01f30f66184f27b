package sqlite

import (
	"context"
	"database/sql"

	"snowboarding-assistant/internal/resort/repository"
	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/sqlitedb"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New runs the resort migrations on db and returns the repository.
func New(ctx context.Context, db *sql.DB, l log.Logger) (*implRepository, error) {
	if err := sqlitedb.Migrate(ctx, db, migrations); err != nil {
		return nil, err
	}
	return &implRepository{db: db, l: l}, nil
}

var migrations = []sqlitedb.Migration{
	{
		Name: "resorts_001_initial_schema",
		Up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS resorts (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					latitude REAL NOT NULL,
					longitude REAL NOT NULL,
					region TEXT,
					state TEXT,
					country TEXT
				)
			`)
			return err
		},
	},
}
