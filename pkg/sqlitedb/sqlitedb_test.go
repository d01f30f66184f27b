package sqlitedb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrate_AppliesOnce(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	runs := 0
	migrations := []Migration{{
		Name: "001_things",
		Up: func(ctx context.Context, tx *sql.Tx) error {
			runs++
			_, err := tx.ExecContext(ctx, "CREATE TABLE things (id INTEGER PRIMARY KEY)")
			return err
		},
	}}

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db, migrations); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i, err)
		}
	}
	if runs != 1 {
		t.Errorf("migration ran %d times, want 1", runs)
	}
	if _, err := db.ExecContext(ctx, "INSERT INTO things (id) VALUES (1)"); err != nil {
		t.Errorf("table not created: %v", err)
	}
}

func TestOpen_Memory(t *testing.T) {
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	db.Close()
}
