package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/internal/resort/repository"
)

func (r *implRepository) ListResorts(ctx context.Context, opt repository.ListResortsOptions) ([]resort.Resort, error) {
	query := "SELECT id, name, latitude, longitude, region, state, country FROM resorts"
	var args []any
	if opt.Query != "" {
		query += " WHERE name LIKE ? OR region LIKE ? OR state LIKE ? OR country LIKE ?"
		term := "%" + opt.Query + "%"
		args = []any{term, term, term, term}
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []resort.Resort
	for rows.Next() {
		var (
			res                    resort.Resort
			region, state, country sql.NullString
		)
		if err := rows.Scan(&res.ID, &res.Name, &res.Latitude, &res.Longitude, &region, &state, &country); err != nil {
			return nil, fmt.Errorf("scan resort: %w", err)
		}
		res.Region, res.State, res.Country = region.String, state.String, country.String
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resorts: %w", err)
	}
	return out, nil
}

func (r *implRepository) CountResorts(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM resorts").Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
	}
	return n, nil
}

// InsertResorts inserts resorts whose id is not present yet and returns how many were added.
func (r *implRepository) InsertResorts(ctx context.Context, resorts []resort.Resort) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO resorts (id, name, latitude, longitude, region, state, country)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, res := range resorts {
		result, err := stmt.ExecContext(ctx, res.ID, res.Name, res.Latitude, res.Longitude, res.Region, res.State, res.Country)
		if err != nil {
			return 0, fmt.Errorf("insert resort %s: %w", res.ID, err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return inserted, nil
}
