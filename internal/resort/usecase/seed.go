package usecase

import (
	"context"
	"fmt"

	"snowboarding-assistant/internal/resort"
)

// Seed populates an empty store with the built-in resort table and drops the
// cached index so the next query sees the new rows.
func (uc *implUseCase) Seed(ctx context.Context) (resort.SeedOutput, error) {
	if uc.repo == nil {
		return resort.SeedOutput{}, fmt.Errorf("seed resorts: no store configured")
	}

	count, err := uc.repo.CountResorts(ctx)
	if err != nil {
		return resort.SeedOutput{}, fmt.Errorf("seed resorts: %w", err)
	}
	if count > 0 {
		uc.l.Infof(ctx, "internal.resort.usecase.Seed: store already holds %d resorts, skipping", count)
		return resort.SeedOutput{Total: count}, nil
	}

	inserted, err := uc.repo.InsertResorts(ctx, resort.SeedResorts())
	if err != nil {
		return resort.SeedOutput{}, fmt.Errorf("seed resorts: %w", err)
	}

	uc.mu.Lock()
	uc.loaded = false
	uc.index = nil
	uc.mu.Unlock()

	uc.l.Infof(ctx, "internal.resort.usecase.Seed: inserted %d resorts", inserted)
	return resort.SeedOutput{Inserted: inserted, Total: count + inserted}, nil
}
