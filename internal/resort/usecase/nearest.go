package usecase

import (
	"context"
	"sort"
	"strings"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/internal/resort/repository"
	"snowboarding-assistant/pkg/geo"
)

const logPrefixLoad = "internal.resort.usecase.load"

// Nearest ranks resorts by geodesic distance from the input point.
// The filter is applied before ranking, ties keep index order.
func (uc *implUseCase) Nearest(ctx context.Context, input resort.NearestInput) (resort.NearestOutput, error) {
	origin := geo.Point{Lat: input.Lat, Lon: input.Lon}
	if !origin.Valid() {
		return resort.NearestOutput{}, resort.ErrInvalidCoordinates
	}
	limit := input.Limit
	if limit < 0 {
		return resort.NearestOutput{}, resort.ErrInvalidLimit
	}
	if limit == 0 {
		limit = resort.DefaultLimit
	}
	if limit > resort.MaxLimit {
		limit = resort.MaxLimit
	}

	candidates := filterResorts(uc.resorts(ctx), input.Filter)

	ranked := make([]resort.Distance, len(candidates))
	for i, r := range candidates {
		ranked[i] = resort.Distance{
			Resort: r,
			Miles:  geo.Miles(origin, geo.Point{Lat: r.Latitude, Lon: r.Longitude}),
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Miles < ranked[j].Miles
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return resort.NearestOutput{Resorts: ranked}, nil
}

// List returns every indexed resort matching filter.
func (uc *implUseCase) List(ctx context.Context, filter string) ([]resort.Resort, error) {
	return filterResorts(uc.resorts(ctx), filter), nil
}

// resorts returns the in-memory index, loading it on first use.
// A store failure degrades to the fallback set instead of failing the caller.
func (uc *implUseCase) resorts(ctx context.Context) []resort.Resort {
	uc.mu.RLock()
	if uc.loaded {
		idx := uc.index
		uc.mu.RUnlock()
		return idx
	}
	uc.mu.RUnlock()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.loaded {
		return uc.index
	}
	uc.index = uc.load(ctx)
	uc.loaded = true
	return uc.index
}

func (uc *implUseCase) load(ctx context.Context) []resort.Resort {
	if uc.repo == nil {
		uc.l.Warnf(ctx, "%s: no resort store configured, using %d fallback resorts", logPrefixLoad, len(resort.FallbackResorts()))
		return resort.FallbackResorts()
	}

	list, err := uc.repo.ListResorts(ctx, repository.ListResortsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "%s: load resorts: %v, using fallback set", logPrefixLoad, err)
		return resort.FallbackResorts()
	}
	if len(list) == 0 {
		uc.l.Warnf(ctx, "%s: resort store is empty, using fallback set", logPrefixLoad)
		return resort.FallbackResorts()
	}

	uc.l.Infof(ctx, "%s: loaded %d resorts", logPrefixLoad, len(list))
	return list
}

func filterResorts(all []resort.Resort, filter string) []resort.Resort {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return all
	}
	out := make([]resort.Resort, 0, len(all))
	for _, r := range all {
		if containsFold(r.Name, filter) || containsFold(r.Region, filter) ||
			containsFold(r.State, filter) || containsFold(r.Country, filter) {
			out = append(out, r)
		}
	}
	return out
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
