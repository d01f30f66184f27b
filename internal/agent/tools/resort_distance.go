package tools

import (
	"context"
	"fmt"

	"snowboarding-assistant/internal/agent"
	"snowboarding-assistant/internal/model"
	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/pkg/log"
)

// ResortDistances ranks resorts from the user's shared location.
type ResortDistances struct {
	finder ResortFinder
	limit  int
	l      log.Logger
}

func NewResortDistances(finder ResortFinder, limit int, l log.Logger) *ResortDistances {
	if limit <= 0 {
		limit = resort.DefaultLimit
	}
	return &ResortDistances{finder: finder, limit: limit, l: l}
}

// Lookup returns the closest resorts to loc. A nil loc yields the Unavailable
// sentinel; lookup failures keep the address and set Err.
func (t *ResortDistances) Lookup(ctx context.Context, loc *model.Location, filter string) agent.LocationResult {
	if loc == nil {
		return agent.LocationResult{Unavailable: true}
	}

	res := agent.LocationResult{Address: loc.DisplayAddress()}
	out, err := t.finder.Nearest(ctx, resort.NearestInput{
		Lat:    loc.Lat,
		Lon:    loc.Lon,
		Filter: filter,
		Limit:  t.limit,
	})
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", logPrefixResorts, err)
		return res
	}
	res.Resorts = out.Resorts
	return res
}
