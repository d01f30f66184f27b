package usecase

import (
	"context"
	"math"
	"strings"

	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/model"
)

// GrantLocation stores the user's position, reverse geocoding it when no address is given.
// A geocoder failure keeps the bare coordinates.
func (uc *implUseCase) GrantLocation(ctx context.Context, input chat.GrantLocationInput) (chat.LocationOutput, error) {
	id := strings.TrimSpace(input.SessionID)
	if id == "" {
		return chat.LocationOutput{}, chat.ErrSessionRequired
	}
	if !validCoordinates(input.Lat, input.Lon) {
		return chat.LocationOutput{}, chat.ErrInvalidCoordinates
	}

	loc := model.Location{Lat: input.Lat, Lon: input.Lon, Address: strings.TrimSpace(input.Address)}
	if loc.Address == "" && uc.geocoder != nil {
		addr, err := uc.geocoder.Reverse(ctx, loc.Lat, loc.Lon)
		if err != nil {
			uc.l.Warnf(ctx, "internal.chat.usecase.GrantLocation: reverse geocode failed: %v", err)
		} else {
			loc.Address = addr.Short()
		}
	}

	sess, err := uc.sessions.GrantLocation(id, loc)
	if err != nil {
		return chat.LocationOutput{}, err
	}
	uc.l.Infof(ctx, "internal.chat.usecase.GrantLocation: session %s shared location", id)
	return chat.LocationOutput{SessionID: id, Location: sess.Location}, nil
}

func (uc *implUseCase) RevokeLocation(ctx context.Context, sessionID string) (chat.LocationOutput, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return chat.LocationOutput{}, chat.ErrSessionRequired
	}
	if _, err := uc.sessions.RevokeLocation(id); err != nil {
		return chat.LocationOutput{}, err
	}
	return chat.LocationOutput{SessionID: id}, nil
}

func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return chat.HistoryOutput{}, chat.ErrSessionRequired
	}
	sess, err := uc.sessions.Get(id)
	if err != nil {
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{SessionID: id, History: sess.History, Location: sess.Location}, nil
}

func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return chat.ErrSessionRequired
	}
	uc.sessions.Reset(id)
	return nil
}

func validCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
