package usecase

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"snowboarding-assistant/internal/agent/orchestrator"
	"snowboarding-assistant/internal/chat"
	"snowboarding-assistant/internal/session"
	"snowboarding-assistant/pkg/log"
	"snowboarding-assistant/pkg/nominatim"
)

// Geocoder turns coordinates into a readable place name.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (nominatim.Address, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	orch      orchestrator.Orchestrator
	sessions  *session.Store
	geocoder  Geocoder
	sanitizer *bluemonday.Policy
	l         log.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat use case. geocoder may be nil.
func New(orch orchestrator.Orchestrator, sessions *session.Store, geocoder Geocoder, l log.Logger) *implUseCase {
	return &implUseCase{
		orch:      orch,
		sessions:  sessions,
		geocoder:  geocoder,
		sanitizer: bluemonday.StrictPolicy(),
		l:         l,
	}
}
