package usecase

import (
	"sync"

	"snowboarding-assistant/internal/resort"
	"snowboarding-assistant/internal/resort/repository"
	"snowboarding-assistant/pkg/log"
)

// implUseCase is the private implementation of resort.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	mu     sync.RWMutex
	index  []resort.Resort
	loaded bool
}

var _ resort.UseCase = (*implUseCase)(nil)

// New creates the resort use case. repo may be nil, in which case the built-in
// fallback set is served.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
