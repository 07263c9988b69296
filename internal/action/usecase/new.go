package usecase

import (
	"repo-activity-feed/internal/action"
	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/pkg/log"
)

// implUseCase is the private implementation of action.UseCase.
type implUseCase struct {
	l          log.Logger
	repo       repository.Repository
	normalizer action.Normalizer
}

// New creates a new action UseCase implementation.
func New(l log.Logger, repo repository.Repository, normalizer action.Normalizer) action.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		normalizer: normalizer,
	}
}
