package usecase

import "context"

// Ping checks the datastore.
func (uc *implUseCase) Ping(ctx context.Context) error {
	return uc.repo.Ping(ctx)
}
