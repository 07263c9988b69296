package action

import (
	"context"

	"repo-activity-feed/internal/model"
)

//go:generate mockery --name UseCase --with-expecter
type UseCase interface {
	// Receive normalizes one webhook delivery and stores the resulting Action.
	Receive(ctx context.Context, input ReceiveInput) (ReceiveOutput, error)
	// Poll returns every Action newer than the watermark and advances it.
	Poll(ctx context.Context) (PollOutput, error)
	// Ping checks that the backing datastore is reachable.
	Ping(ctx context.Context) error
}

// Normalizer maps a raw webhook delivery to an Action.
// Implemented by *webhook.Normalizer.
type Normalizer interface {
	Normalize(eventKind string, payload []byte) (model.Action, error)
}
