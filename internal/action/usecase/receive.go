package usecase

import (
	"bytes"
	"context"
	"errors"

	"repo-activity-feed/internal/action"
	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/metrics"
	"repo-activity-feed/internal/model"
	"repo-activity-feed/internal/webhook"
)

// Receive normalizes one delivery and appends it to the store. Normalization
// errors are returned as-is so the caller can tell client from server faults.
func (uc *implUseCase) Receive(ctx context.Context, input action.ReceiveInput) (action.ReceiveOutput, error) {
	event := eventLabel(input.EventKind)

	if input.EventKind == "" || len(bytes.TrimSpace(input.Payload)) == 0 {
		metrics.ActionsReceived.WithLabelValues(event, metrics.ResultInvalid).Inc()
		return action.ReceiveOutput{}, action.ErrInvalidPayload
	}

	a, err := uc.normalizer.Normalize(input.EventKind, input.Payload)
	if err != nil {
		var verr *webhook.ValidationError
		switch {
		case errors.Is(err, webhook.ErrUnsupportedEventKind):
			metrics.ActionsReceived.WithLabelValues(event, metrics.ResultUnsupported).Inc()
			uc.l.Infof(ctx, "uc.Receive: ignoring %v", err)
		case errors.As(err, &verr):
			metrics.ActionsReceived.WithLabelValues(event, metrics.ResultInvalid).Inc()
			uc.l.Warnf(ctx, "uc.Receive Normalize: %v", err)
		default:
			metrics.ActionsReceived.WithLabelValues(event, metrics.ResultError).Inc()
			uc.l.Errorf(ctx, "uc.Receive Normalize: %v", err)
		}
		return action.ReceiveOutput{}, err
	}

	stored, err := uc.repo.InsertAction(ctx, repo.InsertActionOptions{Action: a})
	if err != nil {
		metrics.ActionsReceived.WithLabelValues(event, metrics.ResultError).Inc()
		uc.l.Errorf(ctx, "uc.Receive InsertAction: %v", err)
		return action.ReceiveOutput{}, err
	}

	metrics.ActionsReceived.WithLabelValues(event, metrics.ResultStored).Inc()
	uc.l.Infof(ctx, "uc.Receive: stored %s %s by %s at %s", stored.Kind, stored.ID, stored.Author, stored.Timestamp)

	return action.ReceiveOutput{Action: stored}, nil
}

// eventLabel bounds the metric label to the supported kinds.
func eventLabel(kind string) string {
	switch model.EventKind(kind) {
	case model.EventPush, model.EventPullRequest:
		return kind
	case "":
		return "none"
	default:
		return "other"
	}
}
