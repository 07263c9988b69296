package usecase

import (
	"context"

	"repo-activity-feed/internal/action"
	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/metrics"
)

// Poll hands out every Action newer than the watermark and moves the
// watermark to the newest one. An empty result leaves the watermark alone.
//
// The read-list-advance sequence is not atomic: concurrent pollers may
// receive the same Actions.
func (uc *implUseCase) Poll(ctx context.Context) (action.PollOutput, error) {
	watermark, ok, err := uc.repo.GetWatermark(ctx)
	if err != nil {
		metrics.Polls.WithLabelValues(metrics.ResultError).Inc()
		uc.l.Errorf(ctx, "uc.Poll GetWatermark: %v", err)
		return action.PollOutput{}, err
	}

	opt := repo.ListActionsSinceOptions{}
	if ok {
		opt.Cutoff = &watermark
	}

	actions, err := uc.repo.ListActionsSince(ctx, opt)
	if err != nil {
		metrics.Polls.WithLabelValues(metrics.ResultError).Inc()
		uc.l.Errorf(ctx, "uc.Poll ListActionsSince: %v", err)
		return action.PollOutput{}, err
	}

	if len(actions) > 0 {
		newest := actions[0].Timestamp
		if err := uc.repo.AdvanceWatermark(ctx, newest); err != nil {
			metrics.Polls.WithLabelValues(metrics.ResultError).Inc()
			uc.l.Errorf(ctx, "uc.Poll AdvanceWatermark: %v", err)
			return action.PollOutput{}, err
		}
		metrics.WatermarkTimestamp.Set(float64(newest.UnixMicro()) / 1e6)
		uc.l.Debugf(ctx, "uc.Poll: %d new actions, watermark -> %s", len(actions), newest)
	}

	notifications := make([]action.Notification, len(actions))
	for i, a := range actions {
		notifications[i] = action.Notification{
			Kind:       a.Kind,
			Author:     a.Author,
			FromBranch: a.FromBranch,
			ToBranch:   a.ToBranch,
			Timestamp:  a.Timestamp,
		}
	}

	result := metrics.ResultOK
	if len(notifications) == 0 {
		result = metrics.ResultEmpty
	}
	metrics.Polls.WithLabelValues(result).Inc()
	metrics.PollActionsReturned.Observe(float64(len(notifications)))

	return action.PollOutput{Notifications: notifications}, nil
}
