package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// InsertAction stores the record and indexes it in one MULTI/EXEC.
func (r *implRepository) InsertAction(ctx context.Context, opt repo.InsertActionOptions) (model.Action, error) {
	a := opt.Action
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Timestamp = model.CanonicalTime(a.Timestamp)

	body, err := json.Marshal(toRecord(a))
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("InsertAction"), err)
		return model.Action{}, repo.ErrFailedToInsert
	}

	seq, err := r.client.Incr(ctx, r.key(sequenceKey)).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s incr: %v", r.dsn("InsertAction"), err)
		return model.Action{}, repo.ErrFailedToInsert
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.key(actionsKey), a.ID, body)
		pipe.ZAdd(ctx, r.key(timelineKey), redis.Z{
			Score:  score(a.Timestamp),
			Member: timelineMember(seq, a.ID),
		})
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertAction"), err)
		return model.Action{}, repo.ErrFailedToInsert
	}
	return a, nil
}

// ListActionsSince reads the timeline newest first, then loads the records.
func (r *implRepository) ListActionsSince(ctx context.Context, opt repo.ListActionsSinceOptions) ([]model.Action, error) {
	lower := "-inf"
	if opt.Cutoff != nil {
		lower = "(" + strconv.FormatInt(model.CanonicalTime(*opt.Cutoff).UnixMicro(), 10)
	}

	members, err := r.client.ZRevRangeByScore(ctx, r.key(timelineKey), &redis.ZRangeBy{
		Min: lower,
		Max: "+inf",
	}).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s zrange: %v", r.dsn("ListActionsSince"), err)
		return nil, repo.ErrFailedToList
	}

	actions := make([]model.Action, 0, len(members))
	if len(members) == 0 {
		return actions, nil
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = idFromMember(m)
	}

	values, err := r.client.HMGet(ctx, r.key(actionsKey), ids...).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s hmget: %v", r.dsn("ListActionsSince"), err)
		return nil, repo.ErrFailedToList
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			r.l.Warnf(ctx, "%s: timeline entry %s has no record", r.dsn("ListActionsSince"), ids[i])
			continue
		}
		var rec actionRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			r.l.Errorf(ctx, "%s unmarshal %s: %v", r.dsn("ListActionsSince"), ids[i], err)
			return nil, repo.ErrFailedToList
		}
		a := toAction(rec)
		if !a.Kind.Valid() {
			r.l.Warnf(ctx, "%s: skipping %s with unknown action %q", r.dsn("ListActionsSince"), ids[i], rec.Action)
			continue
		}
		actions = append(actions, a)
	}
	return actions, nil
}
