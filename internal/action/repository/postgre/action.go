package postgre

import (
	"context"

	"github.com/google/uuid"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// InsertAction appends one row; seq comes from the BIGSERIAL default.
func (r *implRepository) InsertAction(ctx context.Context, opt repo.InsertActionOptions) (model.Action, error) {
	a := opt.Action
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	dao := toActionDao(a)

	if _, err := r.db.NewInsert().Model(dao).Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertAction"), err)
		return model.Action{}, repo.ErrFailedToInsert
	}
	return toAction(dao), nil
}

// ListActionsSince returns rows newer than opt.Cutoff, newest first.
func (r *implRepository) ListActionsSince(ctx context.Context, opt repo.ListActionsSinceOptions) ([]model.Action, error) {
	var daos []actionDao
	q := r.db.NewSelect().Model(&daos)
	if opt.Cutoff != nil {
		q = q.Where(`"timestamp" > ?`, model.CanonicalTime(*opt.Cutoff))
	}
	q = q.OrderExpr(`"timestamp" DESC, seq DESC`)

	if err := q.Scan(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActionsSince"), err)
		return nil, repo.ErrFailedToList
	}

	actions := make([]model.Action, 0, len(daos))
	for i := range daos {
		a := toAction(&daos[i])
		if !a.Kind.Valid() {
			r.l.Warnf(ctx, "%s: skipping %s with unknown action %q", r.dsn("ListActionsSince"), a.ID, daos[i].Action)
			continue
		}
		actions = append(actions, a)
	}
	return actions, nil
}
