package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	repo "repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// InsertAction appends one row; seq is assigned by SQLite.
func (r *implRepository) InsertAction(ctx context.Context, opt repo.InsertActionOptions) (model.Action, error) {
	const query = `
		INSERT INTO webhook_events (id, request_id, author, action, from_branch, to_branch, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	a := opt.Action
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.Timestamp = model.CanonicalTime(a.Timestamp)

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.RequestID, a.Author, string(a.Kind), nullString(a.FromBranch), a.ToBranch, a.Timestamp.UnixMicro(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertAction"), err)
		return model.Action{}, repo.ErrFailedToInsert
	}
	return a, nil
}

// ListActionsSince returns rows newer than opt.Cutoff, newest first.
func (r *implRepository) ListActionsSince(ctx context.Context, opt repo.ListActionsSinceOptions) ([]model.Action, error) {
	query, args := r.buildListSinceQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActionsSince"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	actions := make([]model.Action, 0)
	for rows.Next() {
		var (
			a      model.Action
			kind   string
			from   sql.NullString
			micros int64
		)
		if err := rows.Scan(&a.ID, &a.RequestID, &a.Author, &kind, &from, &a.ToBranch, &micros); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActionsSince"), err)
			return nil, repo.ErrFailedToList
		}
		a.Kind = model.ActionKind(kind)
		if !a.Kind.Valid() {
			r.l.Warnf(ctx, "%s: skipping %s with unknown action %q", r.dsn("ListActionsSince"), a.ID, kind)
			continue
		}
		a.FromBranch = from.String
		a.Timestamp = time.UnixMicro(micros).UTC()
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActionsSince"), err)
		return nil, repo.ErrFailedToList
	}
	return actions, nil
}

// nullString stores an absent source branch as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
