package postgre

import (
	"time"

	"github.com/uptrace/bun"

	"repo-activity-feed/internal/model"
)

// actionDao maps directly to the 'webhook_events' table.
type actionDao struct {
	bun.BaseModel `bun:"table:webhook_events"`
	Seq           int64     `bun:"seq,autoincrement"` // Insertion order, tie-breaks equal timestamps
	ID            string    `bun:"id,pk"`
	RequestID     string    `bun:"request_id,notnull"`
	Author        string    `bun:"author,notnull"`
	Action        string    `bun:"action,notnull"`
	FromBranch    *string   `bun:"from_branch"`
	ToBranch      string    `bun:"to_branch,notnull"`
	Timestamp     time.Time `bun:"timestamp,notnull,type:timestamptz"`
}

// watermarkDao maps directly to the 'last_fetch_timestamp' table. It holds one row.
type watermarkDao struct {
	bun.BaseModel `bun:"table:last_fetch_timestamp"`
	ID            string    `bun:"id,pk"`
	Timestamp     time.Time `bun:"timestamp,notnull,type:timestamptz"`
}

func toActionDao(a model.Action) *actionDao {
	dao := &actionDao{
		ID:        a.ID,
		RequestID: a.RequestID,
		Author:    a.Author,
		Action:    string(a.Kind),
		ToBranch:  a.ToBranch,
		Timestamp: model.CanonicalTime(a.Timestamp),
	}
	if a.HasFromBranch() {
		from := a.FromBranch
		dao.FromBranch = &from
	}
	return dao
}

func toAction(dao *actionDao) model.Action {
	a := model.Action{
		ID:        dao.ID,
		RequestID: dao.RequestID,
		Author:    dao.Author,
		Kind:      model.ActionKind(dao.Action),
		ToBranch:  dao.ToBranch,
		Timestamp: dao.Timestamp.UTC(),
	}
	if dao.FromBranch != nil {
		a.FromBranch = *dao.FromBranch
	}
	return a
}
