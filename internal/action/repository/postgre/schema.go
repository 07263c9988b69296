package postgre

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CreateSchema creates the tables and the timestamp index if they do not exist.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range []any{(*actionDao)(nil), (*watermarkDao)(nil)} {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	_, err := db.NewCreateIndex().
		Model((*actionDao)(nil)).
		Index("idx_webhook_events_timestamp").
		ColumnExpr(`"timestamp" DESC, seq DESC`).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}
