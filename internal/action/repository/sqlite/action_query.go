package sqlite

import (
	"strings"

	repo "repo-activity-feed/internal/action/repository"
)

// buildListSinceQuery builds the SELECT for ListActionsSince.
func (r *implRepository) buildListSinceQuery(opt repo.ListActionsSinceOptions) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString(`SELECT id, request_id, author, action, from_branch, to_branch, timestamp FROM webhook_events`)
	if opt.Cutoff != nil {
		b.WriteString(` WHERE timestamp > ?`)
		args = append(args, opt.Cutoff.UTC().UnixMicro())
	}
	b.WriteString(` ORDER BY timestamp DESC, seq DESC`)

	return b.String(), args
}
