package redis

import (
	"fmt"
	"strings"
	"time"

	"repo-activity-feed/internal/model"
)

// actionRecord is the JSON stored in the actions hash.
type actionRecord struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	Author     string    `json:"author"`
	Action     string    `json:"action"`
	FromBranch *string   `json:"from_branch"`
	ToBranch   string    `json:"to_branch"`
	Timestamp  time.Time `json:"timestamp"`
}

func toRecord(a model.Action) actionRecord {
	rec := actionRecord{
		ID:        a.ID,
		RequestID: a.RequestID,
		Author:    a.Author,
		Action:    string(a.Kind),
		ToBranch:  a.ToBranch,
		Timestamp: a.Timestamp.UTC(),
	}
	if a.HasFromBranch() {
		from := a.FromBranch
		rec.FromBranch = &from
	}
	return rec
}

func toAction(rec actionRecord) model.Action {
	a := model.Action{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		Author:    rec.Author,
		Kind:      model.ActionKind(rec.Action),
		ToBranch:  rec.ToBranch,
		Timestamp: rec.Timestamp.UTC(),
	}
	if rec.FromBranch != nil {
		a.FromBranch = *rec.FromBranch
	}
	return a
}

// timelineMember orders equal scores by insertion: zset members with the
// same score sort lexicographically, and seq is zero-padded.
func timelineMember(seq int64, id string) string {
	return fmt.Sprintf("%020d:%s", seq, id)
}

func idFromMember(member string) string {
	if i := strings.IndexByte(member, ':'); i >= 0 {
		return member[i+1:]
	}
	return member
}

// score is the sorted-set score for ts. Unix microseconds stay well inside
// float64's exact integer range; ts must already be at TimestampPrecision
// so the score and the stored record agree.
func score(ts time.Time) float64 {
	return float64(ts.UTC().UnixMicro())
}
