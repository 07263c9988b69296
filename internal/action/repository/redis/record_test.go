package redis

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"repo-activity-feed/internal/model"
)

func TestTimelineMemberOrdering(t *testing.T) {
	members := []string{
		timelineMember(9, "a"),
		timelineMember(10, "b"),
		timelineMember(100, "c"),
	}
	sorted := append([]string(nil), members...)
	sort.Strings(sorted)
	assert.Equal(t, members, sorted, "zero padding must keep lexical order equal to insertion order")

	assert.Equal(t, "b", idFromMember(members[1]))
	assert.Equal(t, "3f8e:with-colon", idFromMember(timelineMember(1, "3f8e:with-colon")))
}

func TestRecordRoundTrip(t *testing.T) {
	push := model.Action{
		ID:        "1",
		Author:    "alice",
		Kind:      model.ActionPush,
		ToBranch:  "main",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("X", 3600)),
	}
	got := toAction(toRecord(push))
	assert.False(t, got.HasFromBranch())
	assert.Equal(t, time.UTC, got.Timestamp.Location())
	assert.True(t, push.Timestamp.Equal(got.Timestamp))

	pr := push
	pr.Kind = model.ActionPullRequest
	pr.FromBranch = "feature"
	assert.Equal(t, "feature", toAction(toRecord(pr)).FromBranch)
}

func TestScoreIsExactMicros(t *testing.T) {
	ts := time.Date(2030, 6, 1, 0, 0, 0, 123456000, time.UTC)
	assert.Equal(t, ts.UnixMicro(), int64(score(ts)))
}
