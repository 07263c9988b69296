// Package repotest holds the behavioural checks every action repository
// backend must pass.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/model"
)

// Factory returns an empty Repository for one subtest.
type Factory func(t *testing.T) repository.Repository

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// At returns base shifted by d. Exported for backend-specific tests.
func At(d time.Duration) time.Time {
	return base.Add(d)
}

// Push builds a PUSH Action at ts.
func Push(author string, ts time.Time) model.Action {
	return model.Action{
		RequestID: "sha-" + author,
		Author:    author,
		Kind:      model.ActionPush,
		ToBranch:  "main",
		Timestamp: ts,
	}
}

// Run executes the shared repository checks against newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("InsertAssignsID", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		got, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("alice", At(0))})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "alice", got.Author)

		other, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("alice", At(0))})
		require.NoError(t, err)
		assert.NotEqual(t, got.ID, other.ID, "request id duplicates are stored as separate records")
	})

	t.Run("InsertKeepsExplicitID", func(t *testing.T) {
		r := newRepo(t)
		a := Push("alice", At(0))
		a.ID = "fixed-id"

		got, err := r.InsertAction(context.Background(), repository.InsertActionOptions{Action: a})
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", got.ID)
	})

	t.Run("RoundTripsFields", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		ict := time.FixedZone("ICT", 7*3600)
		merge := model.Action{
			RequestID:  "1001",
			Author:     "bob",
			Kind:       model.ActionMerge,
			FromBranch: "feature",
			ToBranch:   "main",
			Timestamp:  time.Date(2024, 2, 1, 17, 0, 0, 123456000, ict),
		}
		_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: merge})
		require.NoError(t, err)
		_, err = r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("alice", At(0))})
		require.NoError(t, err)

		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
		require.NoError(t, err)
		require.Len(t, list, 2)

		got := list[0]
		assert.Equal(t, "1001", got.RequestID)
		assert.Equal(t, "bob", got.Author)
		assert.Equal(t, model.ActionMerge, got.Kind)
		assert.Equal(t, "feature", got.FromBranch)
		assert.Equal(t, "main", got.ToBranch)
		assert.True(t, merge.Timestamp.Equal(got.Timestamp), "expected %v, got %v", merge.Timestamp, got.Timestamp)
		assert.Equal(t, time.UTC, got.Timestamp.Location())

		assert.False(t, list[1].HasFromBranch())
	})

	t.Run("ListEmpty", func(t *testing.T) {
		r := newRepo(t)
		list, err := r.ListActionsSince(context.Background(), repository.ListActionsSinceOptions{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		for _, a := range []model.Action{
			Push("b", At(2*time.Minute)),
			Push("a", At(time.Minute)),
			Push("c", At(3*time.Minute)),
		} {
			_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: a})
			require.NoError(t, err)
		}

		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, authors(list))
	})

	t.Run("ListStrictlyAfterCutoff", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		for i, name := range []string{"t0", "t1", "t2"} {
			_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push(name, At(time.Duration(i)*time.Second))})
			require.NoError(t, err)
		}

		cutoff := At(time.Second)
		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{Cutoff: &cutoff})
		require.NoError(t, err)
		assert.Equal(t, []string{"t2"}, authors(list))

		sub := At(time.Second - time.Microsecond)
		list, err = r.ListActionsSince(ctx, repository.ListActionsSinceOptions{Cutoff: &sub})
		require.NoError(t, err)
		assert.Equal(t, []string{"t2", "t1"}, authors(list))
	})

	t.Run("EqualTimestampsLatestInsertFirst", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"first", "second", "third"} {
			_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push(name, At(0))})
			require.NoError(t, err)
		}

		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, authors(list))
	})

	t.Run("SubMicrosecondTimestamps", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		newer, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("newer", At(1700*time.Nanosecond))})
		require.NoError(t, err)
		older, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("older", At(500*time.Nanosecond))})
		require.NoError(t, err)

		assert.True(t, At(time.Microsecond).Equal(newer.Timestamp), "got %v", newer.Timestamp)
		assert.True(t, At(0).Equal(older.Timestamp), "got %v", older.Timestamp)

		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"newer", "older"}, authors(list))
		assert.True(t, newer.Timestamp.Equal(list[0].Timestamp), "stored %v, listed %v", newer.Timestamp, list[0].Timestamp)
		assert.True(t, older.Timestamp.Equal(list[1].Timestamp), "stored %v, listed %v", older.Timestamp, list[1].Timestamp)

		require.NoError(t, r.AdvanceWatermark(ctx, list[0].Timestamp))
		_, err = r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("later", At(2300*time.Nanosecond))})
		require.NoError(t, err)

		watermark, ok, err := r.GetWatermark(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		list, err = r.ListActionsSince(ctx, repository.ListActionsSinceOptions{Cutoff: &watermark})
		require.NoError(t, err)
		assert.Equal(t, []string{"later"}, authors(list))
	})

	t.Run("CutoffComparedAtStoredPrecision", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("alice", At(time.Microsecond))})
		require.NoError(t, err)

		cutoff := At(1400 * time.Nanosecond)
		list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{Cutoff: &cutoff})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("WatermarkAbsent", func(t *testing.T) {
		r := newRepo(t)
		_, ok, err := r.GetWatermark(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("WatermarkAdvance", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.AdvanceWatermark(ctx, At(time.Minute)))
		ts, ok, err := r.GetWatermark(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, At(time.Minute).Equal(ts))
		assert.Equal(t, time.UTC, ts.Location())

		// Unconditional overwrite, even backwards.
		require.NoError(t, r.AdvanceWatermark(ctx, At(0)))
		ts, _, err = r.GetWatermark(ctx)
		require.NoError(t, err)
		assert.True(t, At(0).Equal(ts))
	})

	t.Run("WatermarkKeepsMicroseconds", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		want := At(1500 * time.Microsecond)
		require.NoError(t, r.AdvanceWatermark(ctx, want))
		ts, _, err := r.GetWatermark(ctx)
		require.NoError(t, err)
		assert.True(t, want.Equal(ts), "expected %v, got %v", want, ts)
	})

	t.Run("InsertDoesNotTouchWatermark", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: Push("alice", At(0))})
		require.NoError(t, err)
		_, ok, err := r.GetWatermark(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Ping", func(t *testing.T) {
		r := newRepo(t)
		assert.NoError(t, r.Ping(context.Background()))
	})
}

func authors(list []model.Action) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.Author
	}
	return out
}
