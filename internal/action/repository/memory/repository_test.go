package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-activity-feed/internal/action/repository"
	"repo-activity-feed/internal/action/repository/memory"
	"repo-activity-feed/internal/action/repository/repotest"
	"repo-activity-feed/pkg/log"
)

func TestRepository(t *testing.T) {
	repotest.Run(t, func(t *testing.T) repository.Repository {
		return memory.New(log.NewNop())
	})
}

func TestConcurrentInsert(t *testing.T) {
	r := memory.New(log.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.InsertAction(ctx, repository.InsertActionOptions{Action: repotest.Push("alice", repotest.At(0))})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := r.ListActionsSince(ctx, repository.ListActionsSinceOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
