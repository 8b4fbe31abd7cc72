package badger

import (
	"context"
	"testing"
	"time"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(id string, scope core.JobScope, details core.JobDetails) *core.VectorizationJob {
	return &core.VectorizationJob{
		ID:        id,
		Scope:     scope,
		Status:    core.JobStatusPending,
		StartedAt: time.Now().UTC(),
		CreatedBy: "admin@example.com",
		Details:   details,
	}
}

func TestJobRepository(t *testing.T) {
	_, jobRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	t.Run("create assigns version one", func(t *testing.T) {
		job := newTestJob("job-1", core.JobScopeSingleUser, core.JobDetails{UserID: "u1"})
		require.NoError(t, jobRepo.CreateJob(ctx, job))
		assert.Equal(t, uint64(1), job.Version)

		got, err := jobRepo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, core.JobStatusPending, got.Status)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		dup := newTestJob("job-1", core.JobScopeSingleUser, core.JobDetails{UserID: "u9"})
		assert.ErrorIs(t, jobRepo.CreateJob(ctx, dup), storage.ErrDuplicateKey)
	})

	t.Run("same scope is locked while active", func(t *testing.T) {
		blocked := newTestJob("job-2", core.JobScopeSingleUser, core.JobDetails{UserID: "u1"})
		assert.ErrorIs(t, jobRepo.CreateJob(ctx, blocked), storage.ErrScopeLocked)

		// A different user's scope is free
		other := newTestJob("job-3", core.JobScopeSingleUser, core.JobDetails{UserID: "u2"})
		assert.NoError(t, jobRepo.CreateJob(ctx, other))
	})

	t.Run("stale version rejected", func(t *testing.T) {
		job, err := jobRepo.GetJob(ctx, "job-1")
		require.NoError(t, err)

		// First writer wins
		job.Status = core.JobStatusRunning
		require.NoError(t, jobRepo.UpdateJob(ctx, job))

		// Second writer with the old version loses
		stale, err := jobRepo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		stale.Version--
		stale.Status = core.JobStatusPaused
		assert.ErrorIs(t, jobRepo.UpdateJob(ctx, stale), storage.ErrVersionConflict)

		// The winner's write stuck
		got, err := jobRepo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		assert.Equal(t, core.JobStatusRunning, got.Status)
	})

	t.Run("terminal transition releases scope lock", func(t *testing.T) {
		job, err := jobRepo.GetJob(ctx, "job-1")
		require.NoError(t, err)
		job.Status = core.JobStatusCompleted
		job.CompletedAt = time.Now().UTC()
		require.NoError(t, jobRepo.UpdateJob(ctx, job))

		// Scope is free again
		next := newTestJob("job-4", core.JobScopeSingleUser, core.JobDetails{UserID: "u1"})
		assert.NoError(t, jobRepo.CreateJob(ctx, next))
	})

	t.Run("update missing job", func(t *testing.T) {
		ghost := newTestJob("job-ghost", core.JobScopeAllUsers, core.JobDetails{})
		ghost.Version = 1
		assert.ErrorIs(t, jobRepo.UpdateJob(ctx, ghost), storage.ErrNotFound)
	})

	t.Run("list newest first", func(t *testing.T) {
		jobs, err := jobRepo.ListJobs(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for i := 1; i < len(jobs); i++ {
			assert.False(t, jobs[i-1].StartedAt.Before(jobs[i].StartedAt))
		}
	})
}

func TestCommitConflictIsVersionConflict(t *testing.T) {
	// A worker's progress write and an admin control write can overlap
	// on the transaction level, below the Version check: both read the
	// job, the admin commits first, and the worker's commit trips
	// badger's snapshot-isolation conflict. That must surface as
	// storage.ErrVersionConflict so the worker reloads and reapplies
	// instead of failing the job.
	_, jobRepo, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	job := newTestJob("job-race", core.JobScopeSingleUser, core.JobDetails{UserID: "u1"})
	require.NoError(t, jobRepo.CreateJob(ctx, job))
	job.Status = core.JobStatusRunning
	require.NoError(t, jobRepo.UpdateJob(ctx, job))

	key := makeJobKey(job.ID)
	err = backend.WithTx(func(tx *badgerdb.Txn) error {
		// Worker-style read-modify-write.
		item, err := tx.Get(key)
		require.NoError(t, err)
		var mine *core.VectorizationJob
		require.NoError(t, item.Value(func(val []byte) error {
			var unmarshalErr error
			mine, unmarshalErr = storage.UnmarshalJob(val)
			return unmarshalErr
		}))

		// An admin pause commits between our read and our commit.
		paused, err := jobRepo.GetJob(ctx, job.ID)
		require.NoError(t, err)
		paused.Status = core.JobStatusPaused
		require.NoError(t, jobRepo.UpdateJob(ctx, paused))

		mine.ProcessedItems++
		if err := tx.Set(key, storage.MarshalJob(mine)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	assert.ErrorIs(t, err, storage.ErrVersionConflict)

	// The admin's write stuck.
	got, err := jobRepo.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusPaused, got.Status)
	assert.Zero(t, got.ProcessedItems)
}
