package jobs

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brandloom/brandrag/ai/mock"
	"github.com/brandloom/brandrag/content"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	"github.com/brandloom/brandrag/storage/badger"
	"github.com/brandloom/brandrag/vector"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testHarness struct {
	orchestrator *Orchestrator
	contentRepo  storage.ContentRepository
	store        *vector.Store
	embedder     *mock.MockEmbedder
}

func newTestHarness(t *testing.T, cfg ...*Config) *testHarness {
	t.Helper()

	vectorRepo, jobRepo, contentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	embedder := mock.NewMockEmbedder()
	store, err := vector.NewStore(embedder, vectorRepo)
	require.NoError(t, err)

	config := &Config{
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		PoolSize:       2,
	}
	if len(cfg) > 0 {
		config = cfg[0]
	}

	orchestrator, err := NewOrchestrator(jobRepo, contentRepo, store, WithConfig(config))
	require.NoError(t, err)
	t.Cleanup(orchestrator.Release)

	return &testHarness{
		orchestrator: orchestrator,
		contentRepo:  contentRepo,
		store:        store,
		embedder:     embedder,
	}
}

func (h *testHarness) seed(t *testing.T, userID string, sources ...content.Source) {
	t.Helper()
	for _, src := range sources {
		record := content.ToRecord(userID, src)
		record.CreatedAt = time.Now().UTC()
		require.NoError(t, h.contentRepo.PutContent(context.Background(), record))
	}
}

func (h *testHarness) waitTerminal(t *testing.T, jobID string) *core.VectorizationJob {
	t.Helper()
	var job *core.VectorizationJob
	require.Eventually(t, func() bool {
		var err error
		job, err = h.orchestrator.GetJob(context.Background(), jobID)
		return err == nil && job.Terminal()
	}, 5*time.Second, 5*time.Millisecond, "job never reached a terminal status")
	return job
}

func (h *testHarness) waitStatus(t *testing.T, jobID string, status core.JobStatus) *core.VectorizationJob {
	t.Helper()
	var job *core.VectorizationJob
	require.Eventually(t, func() bool {
		var err error
		job, err = h.orchestrator.GetJob(context.Background(), jobID)
		return err == nil && job.Status == status
	}, 5*time.Second, 5*time.Millisecond, "job never reached status %s", status)
	return job
}

func TestStartCompletesAndPartitionsCounters(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.seed(t, "u1",
		&content.BrandProfile{ID: "b1", Name: "Fern & Forage"},
		&content.SocialPost{ID: "p1", Caption: "moss doesn't rush"},
		&content.SocialPost{ID: "p2"}, // all fields empty: skipped
		&content.BlogPost{ID: "g1", Title: "wild-harvested"},
	)

	job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(4), job.TotalItems)

	done := h.waitTerminal(t, job.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(3), done.ProcessedItems)
	assert.Equal(t, int64(1), done.SkippedItems)
	assert.Zero(t, done.FailedItems)
	assert.Equal(t, float64(100), done.Progress)
	assert.False(t, done.CompletedAt.IsZero())

	// The three non-empty items are actually indexed
	existing, err := h.store.ExistingContentIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, existing, 3)
}

func TestRerunSkipsUnchangedContent(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.seed(t, "u1",
		&content.SocialPost{ID: "p1", Caption: "first"},
		&content.SocialPost{ID: "p2", Caption: "second"},
	)

	first, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitTerminal(t, first.ID)

	callsAfterFirst := h.embedder.CallCount()

	// Change one item; the other must not be re-embedded.
	h.seed(t, "u1", &content.SocialPost{ID: "p2", Caption: "second, revised"})

	second, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	done := h.waitTerminal(t, second.ID)

	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(1), done.ProcessedItems)
	assert.Equal(t, int64(1), done.SkippedItems)
	assert.Equal(t, callsAfterFirst+1, h.embedder.CallCount(), "only the changed item embeds again")
}

func TestPerItemFailuresAreNonFatal(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if strings.Contains(text, "poison") {
			return nil, errors.New("provider rejected input")
		}
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1",
		&content.SocialPost{ID: "p1", Caption: "fine"},
		&content.SocialPost{ID: "p2", Caption: "poison"},
		&content.SocialPost{ID: "p3", Caption: "also fine"},
	)

	job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	done := h.waitTerminal(t, job.ID)

	// The job completes despite the failing item
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(2), done.ProcessedItems)
	assert.Equal(t, int64(1), done.FailedItems)
	assert.Equal(t, float64(100), done.Progress)
}

func TestAllUsersScope(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})
	h.seed(t, "u2", &content.SocialPost{ID: "p1", Caption: "b"})
	h.seed(t, "u3", &content.BlogPost{ID: "g1", Title: "c"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeAllUsers, core.JobDetails{}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(3), job.TotalItems)

	done := h.waitTerminal(t, job.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(3), done.ProcessedItems)
}

func TestContentTypeScope(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.seed(t, "u1",
		&content.SocialPost{ID: "p1", Caption: "a"},
		&content.BlogPost{ID: "g1", Title: "t"},
	)
	h.seed(t, "u2", &content.BlogPost{ID: "g2", Title: "u"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeContentType,
		core.JobDetails{ContentType: core.ContentTypeBlogPost}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(2), job.TotalItems)

	done := h.waitTerminal(t, job.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(2), done.ProcessedItems)

	// Social content was never touched
	existing, err := h.store.ExistingContentIDs(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotContains(t, existing, "social_p1")
}

func TestScopeMutualExclusion(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	gate := make(chan struct{})
	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		<-gate
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})
	// u2's only item is empty, so its job never touches the embedder
	h.seed(t, "u2", &content.SocialPost{ID: "p9"})

	first, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)

	// Same scope while the first job is active
	_, err = h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	assert.ErrorIs(t, err, storage.ErrScopeLocked)

	// A different scope key is unaffected
	other, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u2"}, "admin")
	require.NoError(t, err)
	h.waitTerminal(t, other.ID)

	close(gate)
	h.waitTerminal(t, first.ID)

	// The lock released with the terminal transition
	again, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitTerminal(t, again.ID)
}

func TestPauseAndResume(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	gate := make(chan struct{})
	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		<-gate
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitStatus(t, job.ID, core.JobStatusRunning)

	paused, err := h.orchestrator.Control(ctx, job.ID, ActionPause, "admin")
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusPaused, paused.Status)

	// Unblock the worker; it observes the paused status at the next
	// boundary and exits without completing.
	close(gate)
	time.Sleep(50 * time.Millisecond)

	still, err := h.orchestrator.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusPaused, still.Status)

	resumed, err := h.orchestrator.Control(ctx, job.ID, ActionResume, "admin")
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusRunning, resumed.Status)

	done := h.waitTerminal(t, job.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(1), done.Handled())
}

func TestCancel(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	gate := make(chan struct{})
	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		<-gate
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitStatus(t, job.ID, core.JobStatusRunning)

	cancelled, err := h.orchestrator.Control(ctx, job.ID, ActionCancel, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusFailed, cancelled.Status)
	assert.Equal(t, "ops@example.com", cancelled.CancelledBy)
	assert.False(t, cancelled.CompletedAt.IsZero())

	close(gate)
	time.Sleep(50 * time.Millisecond)

	// Terminal status is immutable: the worker must not overwrite it
	// and further control actions are rejected.
	final, err := h.orchestrator.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, core.JobStatusFailed, final.Status)

	_, err = h.orchestrator.Control(ctx, job.ID, ActionResume, "admin")
	assert.ErrorIs(t, err, ErrJobTerminal)
	_, err = h.orchestrator.Control(ctx, job.ID, ActionCancel, "admin")
	assert.ErrorIs(t, err, ErrJobTerminal)
}

func TestControlValidation(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	t.Run("unknown job", func(t *testing.T) {
		_, err := h.orchestrator.Control(ctx, "no-such-job", ActionPause, "admin")
		assert.ErrorIs(t, err, ErrJobNotFound)
	})

	t.Run("resume a running job", func(t *testing.T) {
		gate := make(chan struct{})
		h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			<-gate
			return []float32{1, 0, 0}, nil
		}
		h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})

		job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
		require.NoError(t, err)
		h.waitStatus(t, job.ID, core.JobStatusRunning)

		_, err = h.orchestrator.Control(ctx, job.ID, ActionResume, "admin")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = h.orchestrator.Control(ctx, job.ID, Action("restart"), "admin")
		assert.ErrorIs(t, err, ErrUnknownAction)

		close(gate)
		h.waitTerminal(t, job.ID)
	})
}

func TestStartRejectsInvalidScope(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.orchestrator.Start(context.Background(), core.JobScope("galaxy"), core.JobDetails{}, "admin")
	assert.ErrorIs(t, err, core.ErrInvalidJobScope)
}

func TestStartDoesNotBlockWhenPoolIsFull(t *testing.T) {
	h := newTestHarness(t, &Config{
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		PoolSize:       1,
	})
	ctx := context.Background()

	gate := make(chan struct{})
	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		<-gate
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})
	h.seed(t, "u2", &content.SocialPost{ID: "p1", Caption: "b"})

	first, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitStatus(t, first.ID, core.JobStatusRunning)

	// The single worker slot is occupied; this must come back
	// immediately instead of parking the caller.
	_, err = h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u2"}, "admin")
	assert.ErrorIs(t, err, ants.ErrPoolOverload)

	// The unschedulable job was failed so its scope lock is free.
	jobs, err := h.orchestrator.ListJobs(ctx)
	require.NoError(t, err)
	var overloaded *core.VectorizationJob
	for _, j := range jobs {
		if j.Details.UserID == "u2" {
			overloaded = j
		}
	}
	require.NotNil(t, overloaded)
	assert.Equal(t, core.JobStatusFailed, overloaded.Status)
	assert.Contains(t, overloaded.Error, "scheduling failed")

	close(gate)
	h.waitTerminal(t, first.ID)

	// With a free lock, u2's scope runs as soon as the worker slot
	// frees (the slot is released just after the record turns
	// terminal, so poll rather than race it).
	var retry *core.VectorizationJob
	require.Eventually(t, func() bool {
		var startErr error
		retry, startErr = h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u2"}, "admin")
		return startErr == nil
	}, 5*time.Second, 10*time.Millisecond, "worker slot never freed")
	done := h.waitTerminal(t, retry.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
}

// flakyContentRepo fails listings for one content type to simulate a
// storage-level scan error.
type flakyContentRepo struct {
	storage.ContentRepository
	failType core.ContentType
}

func (r *flakyContentRepo) ListContent(ctx context.Context, userID string, contentType core.ContentType) ([]*core.ContentRecord, error) {
	if contentType == r.failType {
		return nil, errors.New("iterator: checksum mismatch")
	}
	return r.ContentRepository.ListContent(ctx, userID, contentType)
}

func TestListingFailureFailsJob(t *testing.T) {
	vectorRepo, jobRepo, contentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	store, err := vector.NewStore(mock.NewMockEmbedder(), vectorRepo)
	require.NoError(t, err)

	flaky := &flakyContentRepo{ContentRepository: contentRepo, failType: core.ContentTypeBlogPost}
	orchestrator, err := NewOrchestrator(jobRepo, flaky, store, WithConfig(&Config{
		MaxRetries:     2,
		RetryBaseDelay: time.Millisecond,
		PoolSize:       2,
	}))
	require.NoError(t, err)
	t.Cleanup(orchestrator.Release)

	ctx := context.Background()
	for _, src := range []content.Source{
		&content.SocialPost{ID: "p1", Caption: "fine"},
		&content.BlogPost{ID: "g1", Title: "unreachable"},
	} {
		record := content.ToRecord("u1", src)
		record.CreatedAt = time.Now().UTC()
		require.NoError(t, contentRepo.PutContent(ctx, record))
	}

	job, err := orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)

	var done *core.VectorizationJob
	require.Eventually(t, func() bool {
		done, err = orchestrator.GetJob(ctx, job.ID)
		return err == nil && done.Terminal()
	}, 5*time.Second, 5*time.Millisecond)

	// A broken listing drops an unknown number of items from the
	// accounting; completing anyway would misreport the corpus state.
	assert.Equal(t, core.JobStatusFailed, done.Status)
	assert.Contains(t, done.Error, "listing")
}

// inflatedCountRepo overestimates job totals, like content deleted
// between the estimate and the run.
type inflatedCountRepo struct {
	storage.ContentRepository
}

func (r *inflatedCountRepo) CountContent(ctx context.Context, userID string) (int64, error) {
	n, err := r.ContentRepository.CountContent(ctx, userID)
	return n + 2, err
}

func TestCompletedJobReportsFullProgress(t *testing.T) {
	vectorRepo, jobRepo, contentRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	store, err := vector.NewStore(mock.NewMockEmbedder(), vectorRepo)
	require.NoError(t, err)

	orchestrator, err := NewOrchestrator(jobRepo, &inflatedCountRepo{ContentRepository: contentRepo}, store,
		WithConfig(&Config{MaxRetries: 2, RetryBaseDelay: time.Millisecond, PoolSize: 2}))
	require.NoError(t, err)
	t.Cleanup(orchestrator.Release)

	ctx := context.Background()
	record := content.ToRecord("u1", &content.SocialPost{ID: "p1", Caption: "only one left"})
	record.CreatedAt = time.Now().UTC()
	require.NoError(t, contentRepo.PutContent(ctx, record))

	job, err := orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(3), job.TotalItems)

	var done *core.VectorizationJob
	require.Eventually(t, func() bool {
		done, err = orchestrator.GetJob(ctx, job.ID)
		return err == nil && done.Terminal()
	}, 5*time.Second, 5*time.Millisecond)

	// The estimate overshot, but a completed job reports full progress.
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	assert.Equal(t, int64(1), done.Handled())
	assert.Equal(t, float64(100), done.Progress)
}

func TestPauseAtUserBoundaryAndResume(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	var calls atomic.Int32
	secondEmbed := make(chan struct{})
	gate := make(chan struct{})
	h.embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if calls.Add(1) == 2 {
			close(secondEmbed)
			<-gate
		}
		return []float32{1, 0, 0}, nil
	}

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "first"})
	h.seed(t, "u2", &content.SocialPost{ID: "p1", Caption: "second"})
	h.seed(t, "u3", &content.SocialPost{ID: "p1", Caption: "third"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeAllUsers, core.JobDetails{}, "admin")
	require.NoError(t, err)

	// First user done, second user's embed in flight: pause lands
	// before the worker reaches the boundary between users two and
	// three.
	<-secondEmbed
	_, err = h.orchestrator.Control(ctx, job.ID, ActionPause, "admin")
	require.NoError(t, err)
	close(gate)

	// The worker finishes the in-flight user, flushes its tally, and
	// exits at the next boundary.
	require.Eventually(t, func() bool {
		j, err := h.orchestrator.GetJob(ctx, job.ID)
		return err == nil && j.Status == core.JobStatusPaused && j.ProcessedItems == 2
	}, 5*time.Second, 5*time.Millisecond, "worker never parked after the second user")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), calls.Load(), "the third user must not embed while paused")

	_, err = h.orchestrator.Control(ctx, job.ID, ActionResume, "admin")
	require.NoError(t, err)

	done := h.waitTerminal(t, job.ID)
	assert.Equal(t, core.JobStatusCompleted, done.Status)
	// The resumed run rescans: the two indexed users recount as
	// skipped without touching the embedder, the third embeds.
	assert.Equal(t, int64(1), done.ProcessedItems)
	assert.Equal(t, int64(2), done.SkippedItems)
	assert.Zero(t, done.FailedItems)
	assert.Equal(t, float64(100), done.Progress)
	assert.Equal(t, int32(3), calls.Load(), "indexed users resume without re-embedding")
}

func TestListJobs(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	h.seed(t, "u1", &content.SocialPost{ID: "p1", Caption: "a"})

	job, err := h.orchestrator.Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "admin")
	require.NoError(t, err)
	h.waitTerminal(t, job.ID)

	jobs, err := h.orchestrator.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
}
