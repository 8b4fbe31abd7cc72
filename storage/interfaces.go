package storage

import (
	"context"

	"github.com/brandloom/brandrag/core"
)

// VectorRepository provides operations for managing content vectors.
// Implementations must be thread-safe and support concurrent access.
type VectorRepository interface {
	// UpsertVector creates or replaces the vector stored under
	// (vector.UserID, vector.ContentID). Vectors are never mutated in
	// place; re-indexing always goes through this upsert.
	UpsertVector(ctx context.Context, vector *core.ContentVector) error

	// GetVector retrieves a single vector by (userID, contentID).
	// Returns ErrNotFound if no such vector exists.
	GetVector(ctx context.Context, userID, contentID string) (*core.ContentVector, error)

	// ListVectors retrieves all vectors stored for a user.
	ListVectors(ctx context.Context, userID string) ([]*core.ContentVector, error)

	// ExistingContentIDs returns the content IDs already indexed for a
	// user, mapped to the hash of the text each was embedded from.
	// Batch jobs use it to skip unchanged items without re-embedding.
	ExistingContentIDs(ctx context.Context, userID string) (map[string]core.ContentHash, error)

	// DeleteVectors removes vectors by content ID. Missing IDs are
	// ignored; deletion is driven by external collaborators.
	DeleteVectors(ctx context.Context, userID string, contentIDs ...string) error

	// Close closes the repository.
	Close() error
}

// JobRepository provides operations for managing vectorization job
// records. The job record is the single source of truth shared by the
// background worker and the admin control surface, so every write is
// guarded by an optimistic-concurrency version token.
type JobRepository interface {
	// CreateJob persists a new job and atomically acquires the lock
	// for the job's scope key. Returns ErrScopeLocked if another
	// non-terminal job holds the same scope.
	CreateJob(ctx context.Context, job *core.VectorizationJob) error

	// GetJob retrieves a job by ID. Returns ErrNotFound if missing.
	GetJob(ctx context.Context, id string) (*core.VectorizationJob, error)

	// UpdateJob writes the job back if job.Version still matches the
	// stored version, then bumps the version. Returns
	// ErrVersionConflict on a stale version; callers reload and retry.
	// When the job transitions to a terminal status its scope lock is
	// released in the same transaction.
	UpdateJob(ctx context.Context, job *core.VectorizationJob) error

	// ListJobs retrieves all jobs, most recently started first.
	ListJobs(ctx context.Context) ([]*core.VectorizationJob, error)

	// Close closes the repository.
	Close() error
}

// ContentRepository provides read access to the raw content records
// the vectorization jobs index, and write access for the collaborators
// that own them.
type ContentRepository interface {
	// PutContent stores a raw content record under
	// (record.UserID, record.Type, record.DocID).
	PutContent(ctx context.Context, record *core.ContentRecord) error

	// ListUserIDs returns the IDs of all users with content, sorted.
	ListUserIDs(ctx context.Context) ([]string, error)

	// ListContent returns a user's records of one type, sorted by doc ID.
	ListContent(ctx context.Context, userID string, contentType core.ContentType) ([]*core.ContentRecord, error)

	// CountContent returns the exact number of records for one user.
	CountContent(ctx context.Context, userID string) (int64, error)

	// CountByType returns the number of records of one type across all users.
	CountByType(ctx context.Context, contentType core.ContentType) (int64, error)

	// CountAll returns the total number of records across all users.
	CountAll(ctx context.Context) (int64, error)

	// Close closes the repository.
	Close() error
}
