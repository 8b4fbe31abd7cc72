// Copyright 2025 Brandloom Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"sort"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	"github.com/dgraph-io/badger/v4"
)

// JobRepository implements storage.JobRepository for BadgerDB.
//
// Writes go through a compare-and-swap on the job's Version field
// inside a single badger transaction, which closes the race between
// the background worker's progress writes and the admin surface's
// pause/cancel writes.
type JobRepository struct {
	backend *Backend
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) *JobRepository {
	return &JobRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources beyond the backend.
func (r *JobRepository) Close() error {
	return nil
}

// CreateJob persists a new job and acquires its scope lock atomically.
func (r *JobRepository) CreateJob(ctx context.Context, job *core.VectorizationJob) error {
	if err := core.ValidateJob(job); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(job.ID)
		if _, err := tx.Get(key); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		// Scope lock: refuse to create while another job owns the scope.
		lockKey := makeScopeLockKey(job.ScopeKey())
		if _, err := tx.Get(lockKey); err == nil {
			return storage.ErrScopeLocked
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		if err := tx.Set(lockKey, []byte(job.ID)); err != nil {
			return err
		}

		job.Version = 1
		if err := tx.Set(key, storage.MarshalJob(job)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetJob retrieves a job by ID.
func (r *JobRepository) GetJob(ctx context.Context, id string) (*core.VectorizationJob, error) {
	var job *core.VectorizationJob
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		job, err = r.readJob(tx, makeJobKey(id))
		if err != nil {
			return err
		}
		if job == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob writes the job back under a version check. The caller's
// job.Version must match the stored version; on success the version is
// bumped (on the caller's copy too). A transition to a terminal status
// releases the scope lock in the same transaction.
func (r *JobRepository) UpdateJob(ctx context.Context, job *core.VectorizationJob) error {
	if err := core.ValidateJob(job); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobKey(job.ID)
		stored, err := r.readJob(tx, key)
		if err != nil {
			return err
		}
		if stored == nil {
			return storage.ErrNotFound
		}
		if stored.Version != job.Version {
			return storage.ErrVersionConflict
		}

		job.Version++
		if err := tx.Set(key, storage.MarshalJob(job)); err != nil {
			return err
		}

		if job.Terminal() && !stored.Terminal() {
			lockKey := makeScopeLockKey(job.ScopeKey())
			if err := tx.Delete(lockKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListJobs retrieves all jobs, most recently started first.
func (r *JobRepository) ListJobs(ctx context.Context) ([]*core.VectorizationJob, error) {
	var jobs []*core.VectorizationJob

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				job, err := storage.UnmarshalJob(val)
				if err != nil {
					return err
				}
				jobs = append(jobs, job)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].StartedAt.After(jobs[j].StartedAt)
	})
	return jobs, nil
}

// readJob reads and unmarshals a job, or returns nil if absent.
func (r *JobRepository) readJob(tx *badger.Txn, key []byte) (*core.VectorizationJob, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var job *core.VectorizationJob
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		job, unmarshalErr = storage.UnmarshalJob(val)
		return unmarshalErr
	})
	return job, err
}
