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


package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
	"github.com/brandloom/brandrag/vector"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// Action is an admin control verb applied to a running job.
type Action string

const (
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
	ActionCancel Action = "cancel"
)

// Config holds orchestrator tuning parameters.
type Config struct {
	// MaxRetries is the attempt budget for one item's vectorization.
	MaxRetries int

	// RetryBaseDelay is the base delay for exponential backoff between
	// item retries.
	RetryBaseDelay time.Duration

	// PoolSize bounds the number of concurrently running jobs.
	PoolSize int
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		MaxRetries:     3,
		RetryBaseDelay: 500 * time.Millisecond,
		PoolSize:       poolSize,
	}
}

// Orchestrator runs batch vectorization jobs in the background. The
// persisted job record is the single source of truth: workers poll it
// for pause/cancel between top-level units of work and write progress
// back under an optimistic version check.
type Orchestrator struct {
	jobsRepo    storage.JobRepository
	contentRepo storage.ContentRepository
	store       *vector.Store
	pool        *ants.Pool
	config      *Config
	logger      *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithConfig replaces the default configuration.
func WithConfig(config *Config) Option {
	return func(o *Orchestrator) error {
		if config != nil {
			o.config = config
		}
		return nil
	}
}

// NewOrchestrator creates a job orchestrator.
func NewOrchestrator(
	jobsRepo storage.JobRepository,
	contentRepo storage.ContentRepository,
	store *vector.Store,
	opts ...Option,
) (*Orchestrator, error) {
	if jobsRepo == nil {
		return nil, ErrJobRepositoryRequired
	}
	if contentRepo == nil {
		return nil, ErrContentRepositoryRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}

	o := &Orchestrator{
		jobsRepo:    jobsRepo,
		contentRepo: contentRepo,
		store:       store,
		config:      DefaultConfig(),
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	// Non-blocking: Start must return immediately even when every
	// worker slot is busy. A full pool surfaces ants.ErrPoolOverload
	// and the job is failed so its scope lock releases.
	pool, err := ants.NewPool(o.config.PoolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	o.pool = pool

	return o, nil
}

// Release shuts down the worker pool. In-flight jobs finish their
// current unit of work and then observe their persisted status.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}

// Start creates a new vectorization job and schedules it for background
// execution. It returns immediately with the persisted job; no caller
// blocks on completion. A second job over the same scope is rejected
// with storage.ErrScopeLocked until the first reaches a terminal state.
func (o *Orchestrator) Start(ctx context.Context, scope core.JobScope, details core.JobDetails, createdBy string) (*core.VectorizationJob, error) {
	total, err := o.estimateTotal(ctx, scope, details)
	if err != nil {
		return nil, fmt.Errorf("estimating job size: %w", err)
	}

	job := &core.VectorizationJob{
		ID:         uuid.NewString(),
		Scope:      scope,
		Status:     core.JobStatusPending,
		TotalItems: total,
		StartedAt:  time.Now().UTC(),
		CreatedBy:  createdBy,
		Details:    details,
	}

	if err := o.jobsRepo.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	if err := o.submit(job.ID); err != nil {
		// Could not schedule; fail the job so the scope lock releases.
		o.markFailed(context.Background(), job.ID, "", fmt.Sprintf("scheduling failed: %v", err))
		return nil, err
	}

	o.logger.Info("vectorization job started",
		"jobId", job.ID, "scope", job.Scope, "totalItems", job.TotalItems, "createdBy", createdBy)
	return job, nil
}

// Control applies an admin action to a job. Terminal jobs are immutable
// and reject every action with ErrJobTerminal.
func (o *Orchestrator) Control(ctx context.Context, jobID string, action Action, actor string) (*core.VectorizationJob, error) {
	for {
		job, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrJobNotFound
			}
			return nil, err
		}
		if job.Terminal() {
			return nil, ErrJobTerminal
		}

		switch action {
		case ActionPause:
			if job.Status != core.JobStatusRunning {
				return nil, fmt.Errorf("%w: cannot pause a %s job", ErrInvalidTransition, job.Status)
			}
			job.Status = core.JobStatusPaused

		case ActionResume:
			if job.Status != core.JobStatusPaused {
				return nil, fmt.Errorf("%w: cannot resume a %s job", ErrInvalidTransition, job.Status)
			}
			job.Status = core.JobStatusRunning

		case ActionCancel:
			job.Status = core.JobStatusFailed
			job.CancelledBy = actor
			job.Error = "cancelled by " + actor
			job.CompletedAt = time.Now().UTC()

		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
		}

		err = o.jobsRepo.UpdateJob(ctx, job)
		if errors.Is(err, storage.ErrVersionConflict) {
			// A worker wrote progress between our read and write;
			// reload and reapply.
			continue
		}
		if err != nil {
			return nil, err
		}

		if action == ActionResume {
			if err := o.submit(job.ID); err != nil {
				o.markFailed(ctx, job.ID, actor, fmt.Sprintf("resume scheduling failed: %v", err))
				return nil, err
			}
		}

		o.logger.Info("job control applied", "jobId", jobID, "action", action, "actor", actor)
		return job, nil
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(ctx context.Context, jobID string) (*core.VectorizationJob, error) {
	job, err := o.jobsRepo.GetJob(ctx, jobID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

// ListJobs returns all jobs, most recently started first.
func (o *Orchestrator) ListJobs(ctx context.Context) ([]*core.VectorizationJob, error) {
	return o.jobsRepo.ListJobs(ctx)
}

// submit schedules the job's run loop on the worker pool.
func (o *Orchestrator) submit(jobID string) error {
	return o.pool.Submit(func() {
		o.run(jobID)
	})
}

// estimateTotal counts the items a job will cover before it starts.
func (o *Orchestrator) estimateTotal(ctx context.Context, scope core.JobScope, details core.JobDetails) (int64, error) {
	switch scope {
	case core.JobScopeSingleUser:
		return o.contentRepo.CountContent(ctx, details.UserID)
	case core.JobScopeContentType:
		return o.contentRepo.CountByType(ctx, details.ContentType)
	case core.JobScopeAllUsers:
		return o.contentRepo.CountAll(ctx)
	}
	return 0, fmt.Errorf("%w: unknown scope %q", core.ErrInvalidJobScope, scope)
}
