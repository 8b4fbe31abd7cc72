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
	"time"

	"github.com/brandloom/brandrag/content"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
)

// counters accumulates per-run item outcomes between persistence flushes.
type counters struct {
	processed int64
	failed    int64
	skipped   int64
}

// run is the job's background loop. It is detached from any request
// cycle; the persisted job record is re-read before each user so pause
// and cancel take effect cooperatively at user boundaries.
func (o *Orchestrator) run(jobID string) {
	ctx := context.Background()

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("job worker panicked", "jobId", jobID, "panic", r)
			o.markFailed(ctx, jobID, "", fmt.Sprintf("worker panic: %v", r))
		}
	}()

	job, ok := o.beginRun(ctx, jobID)
	if !ok {
		return
	}

	userIDs, types, err := o.workPlan(ctx, job)
	if err != nil {
		o.markFailed(ctx, jobID, "", err.Error())
		return
	}

	for _, userID := range userIDs {
		// Cooperative cancellation point: re-read status before each
		// user. This is the only pause/cancel check.
		current, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			o.markFailed(ctx, jobID, "", fmt.Sprintf("reloading job: %v", err))
			return
		}
		if current.Status != core.JobStatusRunning {
			o.logger.Info("job loop exiting", "jobId", jobID, "status", current.Status)
			return
		}

		tally, err := o.processUser(ctx, jobID, userID, types)
		if err != nil {
			// A listing failure is systemic, not per-item: the whole
			// content set for this user is unaccounted for, so the job
			// cannot honestly complete.
			o.markFailed(ctx, jobID, "", err.Error())
			return
		}
		if err := o.flushCounters(ctx, jobID, tally); err != nil {
			o.markFailed(ctx, jobID, "", fmt.Sprintf("persisting progress: %v", err))
			return
		}
	}

	o.finishRun(ctx, jobID)
}

// beginRun transitions the job into the running state and resets its
// counters. A resumed run rescans from the beginning: previously
// indexed items come back as skips, so the counters are recounted
// rather than carried over. Returns false when the job should not run.
func (o *Orchestrator) beginRun(ctx context.Context, jobID string) (*core.VectorizationJob, bool) {
	for {
		job, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			o.logger.Error("job vanished before run", "jobId", jobID, "err", err)
			return nil, false
		}

		switch job.Status {
		case core.JobStatusPending, core.JobStatusRunning:
		default:
			// Paused or terminal before the worker got scheduled.
			o.logger.Info("job not runnable", "jobId", jobID, "status", job.Status)
			return nil, false
		}

		job.Status = core.JobStatusRunning
		job.ProcessedItems = 0
		job.FailedItems = 0
		job.SkippedItems = 0
		job.RecomputeProgress()

		err = o.jobsRepo.UpdateJob(ctx, job)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue
		}
		if err != nil {
			o.logger.Error("could not mark job running", "jobId", jobID, "err", err)
			return nil, false
		}
		return job, true
	}
}

// workPlan resolves the job's scope into the users and content types to
// cover. Content types follow the fixed vectorization order so partial
// progress is reproducible; users are sorted but unordered semantically.
func (o *Orchestrator) workPlan(ctx context.Context, job *core.VectorizationJob) ([]string, []core.ContentType, error) {
	switch job.Scope {
	case core.JobScopeSingleUser:
		return []string{job.Details.UserID}, core.ContentTypeOrder, nil
	case core.JobScopeContentType:
		userIDs, err := o.contentRepo.ListUserIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("listing users: %w", err)
		}
		return userIDs, []core.ContentType{job.Details.ContentType}, nil
	case core.JobScopeAllUsers:
		userIDs, err := o.contentRepo.ListUserIDs(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("listing users: %w", err)
		}
		return userIDs, core.ContentTypeOrder, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", core.ErrInvalidJobScope, job.Scope)
}

// processUser vectorizes one user's content set. Per-item failures are
// non-fatal: they are logged with identifying context and counted. A
// listing failure is returned instead, since it drops an unknown number
// of items from the accounting.
func (o *Orchestrator) processUser(ctx context.Context, jobID, userID string, types []core.ContentType) (counters, error) {
	var tally counters

	existing, err := o.store.ExistingContentIDs(ctx, userID)
	if err != nil {
		o.logger.Error("could not load existing vectors, nothing will be skipped",
			"jobId", jobID, "userId", userID, "err", err)
		existing = map[string]core.ContentHash{}
	}

	for _, contentType := range types {
		records, err := o.contentRepo.ListContent(ctx, userID, contentType)
		if err != nil {
			return tally, fmt.Errorf("listing %s content for user %s: %w", contentType, userID, err)
		}

		for _, record := range records {
			outcome := o.processItem(ctx, userID, record, existing)
			switch outcome {
			case itemProcessed:
				tally.processed++
			case itemSkipped:
				tally.skipped++
			case itemFailed:
				tally.failed++
				o.logger.Warn("item vectorization failed",
					"jobId", jobID, "userId", userID, "type", record.Type, "docId", record.DocID)
			}
		}
	}

	return tally, nil
}

type itemOutcome int

const (
	itemProcessed itemOutcome = iota
	itemSkipped
	itemFailed
)

// processItem normalizes and stores one content record. Empty content
// and unchanged already-indexed content both count as skipped.
func (o *Orchestrator) processItem(ctx context.Context, userID string, record *core.ContentRecord, existing map[string]core.ContentHash) itemOutcome {
	src, err := content.FromRecord(record)
	if err != nil {
		o.logger.Warn("unrecognized content record", "userId", userID, "docId", record.DocID, "err", err)
		return itemFailed
	}

	text := src.Normalize()
	if text == "" {
		return itemSkipped
	}

	// Already indexed with identical text: skip without re-embedding.
	if hash, ok := existing[src.ContentID()]; ok && hash == core.HashContent(text) {
		return itemSkipped
	}

	err = RetryWithBackoff(ctx, o.logger, func() error {
		return o.store.StoreContentVector(ctx, userID, src)
	}, o.config.MaxRetries, o.config.RetryBaseDelay)
	if err != nil {
		if errors.Is(err, core.ErrEmptyContent) {
			return itemSkipped
		}
		o.logger.Error("storing vector failed",
			"userId", userID, "contentId", src.ContentID(), "err", err)
		return itemFailed
	}

	return itemProcessed
}

// flushCounters adds a tally to the persisted job under the version
// check, reloading and reapplying on conflict with control actions.
func (o *Orchestrator) flushCounters(ctx context.Context, jobID string, tally counters) error {
	for {
		job, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			return err
		}
		if job.Terminal() {
			// Cancelled underneath us; progress from this unit is
			// intentionally dropped, the job record is immutable now.
			return nil
		}

		job.ProcessedItems += tally.processed
		job.FailedItems += tally.failed
		job.SkippedItems += tally.skipped
		job.RecomputeProgress()

		err = o.jobsRepo.UpdateJob(ctx, job)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue
		}
		return err
	}
}

// finishRun moves a still-running job to completed. A job paused or
// cancelled during the final unit keeps its status.
func (o *Orchestrator) finishRun(ctx context.Context, jobID string) {
	for {
		job, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			o.logger.Error("could not reload job for completion", "jobId", jobID, "err", err)
			return
		}
		if job.Status != core.JobStatusRunning {
			return
		}

		job.Status = core.JobStatusCompleted
		job.CompletedAt = time.Now().UTC()
		// TotalItems is a pre-run estimate; content deleted while the
		// job was in flight can leave handled below it. A completed job
		// always reports full progress.
		job.Progress = 100

		err = o.jobsRepo.UpdateJob(ctx, job)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue
		}
		if err != nil {
			o.logger.Error("could not mark job completed", "jobId", jobID, "err", err)
			return
		}

		o.logger.Info("job completed",
			"jobId", jobID,
			"processed", job.ProcessedItems,
			"failed", job.FailedItems,
			"skipped", job.SkippedItems)
		return
	}
}

// markFailed moves a job to failed with the given error message. Used
// for infrastructure failures; per-item errors never reach here.
func (o *Orchestrator) markFailed(ctx context.Context, jobID, actor, message string) {
	for {
		job, err := o.jobsRepo.GetJob(ctx, jobID)
		if err != nil {
			o.logger.Error("could not reload job to fail it", "jobId", jobID, "err", err)
			return
		}
		if job.Terminal() {
			return
		}

		job.Status = core.JobStatusFailed
		job.Error = message
		job.CancelledBy = actor
		job.CompletedAt = time.Now().UTC()

		err = o.jobsRepo.UpdateJob(ctx, job)
		if errors.Is(err, storage.ErrVersionConflict) {
			continue
		}
		if err != nil {
			o.logger.Error("could not mark job failed", "jobId", jobID, "err", err)
		}
		return
	}
}
