// Package jobs implements the batch vectorization job orchestrator.
//
// A job is a persisted state machine: pending -> running ->
// {completed, failed}, with running <-> paused and any non-terminal
// status -> failed via cancel. The persisted record is the single
// source of truth; background workers re-read it before each user (the
// only cancellation/pause check point) and write progress back under an
// optimistic version check, so admin control actions and worker
// progress writes never silently clobber each other.
//
// One active job per scope is enforced through a persisted scope lock
// acquired at creation and released when the job reaches a terminal
// status. Per-item failures are non-fatal: they are logged with
// identifying context and counted in FailedItems, while empty or
// unchanged items count as skipped. Re-running a job is idempotent
// because content IDs are deterministic and unchanged text (by hash)
// is never re-embedded.
package jobs
