// Package storage defines the repository interfaces for content
// vectors, vectorization jobs, and raw content records, together with
// the serialization helpers shared by all backends.
//
// The job repository's UpdateJob is an optimistic-concurrency write:
// concurrent writers (the background worker and the admin control
// surface) each hold a version token, and the stale writer gets
// ErrVersionConflict instead of silently overwriting.
package storage
