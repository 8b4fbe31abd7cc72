// Package badger provides BadgerDB-backed implementations of the
// storage repositories.
//
// All repositories share a single Backend, which owns the BadgerDB
// instance. Keys are namespaced by prefix: "cvec" for content vectors,
// "craw" for raw content records, "vjob" for vectorization jobs, and
// "vjoblock" for job scope locks. Job updates are guarded by an
// optimistic version check so concurrent writers observe
// storage.ErrVersionConflict instead of silently clobbering each other.
package badger
