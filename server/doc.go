// Package server exposes the job orchestrator over an HTTP admin API.
//
// All routes live under /api/v1/admin and require a bearer token.
// Starting a job returns 202 with the job ID immediately; the work runs
// in the background and progress is read back via the job routes.
// Conflicts (terminal jobs, invalid transitions, busy scopes) map to
// 409, unknown jobs to 404, malformed requests to 400.
package server
