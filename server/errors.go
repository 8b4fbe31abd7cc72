package server

import "errors"

var (
	// ErrOrchestratorRequired is returned when a Server is constructed
	// without a job orchestrator.
	ErrOrchestratorRequired = errors.New("job orchestrator required")

	// ErrAdminTokenRequired is returned when no admin token is
	// configured. The admin API never runs unauthenticated.
	ErrAdminTokenRequired = errors.New("admin token required")
)
