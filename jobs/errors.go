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

import "errors"

var (
	// ErrJobRepositoryRequired is returned when an Orchestrator is
	// constructed without a job repository.
	ErrJobRepositoryRequired = errors.New("job repository required")

	// ErrContentRepositoryRequired is returned when an Orchestrator is
	// constructed without a content repository.
	ErrContentRepositoryRequired = errors.New("content repository required")

	// ErrStoreRequired is returned when an Orchestrator is constructed
	// without a vector store.
	ErrStoreRequired = errors.New("vector store required")

	// ErrJobNotFound indicates the referenced job does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrJobTerminal indicates a control action targeted a job that has
	// already completed or failed. Terminal jobs are immutable.
	ErrJobTerminal = errors.New("job is in a terminal state")

	// ErrInvalidTransition indicates a control action that the job's
	// current status does not permit.
	ErrInvalidTransition = errors.New("invalid job status transition")

	// ErrUnknownAction indicates an unrecognized control action.
	ErrUnknownAction = errors.New("unknown control action")

	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
)
