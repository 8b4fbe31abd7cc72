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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidContentVector indicates a ContentVector failed validation.
	ErrInvalidContentVector = errors.New("invalid content vector")

	// ErrInvalidContentRecord indicates a ContentRecord failed validation.
	ErrInvalidContentRecord = errors.New("invalid content record")

	// ErrInvalidJob indicates a VectorizationJob failed validation.
	ErrInvalidJob = errors.New("invalid vectorization job")

	// ErrEmptyContent indicates normalized text content is empty.
	// Empty content is never stored; batch jobs count it as skipped.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyUserID indicates the UserID field is empty.
	ErrEmptyUserID = errors.New("user id cannot be empty")

	// ErrEmptyContentID indicates the ContentID field is empty.
	ErrEmptyContentID = errors.New("content id cannot be empty")

	// ErrInvalidContentType indicates an unknown ContentType value.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidJobStatus indicates an unknown JobStatus value.
	ErrInvalidJobStatus = errors.New("invalid job status")

	// ErrInvalidJobScope indicates an unknown JobScope value.
	ErrInvalidJobScope = errors.New("invalid job scope")

	// ErrInvalidPerformance indicates a performance score outside [0,1].
	ErrInvalidPerformance = errors.New("performance must be between 0 and 1")

	// ErrInvalidEngagement indicates a negative engagement value.
	ErrInvalidEngagement = errors.New("engagement cannot be negative")
)
