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

import "fmt"

// ValidateContentVector validates a ContentVector according to domain rules.
//
// Validation rules:
//   - UserID and ContentID must not be empty
//   - ContentType must be a known type
//   - TextContent must not be empty (empty content is never stored)
//   - Metadata.Performance must be in [0,1], Metadata.Engagement >= 0
//
// NOT validated:
//   - Embedding (dimension checks belong to the vector store, which knows
//     the configured provider dimension)
func ValidateContentVector(v *ContentVector) error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", ErrInvalidContentVector)
	}

	if v.UserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentVector, ErrEmptyUserID)
	}

	if v.ContentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentVector, ErrEmptyContentID)
	}

	if !v.ContentType.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidContentVector, ErrInvalidContentType, v.ContentType)
	}

	if v.TextContent == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentVector, ErrEmptyContent)
	}

	if v.Metadata.Performance < 0 || v.Metadata.Performance > 1 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidContentVector, ErrInvalidPerformance, v.Metadata.Performance)
	}

	if v.Metadata.Engagement < 0 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidContentVector, ErrInvalidEngagement, v.Metadata.Engagement)
	}

	return nil
}

// ValidateContentRecord validates a raw ContentRecord envelope.
func ValidateContentRecord(r *ContentRecord) error {
	if r == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidContentRecord)
	}

	if r.UserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrEmptyUserID)
	}

	if r.DocID == "" {
		return fmt.Errorf("%w: doc id cannot be empty", ErrInvalidContentRecord)
	}

	if !r.Type.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidContentRecord, ErrInvalidContentType, r.Type)
	}

	return nil
}

// ValidateJob validates a VectorizationJob according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Status and Scope must be known values
//   - counters must be non-negative; handled may exceed TotalItems,
//     since totals are an estimate taken before the run and content can
//     arrive while a job is in flight
//   - single_user scope requires Details.UserID;
//     content_type scope requires a valid Details.ContentType
func ValidateJob(j *VectorizationJob) error {
	if j == nil {
		return fmt.Errorf("%w: job is nil", ErrInvalidJob)
	}

	if j.ID == "" {
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidJob)
	}

	if !j.Status.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidJob, ErrInvalidJobStatus, j.Status)
	}

	if !j.Scope.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidJob, ErrInvalidJobScope, j.Scope)
	}

	if j.TotalItems < 0 || j.ProcessedItems < 0 || j.FailedItems < 0 || j.SkippedItems < 0 {
		return fmt.Errorf("%w: counters cannot be negative", ErrInvalidJob)
	}

	switch j.Scope {
	case JobScopeSingleUser:
		if j.Details.UserID == "" {
			return fmt.Errorf("%w: single_user scope requires a user id", ErrInvalidJob)
		}
	case JobScopeContentType:
		if !j.Details.ContentType.Valid() {
			return fmt.Errorf("%w: content_type scope requires a valid content type", ErrInvalidJob)
		}
	}

	return nil
}
