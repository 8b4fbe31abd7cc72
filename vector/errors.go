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


package vector

import "errors"

var (
	// ErrEmbedderRequired is returned when a Store is constructed without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrRepositoryRequired is returned when a Store is constructed without a repository.
	ErrRepositoryRequired = errors.New("vector repository required")

	// ErrEmbeddingFailed indicates the embedding provider could not produce a vector.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrStorageFailed indicates vector persistence failed.
	ErrStorageFailed = errors.New("vector storage failed")

	// ErrDimensionMismatch indicates the provider returned a vector of
	// unexpected length.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
