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

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/brandloom/brandrag/ai"
	"github.com/brandloom/brandrag/content"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/storage"
)

// Store embeds normalized content and persists the resulting vectors.
// It is the single write and query path for content vectors; all
// embeddings are normalized to unit length before storage so query-time
// cosine similarity reduces to a dot product.
type Store struct {
	embedder ai.Embedder
	repo     storage.VectorRepository
	dims     int
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithDimensions sets the expected embedding length. Vectors of any
// other length are rejected with ErrDimensionMismatch. Zero disables
// the check.
func WithDimensions(dims int) Option {
	return func(s *Store) error {
		s.dims = dims
		return nil
	}
}

// NewStore creates a vector store over the given embedder and repository.
func NewStore(embedder ai.Embedder, repo storage.VectorRepository, opts ...Option) (*Store, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Store{
		embedder: embedder,
		repo:     repo,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// StoreContentVector normalizes src, embeds the text, and upserts the
// vector under (userID, src.ContentID()). Returns core.ErrEmptyContent
// when the item normalizes to nothing; callers count that as skipped.
func (s *Store) StoreContentVector(ctx context.Context, userID string, src content.Source) error {
	text := src.Normalize()
	if text == "" {
		return core.ErrEmptyContent
	}

	embedding, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		s.logger.Error("embedding failed",
			"userId", userID, "contentId", src.ContentID(), "err", err)
		return fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	if len(embedding) == 0 {
		return fmt.Errorf("%w: provider returned empty vector", ErrEmbeddingFailed)
	}
	if s.dims > 0 && len(embedding) != s.dims {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(embedding), s.dims)
	}

	metadata := src.Metadata()
	if metadata.Performance == 0 {
		metadata.Performance = src.DefaultPerformance()
	}

	vec := &core.ContentVector{
		UserID:           userID,
		ContentType:      src.Type(),
		ContentID:        src.ContentID(),
		SourceCollection: string(src.Type()),
		SourceDocID:      src.DocID(),
		TextContent:      text,
		TextHash:         core.HashContent(text),
		Embedding:        NormalizeVector(embedding),
		Metadata:         metadata,
	}

	if err := s.repo.UpsertVector(ctx, vec); err != nil {
		s.logger.Error("vector upsert failed",
			"userId", userID, "contentId", vec.ContentID, "err", err)
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}

	s.logger.Debug("stored content vector",
		"userId", userID, "contentId", vec.ContentID, "type", vec.ContentType)
	return nil
}

// ExistingContentIDs returns contentID -> stored text hash for a user.
// The orchestrator uses it to skip unchanged items without re-embedding.
func (s *Store) ExistingContentIDs(ctx context.Context, userID string) (map[string]core.ContentHash, error) {
	return s.repo.ExistingContentIDs(ctx, userID)
}

// QueryFilter restricts a query to matching vectors. Zero-value fields
// match everything.
type QueryFilter struct {
	ContentTypes []core.ContentType
	Industry     string
	Tag          string
}

func (f *QueryFilter) matches(v *core.ContentVector) bool {
	if f == nil {
		return true
	}
	if len(f.ContentTypes) > 0 && !slices.Contains(f.ContentTypes, v.ContentType) {
		return false
	}
	if f.Industry != "" && v.Metadata.Industry != f.Industry {
		return false
	}
	if f.Tag != "" && !slices.Contains(v.Metadata.Tags, f.Tag) {
		return false
	}
	return true
}

// Query embeds queryText and returns the user's top-k vectors by cosine
// similarity, ties broken by most-recent update.
func (s *Store) Query(ctx context.Context, userID, queryText string, k int, filter *QueryFilter) ([]*core.ScoredVector, error) {
	if k <= 0 {
		return nil, nil
	}

	queryVec, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		s.logger.Error("query embedding failed", "userId", userID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	queryVec = NormalizeVector(queryVec)

	vectors, err := s.repo.ListVectors(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}

	scored := make([]*core.ScoredVector, 0, len(vectors))
	for _, v := range vectors {
		if !filter.matches(v) {
			continue
		}
		scored = append(scored, &core.ScoredVector{
			Vector:     v,
			Similarity: dotProduct(queryVec, v.Embedding),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].Vector.Metadata.UpdatedAt.After(scored[j].Vector.Metadata.UpdatedAt)
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// DeleteVectors removes stored vectors by content ID.
func (s *Store) DeleteVectors(ctx context.Context, userID string, contentIDs ...string) error {
	return s.repo.DeleteVectors(ctx, userID, contentIDs...)
}
