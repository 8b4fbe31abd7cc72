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


package retrieval

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/vector"
)

// Signals carries the attributes of the current generation request used
// to build the retrieval query.
type Signals struct {
	BrandDescription string
	Platform         string
	Tone             string
	Industry         string
}

// queryText renders the signals as the retrieval query. Empty signals
// produce an empty query, which still embeds; retrieval quality simply
// degrades rather than failing.
func (s Signals) queryText() string {
	var parts []string
	if s.BrandDescription != "" {
		parts = append(parts, s.BrandDescription)
	}
	if s.Platform != "" {
		parts = append(parts, "platform: "+s.Platform)
	}
	if s.Tone != "" {
		parts = append(parts, "tone: "+s.Tone)
	}
	if s.Industry != "" {
		parts = append(parts, "industry: "+s.Industry)
	}
	return strings.Join(parts, "\n")
}

// Retriever builds adaptive retrieval context for generation requests.
// It is best-effort: any internal failure degrades to an empty context
// with zero confidence instead of an error, because generation must
// never be blocked by retrieval.
type Retriever struct {
	store  *vector.Store
	config *Config
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithClock overrides the time source used for recency decay. Tests
// use this to make decay deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Retriever) error {
		if now != nil {
			r.now = now
		}
		return nil
	}
}

// NewRetriever creates a retriever over the given vector store.
func NewRetriever(store *vector.Store, config *Config, opts ...Option) (*Retriever, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	r := &Retriever{
		store:  store,
		config: config,
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Context retrieves and re-ranks the user's most relevant prior content
// for the given request signals. A user with no stored vectors, or any
// retrieval failure, yields an empty context with confidence 0 — never
// an error.
func (r *Retriever) Context(ctx context.Context, userID string, sig Signals) *core.RetrievalContext {
	empty := &core.RetrievalContext{Confidence: 0}

	candidates, err := r.store.Query(ctx, userID, sig.queryText(), r.config.CandidateLimit, nil)
	if err != nil {
		r.logger.Warn("retrieval degraded to empty context", "userId", userID, "err", err)
		return empty
	}
	if len(candidates) == 0 {
		return empty
	}

	ranked := r.rerank(candidates)

	vectors := make([]*core.ContentVector, len(ranked))
	for i, c := range ranked {
		vectors[i] = c.Vector
	}

	return &core.RetrievalContext{
		RelevantContent: vectors,
		Confidence:      r.confidence(candidates),
	}
}

// rerank orders candidates by a weighted combination of similarity,
// recency decay, and stored performance, multiplied by the per-type
// prior. The input slice is not modified.
func (r *Retriever) rerank(candidates []*core.ScoredVector) []*core.ScoredVector {
	now := r.now()

	type rankedVector struct {
		candidate *core.ScoredVector
		score     float64
	}

	ranked := make([]rankedVector, len(candidates))
	for i, c := range candidates {
		score := r.config.SimilarityWeight*float64(c.Similarity) +
			r.config.RecencyWeight*r.recencyDecay(now, c.Vector.Metadata.UpdatedAt) +
			r.config.PerformanceWeight*c.Vector.Metadata.Performance
		score *= r.config.typePrior(c.Vector.ContentType)
		ranked[i] = rankedVector{candidate: c, score: score}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]*core.ScoredVector, len(ranked))
	for i, rv := range ranked {
		out[i] = rv.candidate
	}
	return out
}

// recencyDecay returns the half-life decay factor in (0, 1] for the
// age of updatedAt. Future timestamps clamp to 1.
func (r *Retriever) recencyDecay(now, updatedAt time.Time) float64 {
	age := now.Sub(updatedAt)
	if age <= 0 {
		return 1.0
	}
	return math.Pow(0.5, float64(age)/float64(r.config.RecencyHalfLife))
}

// confidence scores how trustworthy the candidate set is, in [0, 1].
// It rises with mean similarity and coverage of the candidate budget,
// and falls with similarity dispersion. An empty set is always 0.
func (r *Retriever) confidence(candidates []*core.ScoredVector) float64 {
	n := len(candidates)
	if n == 0 {
		return 0
	}

	var sum float64
	for _, c := range candidates {
		sum += float64(c.Similarity)
	}
	mean := sum / float64(n)

	var variance float64
	for _, c := range candidates {
		d := float64(c.Similarity) - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(n))

	coverage := float64(n) / float64(r.config.CandidateLimit)
	if coverage > 1 {
		coverage = 1
	}

	confidence := mean*(0.5+0.5*coverage) - r.config.DispersionPenalty*stddev
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
