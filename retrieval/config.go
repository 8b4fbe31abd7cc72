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
	"errors"
	"time"

	"github.com/brandloom/brandrag/core"
)

// Config holds the tunable ranking and confidence parameters. The
// weights are configuration rather than constants: they are tuned per
// deployment against observed generation quality.
type Config struct {
	// SimilarityWeight scales the raw cosine similarity term.
	SimilarityWeight float64

	// RecencyWeight scales the recency-decay term.
	RecencyWeight float64

	// PerformanceWeight scales the stored performance term.
	PerformanceWeight float64

	// TypePriors multiplies the combined score per content type.
	// Types absent from the map use a prior of 1.0. Brand profiles
	// default above 1 because they are foundational and rarely wrong.
	TypePriors map[core.ContentType]float64

	// RecencyHalfLife is the age at which the recency term halves.
	RecencyHalfLife time.Duration

	// CandidateLimit is the number of raw candidates fetched from the
	// vector store before re-ranking.
	CandidateLimit int

	// DispersionPenalty scales how much similarity spread reduces
	// confidence. Widely scattered scores mean the retrieval is less
	// trustworthy than its mean similarity suggests.
	DispersionPenalty float64

	// InsightThreshold is the minimum confidence below which no
	// insight is derived.
	InsightThreshold float64

	// MinPatternSupport is the minimum number of candidates sharing an
	// attribute before it counts as a pattern.
	MinPatternSupport int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithWeights sets the similarity, recency, and performance weights.
func WithWeights(similarity, recency, performance float64) ConfigOption {
	return func(c *Config) {
		c.SimilarityWeight = similarity
		c.RecencyWeight = recency
		c.PerformanceWeight = performance
	}
}

// WithTypePrior sets the score multiplier for one content type.
func WithTypePrior(contentType core.ContentType, prior float64) ConfigOption {
	return func(c *Config) {
		if c.TypePriors == nil {
			c.TypePriors = make(map[core.ContentType]float64)
		}
		c.TypePriors[contentType] = prior
	}
}

// WithRecencyHalfLife sets the recency decay half-life.
func WithRecencyHalfLife(halfLife time.Duration) ConfigOption {
	return func(c *Config) {
		c.RecencyHalfLife = halfLife
	}
}

// WithCandidateLimit sets the raw candidate fetch size.
func WithCandidateLimit(limit int) ConfigOption {
	return func(c *Config) {
		c.CandidateLimit = limit
	}
}

// WithInsightThreshold sets the minimum confidence for insights.
func WithInsightThreshold(threshold float64) ConfigOption {
	return func(c *Config) {
		c.InsightThreshold = threshold
	}
}

// WithMinPatternSupport sets the minimum pattern support count.
func WithMinPatternSupport(support int) ConfigOption {
	return func(c *Config) {
		c.MinPatternSupport = support
	}
}

// DefaultConfig returns a Config with starting-point values. Deployments
// are expected to tune the weights; nothing downstream depends on these
// specific numbers.
func DefaultConfig() *Config {
	return &Config{
		SimilarityWeight:  0.6,
		RecencyWeight:     0.2,
		PerformanceWeight: 0.2,
		TypePriors: map[core.ContentType]float64{
			core.ContentTypeBrandProfile: 1.25,
		},
		RecencyHalfLife:   90 * 24 * time.Hour,
		CandidateLimit:    10,
		DispersionPenalty: 0.5,
		InsightThreshold:  0.5,
		MinPatternSupport: 2,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SimilarityWeight < 0 || c.RecencyWeight < 0 || c.PerformanceWeight < 0 {
		return errors.New("retrieval config: weights must be non-negative")
	}
	if c.SimilarityWeight+c.RecencyWeight+c.PerformanceWeight == 0 {
		return errors.New("retrieval config: at least one weight must be positive")
	}
	if c.RecencyHalfLife <= 0 {
		return errors.New("retrieval config: RecencyHalfLife must be positive")
	}
	if c.CandidateLimit <= 0 {
		return errors.New("retrieval config: CandidateLimit must be positive")
	}
	for contentType, prior := range c.TypePriors {
		if !contentType.Valid() {
			return errors.New("retrieval config: unknown content type in TypePriors")
		}
		if prior <= 0 {
			return errors.New("retrieval config: type priors must be positive")
		}
	}
	return nil
}

// typePrior returns the score multiplier for a content type.
func (c *Config) typePrior(contentType core.ContentType) float64 {
	if prior, ok := c.TypePriors[contentType]; ok {
		return prior
	}
	return 1.0
}
