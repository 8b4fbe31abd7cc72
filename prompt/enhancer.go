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


package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/brandloom/brandrag/core"
)

// Config holds the augmentation bounds.
type Config struct {
	// MinConfidence is the confidence bar below which the base prompt
	// is returned unchanged.
	MinConfidence float64

	// MaxAugmentation caps the total runes appended to the base
	// prompt, protecting downstream prompt/token budgets.
	MaxAugmentation int

	// MaxExcerpts caps how many content excerpts are included.
	MaxExcerpts int

	// ExcerptLength caps the runes taken from each piece of content.
	ExcerptLength int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithMinConfidence sets the augmentation confidence bar.
func WithMinConfidence(min float64) ConfigOption {
	return func(c *Config) {
		c.MinConfidence = min
	}
}

// WithMaxAugmentation caps total appended characters.
func WithMaxAugmentation(max int) ConfigOption {
	return func(c *Config) {
		c.MaxAugmentation = max
	}
}

// WithMaxExcerpts caps the number of excerpts.
func WithMaxExcerpts(max int) ConfigOption {
	return func(c *Config) {
		c.MaxExcerpts = max
	}
}

// DefaultConfig returns a Config with starting-point bounds.
func DefaultConfig() *Config {
	return &Config{
		MinConfidence:   0.4,
		MaxAugmentation: 1200,
		MaxExcerpts:     3,
		ExcerptLength:   280,
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

// Enhancer augments generation prompts with retrieved brand context.
// Augmentation is always optional: a nil or low-confidence context
// returns the base prompt unchanged, never an error.
type Enhancer struct {
	config *Config
}

// NewEnhancer creates an enhancer. A nil config uses defaults.
func NewEnhancer(config *Config) *Enhancer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Enhancer{config: config}
}

// Enhance appends a bounded, deduplicated excerpt block from the
// retrieval context to basePrompt. When rctx is nil, empty, or below
// the confidence bar, basePrompt comes back unchanged.
func (e *Enhancer) Enhance(basePrompt string, rctx *core.RetrievalContext) string {
	if rctx == nil || rctx.Confidence < e.config.MinConfidence {
		return basePrompt
	}
	if len(rctx.RelevantContent) == 0 {
		return basePrompt
	}

	var excerpts []string
	seen := make(map[string]bool)
	for _, v := range rctx.RelevantContent {
		if len(excerpts) >= e.config.MaxExcerpts {
			break
		}
		excerpt := makeExcerpt(v.TextContent, e.config.ExcerptLength)
		if excerpt == "" {
			continue
		}
		// Dedupe on filtered words so near-identical content
		// (reposted captions, trimmed variants) is not repeated
		key := strings.Join(tokenizeAndFilter(excerpt), " ")
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		excerpts = append(excerpts, "- "+excerpt)
	}

	if len(excerpts) == 0 {
		return basePrompt
	}

	augmentation := "\n\nDraw on the brand's existing content for style and phrasing:\n" +
		strings.Join(excerpts, "\n")
	augmentation = truncateRunes(augmentation, e.config.MaxAugmentation)

	return basePrompt + augmentation
}

// makeExcerpt collapses whitespace and truncates to maxLen runes,
// cutting at a word boundary when possible.
func makeExcerpt(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	cut := truncateRunes(text, maxLen)
	if cut == text {
		return text
	}
	if idx := strings.LastIndex(cut, " "); idx > len(cut)/2 {
		cut = cut[:idx]
	}
	return cut
}

// truncateRunes cuts s to at most max runes. Byte slicing would land
// inside a multi-byte sequence and emit invalid UTF-8 into the prompt.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
