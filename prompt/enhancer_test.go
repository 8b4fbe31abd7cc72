package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brandloom/brandrag/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWith(confidence float64, texts ...string) *core.RetrievalContext {
	vectors := make([]*core.ContentVector, len(texts))
	for i, text := range texts {
		vectors[i] = &core.ContentVector{TextContent: text}
	}
	return &core.RetrievalContext{RelevantContent: vectors, Confidence: confidence}
}

func TestEnhanceUnchanged(t *testing.T) {
	enhancer := NewEnhancer(nil)
	base := "Write an instagram caption for a skincare brand."

	t.Run("nil context", func(t *testing.T) {
		assert.Equal(t, base, enhancer.Enhance(base, nil))
	})

	t.Run("zero confidence", func(t *testing.T) {
		assert.Equal(t, base, enhancer.Enhance(base, contextWith(0, "some content")))
	})

	t.Run("below confidence bar", func(t *testing.T) {
		assert.Equal(t, base, enhancer.Enhance(base, contextWith(0.1, "some content")))
	})

	t.Run("empty content set", func(t *testing.T) {
		assert.Equal(t, base, enhancer.Enhance(base, contextWith(0.9)))
	})

	t.Run("only empty texts", func(t *testing.T) {
		assert.Equal(t, base, enhancer.Enhance(base, contextWith(0.9, "", "   ")))
	})
}

func TestEnhanceAppends(t *testing.T) {
	enhancer := NewEnhancer(nil)
	base := "Write an instagram caption."

	result := enhancer.Enhance(base, contextWith(0.9,
		"Moss doesn't rush. Neither do we.",
		"The forest made it first."))

	assert.True(t, strings.HasPrefix(result, base), "base prompt must stay intact")
	assert.Contains(t, result, "Moss doesn't rush")
	assert.Contains(t, result, "The forest made it first")
}

func TestEnhanceDeduplicates(t *testing.T) {
	enhancer := NewEnhancer(nil)
	base := "Write a caption."

	// Same phrasing with trivial punctuation/case differences
	result := enhancer.Enhance(base, contextWith(0.9,
		"Moss doesn't rush. Neither do we.",
		"moss doesn't rush, neither do we"))

	assert.Equal(t, 1, strings.Count(strings.ToLower(result), "moss doesn't rush"))
}

func TestEnhanceBounds(t *testing.T) {
	t.Run("excerpt count capped", func(t *testing.T) {
		enhancer := NewEnhancer(NewConfig(WithMaxExcerpts(2)))
		result := enhancer.Enhance("base", contextWith(0.9, "alpha one", "beta two", "gamma three", "delta four"))

		assert.Contains(t, result, "alpha")
		assert.Contains(t, result, "beta")
		assert.NotContains(t, result, "gamma")
		assert.NotContains(t, result, "delta")
	})

	t.Run("total augmentation capped", func(t *testing.T) {
		enhancer := NewEnhancer(NewConfig(WithMaxAugmentation(100)))
		long := strings.Repeat("very long brand content ", 50)
		base := "base prompt"

		result := enhancer.Enhance(base, contextWith(0.9, long))
		require.True(t, strings.HasPrefix(result, base))
		assert.LessOrEqual(t, len(result)-len(base), 100)
	})

	t.Run("augmentation cap lands on a rune boundary", func(t *testing.T) {
		enhancer := NewEnhancer(NewConfig(WithMaxAugmentation(67)))
		base := "base prompt"
		long := strings.Repeat("héritage botanique façonné ", 20)

		result := enhancer.Enhance(base, contextWith(0.9, long))
		require.True(t, strings.HasPrefix(result, base))
		assert.True(t, utf8.ValidString(result), "truncation must not split a multi-byte rune")
		assert.LessOrEqual(t, utf8.RuneCountInString(result)-utf8.RuneCountInString(base), 67)
	})

	t.Run("excerpt length counts runes", func(t *testing.T) {
		excerpt := makeExcerpt(strings.Repeat("é", 40), 10)
		assert.True(t, utf8.ValidString(excerpt))
		assert.Equal(t, 10, utf8.RuneCountInString(excerpt))
	})

	t.Run("excerpt truncates at word boundary", func(t *testing.T) {
		excerpt := makeExcerpt("one two three four five six seven", 20)
		assert.LessOrEqual(t, len(excerpt), 20)
		assert.False(t, strings.HasSuffix(excerpt, " "))
		// No word is cut in half
		for _, w := range strings.Fields(excerpt) {
			assert.Contains(t, []string{"one", "two", "three", "four", "five", "six", "seven"}, w)
		}
	})
}

func TestTokenizeAndFilter(t *testing.T) {
	words := tokenizeAndFilter("The Forest made it first, and we bottled IT!")
	assert.Equal(t, []string{"forest", "made", "first", "we", "bottled"}, words)
}
