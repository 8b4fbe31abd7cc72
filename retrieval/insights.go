package retrieval

import (
	"fmt"
	"strings"

	"github.com/brandloom/brandrag/core"
)

// Insights derives a short human-readable pattern summary from the
// retrieved set's metadata. Returns "" when confidence is below the
// configured threshold or no attribute recurs often enough to count as
// a pattern; an insight is never fabricated from insufficient evidence.
func (r *Retriever) Insights(rctx *core.RetrievalContext) string {
	if rctx == nil || rctx.Confidence < r.config.InsightThreshold {
		return ""
	}
	if len(rctx.RelevantContent) == 0 {
		return ""
	}

	tones := make(map[string]int)
	styles := make(map[string]int)
	platforms := make(map[string]int)
	for _, v := range rctx.RelevantContent {
		if v.Metadata.Tone != "" {
			tones[v.Metadata.Tone]++
		}
		if v.Metadata.Style != "" {
			styles[v.Metadata.Style]++
		}
		if v.Metadata.Platform != "" {
			platforms[v.Metadata.Platform]++
		}
	}

	var parts []string
	if tone, count := dominant(tones); count >= r.config.MinPatternSupport {
		parts = append(parts, fmt.Sprintf("a %s tone works well for this brand", tone))
	}
	if style, count := dominant(styles); count >= r.config.MinPatternSupport {
		parts = append(parts, fmt.Sprintf("content in a %s style has performed before", style))
	}
	if platform, count := dominant(platforms); count >= r.config.MinPatternSupport {
		parts = append(parts, fmt.Sprintf("most prior content targets %s", platform))
	}

	if len(parts) == 0 {
		return ""
	}
	summary := strings.Join(parts, "; ")
	return strings.ToUpper(summary[:1]) + summary[1:] + "."
}

// dominant returns the most frequent key and its count. Ties resolve to
// the lexicographically smallest key so the result is deterministic.
func dominant(counts map[string]int) (string, int) {
	var best string
	var bestCount int
	for key, count := range counts {
		if count > bestCount || (count == bestCount && key < best) {
			best = key
			bestCount = count
		}
	}
	return best, bestCount
}
