// Package prompt augments generation prompts with retrieved brand
// context.
//
// The enhancer appends a bounded, deduplicated block of content
// excerpts when the retrieval confidence clears a configured bar;
// otherwise the base prompt passes through unchanged. Callers treat a
// missing or low-confidence context as a no-op, never as an error.
package prompt
