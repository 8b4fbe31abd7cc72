// Package content defines the five indexable domain entities and their
// normalization into canonical text.
//
// Each entity (brand profile, social post, blog post, saved image, ad
// campaign) implements the Source interface: a deterministic content
// ID, a fixed-order multi-line text rendering built only from non-empty
// fields, a default performance prior, and the vector metadata derived
// from its fields. An item whose every field is empty normalizes to ""
// and is skipped by the vectorization pipeline, never treated as an
// error.
//
// FromRecord and ToRecord convert between typed sources and the flat
// storage envelope (core.ContentRecord), keeping type dispatch in one
// place.
package content
