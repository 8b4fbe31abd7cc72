// Package retrieval implements adaptive context retrieval for
// generation requests.
//
// Given the signals of the current request (brand description,
// platform, tone, industry), the retriever queries the user's content
// vectors, re-ranks candidates by a weighted combination of similarity,
// recency decay, and stored performance with per-type priors, and
// computes a confidence score over the result set. An empty candidate
// set always yields confidence 0, and any internal failure degrades to
// an empty context rather than an error: retrieval is best-effort and
// must never block generation.
//
// The ranking weights, decay half-life, and confidence thresholds are
// deployment configuration, not constants; see Config.
package retrieval
