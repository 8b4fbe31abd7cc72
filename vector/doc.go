// Package vector implements the content vector store: embedding of
// normalized content text, unit-length normalization, persistence, and
// similarity queries.
//
// Stored embeddings are normalized so cosine similarity at query time
// is a plain dot product. Queries scan a single user's vectors; tenant
// isolation is structural, since every read path requires a userID.
package vector
