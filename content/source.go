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


package content

import (
	"strings"

	"github.com/brandloom/brandrag/core"
)

// Source is a typed content item that can be normalized into canonical
// text for vectorization. Each of the five indexable domain entities
// implements it, replacing per-type branching at the call sites.
type Source interface {
	// Type returns the content type tag.
	Type() core.ContentType

	// DocID returns the source document ID.
	DocID() string

	// ContentID returns the deterministic vector identifier, derived
	// from type and DocID so repeated runs are idempotent.
	ContentID() string

	// Normalize renders the item as a deterministic multi-line text
	// block built only from non-empty fields, in a fixed per-type
	// field order. Returns "" when every field is empty; callers
	// treat that as skip, not error.
	Normalize() string

	// DefaultPerformance returns the performance prior [0, 1] assigned
	// when no observed performance exists for the item.
	DefaultPerformance() float64

	// Metadata returns the vector metadata derived from the item's
	// fields. CreatedAt/UpdatedAt/Version are filled in by the store.
	Metadata() core.VectorMetadata
}

// ContentID builds the deterministic vector identifier for a content
// type and source document ID.
func ContentID(contentType core.ContentType, docID string) string {
	var prefix string
	switch contentType {
	case core.ContentTypeBrandProfile:
		prefix = "brand"
	case core.ContentTypeSocialMedia:
		prefix = "social"
	case core.ContentTypeBlogPost:
		prefix = "blog"
	case core.ContentTypeSavedImage:
		prefix = "image"
	case core.ContentTypeAdCampaign:
		prefix = "ad"
	default:
		prefix = "content"
	}
	return prefix + "_" + docID
}

// renderLines joins "Label: value" lines for non-empty values, in the
// order given. Returns "" when no value survives.
func renderLines(pairs ...[2]string) string {
	var lines []string
	for _, pair := range pairs {
		value := strings.TrimSpace(pair[1])
		if value == "" {
			continue
		}
		lines = append(lines, pair[0]+": "+value)
	}
	return strings.Join(lines, "\n")
}
