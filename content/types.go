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

// Default performance priors by content type. Brand profiles are
// foundational context and rarely wrong, so they carry the strongest
// prior; saved images carry the weakest because their captions are
// often machine-generated.
const (
	performanceBrandProfile = 0.9
	performanceSocialMedia  = 0.6
	performanceBlogPost     = 0.65
	performanceSavedImage   = 0.5
	performanceAdCampaign   = 0.7
)

// BrandProfile is the canonical description of one user's brand.
type BrandProfile struct {
	ID             string
	Name           string
	Description    string
	Industry       string
	TargetAudience string
	Voice          string
	Values         string
	USPs           string
}

func (b *BrandProfile) Type() core.ContentType { return core.ContentTypeBrandProfile }
func (b *BrandProfile) DocID() string          { return b.ID }

func (b *BrandProfile) ContentID() string {
	return ContentID(core.ContentTypeBrandProfile, b.ID)
}

func (b *BrandProfile) Normalize() string {
	return renderLines(
		[2]string{"Brand Name", b.Name},
		[2]string{"Description", b.Description},
		[2]string{"Industry", b.Industry},
		[2]string{"Target Audience", b.TargetAudience},
		[2]string{"Brand Voice", b.Voice},
		[2]string{"Core Values", b.Values},
		[2]string{"Unique Selling Points", b.USPs},
	)
}

func (b *BrandProfile) DefaultPerformance() float64 { return performanceBrandProfile }

func (b *BrandProfile) Metadata() core.VectorMetadata {
	return core.VectorMetadata{
		Industry: b.Industry,
		Style:    b.Voice,
		Tags:     splitTags(b.Values),
	}
}

// SocialPost is one published social media post.
type SocialPost struct {
	ID         string
	Platform   string
	Caption    string
	Hashtags   string
	Tone       string
	Engagement float64
}

func (s *SocialPost) Type() core.ContentType { return core.ContentTypeSocialMedia }
func (s *SocialPost) DocID() string          { return s.ID }

func (s *SocialPost) ContentID() string {
	return ContentID(core.ContentTypeSocialMedia, s.ID)
}

func (s *SocialPost) Normalize() string {
	return renderLines(
		[2]string{"Platform", s.Platform},
		[2]string{"Caption", s.Caption},
		[2]string{"Hashtags", s.Hashtags},
		[2]string{"Tone", s.Tone},
	)
}

func (s *SocialPost) DefaultPerformance() float64 { return performanceSocialMedia }

func (s *SocialPost) Metadata() core.VectorMetadata {
	return core.VectorMetadata{
		Platform:   s.Platform,
		Tone:       s.Tone,
		Engagement: s.Engagement,
		Tags:       splitTags(s.Hashtags),
	}
}

// BlogPost is one long-form article.
type BlogPost struct {
	ID      string
	Title   string
	Summary string
	Body    string
	Tags    string
}

func (b *BlogPost) Type() core.ContentType { return core.ContentTypeBlogPost }
func (b *BlogPost) DocID() string          { return b.ID }

func (b *BlogPost) ContentID() string {
	return ContentID(core.ContentTypeBlogPost, b.ID)
}

func (b *BlogPost) Normalize() string {
	return renderLines(
		[2]string{"Title", b.Title},
		[2]string{"Summary", b.Summary},
		[2]string{"Body", b.Body},
		[2]string{"Tags", b.Tags},
	)
}

func (b *BlogPost) DefaultPerformance() float64 { return performanceBlogPost }

func (b *BlogPost) Metadata() core.VectorMetadata {
	return core.VectorMetadata{
		Tags: splitTags(b.Tags),
	}
}

// SavedImage is one generated image the user chose to keep.
type SavedImage struct {
	ID      string
	Prompt  string
	Style   string
	Caption string
}

func (i *SavedImage) Type() core.ContentType { return core.ContentTypeSavedImage }
func (i *SavedImage) DocID() string          { return i.ID }

func (i *SavedImage) ContentID() string {
	return ContentID(core.ContentTypeSavedImage, i.ID)
}

func (i *SavedImage) Normalize() string {
	return renderLines(
		[2]string{"Image Prompt", i.Prompt},
		[2]string{"Style", i.Style},
		[2]string{"Caption", i.Caption},
	)
}

func (i *SavedImage) DefaultPerformance() float64 { return performanceSavedImage }

func (i *SavedImage) Metadata() core.VectorMetadata {
	return core.VectorMetadata{
		Style: i.Style,
	}
}

// AdCampaign is one advertising campaign definition.
type AdCampaign struct {
	ID        string
	Name      string
	Objective string
	Copy      string
	Platform  string
	Audience  string
}

func (a *AdCampaign) Type() core.ContentType { return core.ContentTypeAdCampaign }
func (a *AdCampaign) DocID() string          { return a.ID }

func (a *AdCampaign) ContentID() string {
	return ContentID(core.ContentTypeAdCampaign, a.ID)
}

func (a *AdCampaign) Normalize() string {
	return renderLines(
		[2]string{"Campaign Name", a.Name},
		[2]string{"Objective", a.Objective},
		[2]string{"Ad Copy", a.Copy},
		[2]string{"Platform", a.Platform},
		[2]string{"Target Audience", a.Audience},
	)
}

func (a *AdCampaign) DefaultPerformance() float64 { return performanceAdCampaign }

func (a *AdCampaign) Metadata() core.VectorMetadata {
	return core.VectorMetadata{
		Platform: a.Platform,
		Tags:     splitTags(a.Audience),
	}
}

// splitTags splits a comma-separated field into trimmed, non-empty tags.
func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}
