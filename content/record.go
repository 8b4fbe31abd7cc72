package content

import (
	"fmt"

	"github.com/brandloom/brandrag/core"
)

// Field keys used in core.ContentRecord.Fields. The storage envelope is
// a flat string map; these keys bind the map to the typed sources.
const (
	fieldName           = "name"
	fieldDescription    = "description"
	fieldIndustry       = "industry"
	fieldTargetAudience = "target_audience"
	fieldVoice          = "voice"
	fieldValues         = "values"
	fieldUSPs           = "usps"
	fieldPlatform       = "platform"
	fieldCaption        = "caption"
	fieldHashtags       = "hashtags"
	fieldTone           = "tone"
	fieldTitle          = "title"
	fieldSummary        = "summary"
	fieldBody           = "body"
	fieldTags           = "tags"
	fieldPrompt         = "prompt"
	fieldStyle          = "style"
	fieldObjective      = "objective"
	fieldCopy           = "copy"
	fieldAudience       = "audience"
)

// FromRecord reconstructs a typed Source from its storage envelope.
// This is the single type-dispatch point for the five content shapes.
func FromRecord(record *core.ContentRecord) (Source, error) {
	f := record.Fields
	switch record.Type {
	case core.ContentTypeBrandProfile:
		return &BrandProfile{
			ID:             record.DocID,
			Name:           f[fieldName],
			Description:    f[fieldDescription],
			Industry:       f[fieldIndustry],
			TargetAudience: f[fieldTargetAudience],
			Voice:          f[fieldVoice],
			Values:         f[fieldValues],
			USPs:           f[fieldUSPs],
		}, nil
	case core.ContentTypeSocialMedia:
		return &SocialPost{
			ID:         record.DocID,
			Platform:   f[fieldPlatform],
			Caption:    f[fieldCaption],
			Hashtags:   f[fieldHashtags],
			Tone:       f[fieldTone],
			Engagement: record.Engagement,
		}, nil
	case core.ContentTypeBlogPost:
		return &BlogPost{
			ID:      record.DocID,
			Title:   f[fieldTitle],
			Summary: f[fieldSummary],
			Body:    f[fieldBody],
			Tags:    f[fieldTags],
		}, nil
	case core.ContentTypeSavedImage:
		return &SavedImage{
			ID:      record.DocID,
			Prompt:  f[fieldPrompt],
			Style:   f[fieldStyle],
			Caption: f[fieldCaption],
		}, nil
	case core.ContentTypeAdCampaign:
		return &AdCampaign{
			ID:        record.DocID,
			Name:      f[fieldName],
			Objective: f[fieldObjective],
			Copy:      f[fieldCopy],
			Platform:  f[fieldPlatform],
			Audience:  f[fieldAudience],
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownContentType, record.Type)
}

// ToRecord builds the storage envelope for a typed Source. The inverse
// of FromRecord; used when seeding or importing content.
func ToRecord(userID string, src Source) *core.ContentRecord {
	record := &core.ContentRecord{
		UserID: userID,
		Type:   src.Type(),
		DocID:  src.DocID(),
		Fields: make(map[string]string),
	}

	switch s := src.(type) {
	case *BrandProfile:
		putFields(record.Fields, map[string]string{
			fieldName:           s.Name,
			fieldDescription:    s.Description,
			fieldIndustry:       s.Industry,
			fieldTargetAudience: s.TargetAudience,
			fieldVoice:          s.Voice,
			fieldValues:         s.Values,
			fieldUSPs:           s.USPs,
		})
	case *SocialPost:
		putFields(record.Fields, map[string]string{
			fieldPlatform: s.Platform,
			fieldCaption:  s.Caption,
			fieldHashtags: s.Hashtags,
			fieldTone:     s.Tone,
		})
		record.Engagement = s.Engagement
	case *BlogPost:
		putFields(record.Fields, map[string]string{
			fieldTitle:   s.Title,
			fieldSummary: s.Summary,
			fieldBody:    s.Body,
			fieldTags:    s.Tags,
		})
	case *SavedImage:
		putFields(record.Fields, map[string]string{
			fieldPrompt:  s.Prompt,
			fieldStyle:   s.Style,
			fieldCaption: s.Caption,
		})
	case *AdCampaign:
		putFields(record.Fields, map[string]string{
			fieldName:      s.Name,
			fieldObjective: s.Objective,
			fieldCopy:      s.Copy,
			fieldPlatform:  s.Platform,
			fieldAudience:  s.Audience,
		})
	}
	return record
}

// putFields copies non-empty values into dst.
func putFields(dst, src map[string]string) {
	for k, v := range src {
		if v != "" {
			dst[k] = v
		}
	}
}
