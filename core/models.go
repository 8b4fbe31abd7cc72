package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ContentType identifies one of the indexable domain entities.
type ContentType string

const (
	ContentTypeBrandProfile ContentType = "brand_profile"
	ContentTypeSocialMedia  ContentType = "social_media"
	ContentTypeBlogPost     ContentType = "blog_post"
	ContentTypeSavedImage   ContentType = "saved_image"
	ContentTypeAdCampaign   ContentType = "ad_campaign"
)

// ContentTypeOrder is the fixed sequence in which a user's content is
// vectorized. Brand profiles come first because they are foundational
// context for everything else, and a stable order makes partial job
// progress reproducible.
var ContentTypeOrder = []ContentType{
	ContentTypeBrandProfile,
	ContentTypeSocialMedia,
	ContentTypeBlogPost,
	ContentTypeSavedImage,
	ContentTypeAdCampaign,
}

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeBrandProfile, ContentTypeSocialMedia, ContentTypeBlogPost,
		ContentTypeSavedImage, ContentTypeAdCampaign:
		return true
	}
	return false
}

// ContentHash is a 64-bit digest of normalized text content.
// It is used to detect content changes between vectorization runs.
type ContentHash uint64

// HashContent computes a deterministic ContentHash from text using BLAKE2b.
// Identical text always produces an identical hash.
func HashContent(text string) ContentHash {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ContentHash(binary.LittleEndian.Uint64(sum))
}

// VectorMetadata carries the scoring and filtering attributes stored
// alongside an embedding.
type VectorMetadata struct {
	Industry    string
	Style       string
	Platform    string
	Tone        string
	Performance float64 // [0,1], prior quality of this content
	Engagement  float64 // >= 0, raw engagement signal
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int32 // metadata schema version
}

// ContentVector represents one indexed piece of content.
// (UserID, ContentID) is unique; re-indexing is an upsert by ContentID.
type ContentVector struct {
	UserID           string
	ContentType      ContentType
	ContentID        string // deterministic, e.g. "social_<docID>"
	SourceCollection string
	SourceDocID      string
	TextContent      string
	TextHash         ContentHash
	Embedding        []float32
	Metadata         VectorMetadata
}

// ScoredVector pairs a stored vector with its query similarity.
type ScoredVector struct {
	Vector     *ContentVector
	Similarity float32
}

// RetrievalContext is the ephemeral result of adaptive retrieval.
// It is computed fresh per generation request and never persisted.
type RetrievalContext struct {
	RelevantContent []*ContentVector
	Confidence      float64 // [0,1]; 0 whenever RelevantContent is empty
}

// ContentRecord is the storage envelope for one raw content document.
// Fields holds the per-type attributes; the content package knows how
// to turn a record back into its typed source.
type ContentRecord struct {
	UserID     string
	Type       ContentType
	DocID      string
	Fields     map[string]string
	Engagement float64
	CreatedAt  time.Time
}

// JobStatus is the persisted state of a vectorization job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusPaused    JobStatus = "paused"
)

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusRunning, JobStatusCompleted, JobStatusFailed, JobStatusPaused:
		return true
	}
	return false
}

// Terminal reports whether s is a terminal status. No job transitions
// out of a terminal status.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobScope is the breadth of a vectorization job.
type JobScope string

const (
	JobScopeAllUsers    JobScope = "all_users"
	JobScopeSingleUser  JobScope = "single_user"
	JobScopeContentType JobScope = "content_type"
)

// Valid reports whether s is a known job scope.
func (s JobScope) Valid() bool {
	switch s {
	case JobScopeAllUsers, JobScopeSingleUser, JobScopeContentType:
		return true
	}
	return false
}

// JobDetails narrows a job's scope to a concrete target.
type JobDetails struct {
	UserID      string
	UserEmail   string
	BrandName   string
	ContentType ContentType
}

// VectorizationJob represents one bulk indexing run. The persisted job
// record is the single source of truth for the run: the background
// worker polls it for pause/cancel and writes progress back to it.
type VectorizationJob struct {
	ID             string
	Scope          JobScope
	Status         JobStatus
	TotalItems     int64
	ProcessedItems int64
	FailedItems    int64
	SkippedItems   int64
	Progress       float64 // percent, [0,100]
	StartedAt      time.Time
	CompletedAt    time.Time // zero until the job reaches a terminal status
	CreatedBy      string
	CancelledBy    string
	Error          string
	Details        JobDetails
	Version        uint64 // optimistic-concurrency token, bumped on every write
}

// Terminal reports whether the job has reached a terminal status.
func (j *VectorizationJob) Terminal() bool {
	return j.Status.Terminal()
}

// Handled returns the number of items accounted for so far:
// processed + failed + skipped.
func (j *VectorizationJob) Handled() int64 {
	return j.ProcessedItems + j.FailedItems + j.SkippedItems
}

// RecomputeProgress derives Progress from the counters. Progress is
// computed over handled items so that a run which skips everything
// (an already-indexed corpus) still reaches 100 on completion.
func (j *VectorizationJob) RecomputeProgress() {
	if j.TotalItems <= 0 {
		j.Progress = 0
		return
	}
	p := float64(j.Handled()) / float64(j.TotalItems) * 100.0
	if p > 100 {
		p = 100
	}
	j.Progress = p
}

// ScopeKey returns the mutual-exclusion key for the job's scope. Two
// jobs with the same scope key may not run concurrently.
func (j *VectorizationJob) ScopeKey() string {
	switch j.Scope {
	case JobScopeSingleUser:
		return string(JobScopeSingleUser) + ":" + j.Details.UserID
	case JobScopeContentType:
		return string(JobScopeContentType) + ":" + string(j.Details.ContentType)
	default:
		return string(JobScopeAllUsers)
	}
}
