package core

import (
	"errors"
	"testing"
)

func validVector() *ContentVector {
	return &ContentVector{
		UserID:      "u1",
		ContentType: ContentTypeSocialMedia,
		ContentID:   "social_doc1",
		TextContent: "Caption: hello",
		Metadata: VectorMetadata{
			Performance: 0.6,
		},
	}
}

func TestValidateContentVector(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ContentVector)
		wantErr error
	}{
		{
			name:    "valid vector",
			mutate:  func(v *ContentVector) {},
			wantErr: nil,
		},
		{
			name:    "empty user id",
			mutate:  func(v *ContentVector) { v.UserID = "" },
			wantErr: ErrEmptyUserID,
		},
		{
			name:    "empty content id",
			mutate:  func(v *ContentVector) { v.ContentID = "" },
			wantErr: ErrEmptyContentID,
		},
		{
			name:    "unknown content type",
			mutate:  func(v *ContentVector) { v.ContentType = "podcast" },
			wantErr: ErrInvalidContentType,
		},
		{
			name:    "empty text",
			mutate:  func(v *ContentVector) { v.TextContent = "" },
			wantErr: ErrEmptyContent,
		},
		{
			name:    "performance above one",
			mutate:  func(v *ContentVector) { v.Metadata.Performance = 1.5 },
			wantErr: ErrInvalidPerformance,
		},
		{
			name:    "negative performance",
			mutate:  func(v *ContentVector) { v.Metadata.Performance = -0.1 },
			wantErr: ErrInvalidPerformance,
		},
		{
			name:    "negative engagement",
			mutate:  func(v *ContentVector) { v.Metadata.Engagement = -1 },
			wantErr: ErrInvalidEngagement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVector()
			tt.mutate(v)
			err := ValidateContentVector(v)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, ErrInvalidContentVector) {
				t.Fatalf("expected wrap of ErrInvalidContentVector, got %v", err)
			}
		})
	}

	t.Run("nil vector", func(t *testing.T) {
		if !errors.Is(ValidateContentVector(nil), ErrInvalidContentVector) {
			t.Fatal("expected ErrInvalidContentVector for nil")
		}
	})
}

func TestValidateJob(t *testing.T) {
	valid := func() *VectorizationJob {
		return &VectorizationJob{
			ID:     "job-1",
			Scope:  JobScopeAllUsers,
			Status: JobStatusPending,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*VectorizationJob)
		wantErr error
	}{
		{
			name:    "valid job",
			mutate:  func(j *VectorizationJob) {},
			wantErr: nil,
		},
		{
			name:    "empty id",
			mutate:  func(j *VectorizationJob) { j.ID = "" },
			wantErr: ErrInvalidJob,
		},
		{
			name:    "unknown status",
			mutate:  func(j *VectorizationJob) { j.Status = "stalled" },
			wantErr: ErrInvalidJobStatus,
		},
		{
			name:    "unknown scope",
			mutate:  func(j *VectorizationJob) { j.Scope = "galaxy" },
			wantErr: ErrInvalidJobScope,
		},
		{
			name:    "negative counter",
			mutate:  func(j *VectorizationJob) { j.ProcessedItems = -1 },
			wantErr: ErrInvalidJob,
		},
		{
			name: "single user scope without user",
			mutate: func(j *VectorizationJob) {
				j.Scope = JobScopeSingleUser
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "content type scope without type",
			mutate: func(j *VectorizationJob) {
				j.Scope = JobScopeContentType
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "handled beyond estimated total is allowed",
			mutate: func(j *VectorizationJob) {
				j.TotalItems = 2
				j.ProcessedItems = 5
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := valid()
			tt.mutate(j)
			err := ValidateJob(j)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
