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


package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/jobs"
	"github.com/brandloom/brandrag/storage"
	"github.com/labstack/echo/v4"
)

// jobView is the JSON shape of a vectorization job. CompletedAt is
// emitted only for terminal jobs; the persisted zero time does not
// survive serialization round trips reliably enough to lean on IsZero.
type jobView struct {
	ID             string  `json:"id"`
	Scope          string  `json:"scope"`
	Status         string  `json:"status"`
	TotalItems     int64   `json:"totalItems"`
	ProcessedItems int64   `json:"processedItems"`
	FailedItems    int64   `json:"failedItems"`
	SkippedItems   int64   `json:"skippedItems"`
	Progress       float64 `json:"progress"`
	StartedAt      string  `json:"startedAt"`
	CompletedAt    string  `json:"completedAt,omitempty"`
	CreatedBy      string  `json:"createdBy,omitempty"`
	CancelledBy    string  `json:"cancelledBy,omitempty"`
	Error          string  `json:"error,omitempty"`
	UserID         string  `json:"userId,omitempty"`
	ContentType    string  `json:"contentType,omitempty"`
}

func viewOf(job *core.VectorizationJob) jobView {
	v := jobView{
		ID:             job.ID,
		Scope:          string(job.Scope),
		Status:         string(job.Status),
		TotalItems:     job.TotalItems,
		ProcessedItems: job.ProcessedItems,
		FailedItems:    job.FailedItems,
		SkippedItems:   job.SkippedItems,
		Progress:       job.Progress,
		StartedAt:      job.StartedAt.UTC().Format(time.RFC3339),
		CreatedBy:      job.CreatedBy,
		CancelledBy:    job.CancelledBy,
		Error:          job.Error,
		UserID:         job.Details.UserID,
		ContentType:    string(job.Details.ContentType),
	}
	if job.Terminal() {
		v.CompletedAt = job.CompletedAt.UTC().Format(time.RFC3339)
	}
	return v
}

// jobActionRequest is the POST /jobs body. Action "start" creates a
// job; "pause", "resume", and "cancel" control an existing one.
type jobActionRequest struct {
	Action      string `json:"action"`
	Scope       string `json:"scope,omitempty"`
	UserID      string `json:"userId,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	JobID       string `json:"jobId,omitempty"`
	Actor       string `json:"actor,omitempty"`
}

func (s *Server) handleListJobs(c echo.Context) error {
	// Only vectorization jobs exist today; the type filter keeps the
	// route shape stable if other job families are added.
	if t := c.QueryParam("type"); t != "" && t != "vectorization" {
		return c.JSON(http.StatusOK, []jobView{})
	}

	list, err := s.orchestrator.ListJobs(c.Request().Context())
	if err != nil {
		return s.mapError(err)
	}

	views := make([]jobView, len(list))
	for i, job := range list {
		views[i] = viewOf(job)
	}
	return c.JSON(http.StatusOK, views)
}

func (s *Server) handleGetJob(c echo.Context) error {
	job, err := s.orchestrator.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.mapError(err)
	}
	return c.JSON(http.StatusOK, viewOf(job))
}

func (s *Server) handleJobAction(c echo.Context) error {
	var req jobActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	ctx := c.Request().Context()

	switch req.Action {
	case "start":
		scope := core.JobScope(req.Scope)
		if !scope.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown scope")
		}
		details := core.JobDetails{
			UserID:      req.UserID,
			UserEmail:   req.UserEmail,
			BrandName:   req.BrandName,
			ContentType: core.ContentType(req.ContentType),
		}
		job, err := s.orchestrator.Start(ctx, scope, details, req.Actor)
		if err != nil {
			return s.mapError(err)
		}
		return c.JSON(http.StatusAccepted, map[string]string{"jobId": job.ID})

	case "pause", "resume", "cancel":
		if req.JobID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "jobId is required")
		}
		job, err := s.orchestrator.Control(ctx, req.JobID, jobs.Action(req.Action), req.Actor)
		if err != nil {
			return s.mapError(err)
		}
		return c.JSON(http.StatusOK, viewOf(job))
	}

	return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
}

// mapError translates domain errors into HTTP status codes.
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, jobs.ErrJobNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, jobs.ErrJobTerminal),
		errors.Is(err, jobs.ErrInvalidTransition),
		errors.Is(err, storage.ErrScopeLocked):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, core.ErrInvalidJob),
		errors.Is(err, core.ErrInvalidJobScope),
		errors.Is(err, jobs.ErrUnknownAction):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.logger.Error("admin API internal error", "err", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
