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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/brandloom/brandrag/jobs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the admin API configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8094".
	Addr string

	// AdminToken is the bearer token required on every admin route.
	AdminToken string
}

// Server exposes the job orchestrator over an HTTP admin API.
type Server struct {
	echo         *echo.Echo
	orchestrator *jobs.Orchestrator
	config       *Config
	logger       *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates the admin API server.
func NewServer(orchestrator *jobs.Orchestrator, config *Config, opts ...Option) (*Server, error) {
	if orchestrator == nil {
		return nil, ErrOrchestratorRequired
	}
	if config == nil || config.AdminToken == "" {
		return nil, ErrAdminTokenRequired
	}

	s := &Server{
		orchestrator: orchestrator,
		config:       config,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	admin := e.Group("/api/v1/admin", s.requireAdminToken)
	admin.GET("/jobs", s.handleListJobs)
	admin.GET("/jobs/:id", s.handleGetJob)
	admin.POST("/jobs", s.handleJobAction)

	s.echo = e
	return s, nil
}

// Handler returns the underlying HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on the configured address. Blocks until the
// server stops.
func (s *Server) Start() error {
	s.logger.Info("admin API listening", "addr", s.config.Addr)
	err := s.echo.Start(s.config.Addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requireAdminToken enforces the bearer token on admin routes. A
// missing token is 401; a wrong one is 403.
func (s *Server) requireAdminToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		if token != s.config.AdminToken {
			return echo.NewHTTPError(http.StatusForbidden, "invalid admin token")
		}
		return next(c)
	}
}
