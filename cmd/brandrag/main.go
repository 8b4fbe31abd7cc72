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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brandloom/brandrag"
	"github.com/brandloom/brandrag/ai"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/jobs"
	"github.com/brandloom/brandrag/server"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "brandrag",
		Usage: "Content vectorization and adaptive retrieval engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the admin API server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Admin API listen address",
						Value: ":8094",
					},
					&cli.StringFlag{
						Name:     "admin-token",
						Usage:    "Bearer token required on admin routes",
						Required: true,
						EnvVars:  []string{"BRANDRAG_ADMIN_TOKEN"},
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "embedding-dims",
						Usage: "Expected embedding vector length",
						Value: 384,
					},
				},
			},
			{
				Name:   "vectorize",
				Usage:  "Run one vectorization job to completion and exit",
				Action: vectorizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "scope",
						Usage: "Job scope: all_users, single_user, or content_type",
						Value: "all_users",
					},
					&cli.StringFlag{
						Name:  "user",
						Usage: "User ID (required for single_user scope)",
					},
					&cli.StringFlag{
						Name:  "content-type",
						Usage: "Content type (required for content_type scope)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "embedding-dims",
						Usage: "Expected embedding vector length",
						Value: 384,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts per item",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openEngine(c *cli.Context) (*brandrag.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithEmbeddingDimensions(c.Int("embedding-dims")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	jobsConfig := jobs.DefaultConfig()
	if c.IsSet("max-retries") {
		jobsConfig.MaxRetries = c.Int("max-retries")
	}
	if c.IsSet("retry-delay") {
		jobsConfig.RetryBaseDelay = c.Duration("retry-delay")
	}

	return brandrag.NewEngine(c.String("db"),
		brandrag.WithAIConfig(aiConfig),
		brandrag.WithJobsConfig(jobsConfig),
	)
}

func serveCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	srv, err := server.NewServer(engine.Orchestrator(), &server.Config{
		Addr:       c.String("addr"),
		AdminToken: c.String("admin-token"),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func vectorizeCommand(c *cli.Context) error {
	ctx := context.Background()

	scope := core.JobScope(c.String("scope"))
	details := core.JobDetails{
		UserID:      c.String("user"),
		ContentType: core.ContentType(c.String("content-type")),
	}

	engine, err := openEngine(c)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	job, err := engine.Orchestrator().Start(ctx, scope, details, "cli")
	if err != nil {
		return fmt.Errorf("failed to start job: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Job %s started: %d items\n", job.ID, job.TotalItems)

	// Poll until the job reaches a terminal status
	for {
		time.Sleep(500 * time.Millisecond)

		job, err = engine.Orchestrator().GetJob(ctx, job.ID)
		if err != nil {
			return fmt.Errorf("failed to read job: %w", err)
		}

		fmt.Fprintf(os.Stderr, "\rProgress: %.1f%% (processed %d, failed %d, skipped %d)",
			job.Progress, job.ProcessedItems, job.FailedItems, job.SkippedItems)

		if job.Terminal() {
			fmt.Fprintln(os.Stderr)
			break
		}
	}

	if job.Status == core.JobStatusFailed {
		return fmt.Errorf("job failed: %s", job.Error)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
