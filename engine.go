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


package brandrag

import (
	"context"
	"log/slog"

	"github.com/brandloom/brandrag/ai"
	"github.com/brandloom/brandrag/ai/openai"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/jobs"
	"github.com/brandloom/brandrag/prompt"
	"github.com/brandloom/brandrag/retrieval"
	"github.com/brandloom/brandrag/storage"
	"github.com/brandloom/brandrag/storage/badger"
	"github.com/brandloom/brandrag/vector"
)

// Engine wires the full RAG stack: storage, embedding, vector store,
// adaptive retrieval, prompt enhancement, and the job orchestrator.
type Engine struct {
	backend      *badger.Backend
	vectorRepo   storage.VectorRepository
	jobRepo      storage.JobRepository
	contentRepo  storage.ContentRepository
	embedder     ai.Embedder
	store        *vector.Store
	retriever    *retrieval.Retriever
	enhancer     *prompt.Enhancer
	orchestrator *jobs.Orchestrator
	logger       *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig        *ai.Config
	retrievalConfig *retrieval.Config
	promptConfig    *prompt.Config
	jobsConfig      *jobs.Config
	embedder        ai.Embedder
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(cfg *ai.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithRetrievalConfig sets the ranking and confidence configuration.
func WithRetrievalConfig(cfg *retrieval.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.retrievalConfig = cfg
		}
	}
}

// WithPromptConfig sets the prompt augmentation bounds.
func WithPromptConfig(cfg *prompt.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.promptConfig = cfg
		}
	}
}

// WithJobsConfig sets the orchestrator tuning parameters.
func WithJobsConfig(cfg *jobs.Config) EngineOption {
	return func(o *engineOptions) {
		if cfg != nil {
			o.jobsConfig = cfg
		}
	}
}

// WithEmbedder injects a pre-built embedder, bypassing the OpenAI
// provider. Tests use this with the mock embedder.
func WithEmbedder(embedder ai.Embedder) EngineOption {
	return func(o *engineOptions) {
		o.embedder = embedder
	}
}

// NewEngine opens the storage backend at filePath and wires the stack.
// An empty filePath opens an in-memory backend.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig:        ai.DefaultConfig(),
		retrievalConfig: retrieval.DefaultConfig(),
		promptConfig:    prompt.DefaultConfig(),
		jobsConfig:      jobs.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	vectorRepo := badger.NewVectorRepository(backend)
	jobRepo := badger.NewJobRepository(backend)
	contentRepo := badger.NewContentRepository(backend)

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	store, err := vector.NewStore(embedder, vectorRepo,
		vector.WithDimensions(options.aiConfig.EmbeddingDimensions))
	if err != nil {
		backend.Close()
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(store, options.retrievalConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	orchestrator, err := jobs.NewOrchestrator(jobRepo, contentRepo, store,
		jobs.WithConfig(options.jobsConfig))
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:      backend,
		vectorRepo:   vectorRepo,
		jobRepo:      jobRepo,
		contentRepo:  contentRepo,
		embedder:     embedder,
		store:        store,
		retriever:    retriever,
		enhancer:     prompt.NewEnhancer(options.promptConfig),
		orchestrator: orchestrator,
		logger:       slog.Default(),
	}, nil
}

// Close tears the stack down in reverse construction order.
func (e *Engine) Close() error {
	e.orchestrator.Release()

	if err := e.contentRepo.Close(); err != nil {
		e.logger.Error("error closing content repository", "err", err)
		return err
	}
	if err := e.jobRepo.Close(); err != nil {
		e.logger.Error("error closing job repository", "err", err)
		return err
	}
	if err := e.vectorRepo.Close(); err != nil {
		e.logger.Error("error closing vector repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// VectorStore returns the content vector store.
func (e *Engine) VectorStore() *vector.Store {
	return e.store
}

// ContentRepository returns the raw content repository.
func (e *Engine) ContentRepository() storage.ContentRepository {
	return e.contentRepo
}

// Orchestrator returns the batch job orchestrator.
func (e *Engine) Orchestrator() *jobs.Orchestrator {
	return e.orchestrator
}

// RAGContext retrieves the adaptive retrieval context for a generation
// request. Best-effort: never returns an error, only an empty context.
func (e *Engine) RAGContext(ctx context.Context, userID string, sig retrieval.Signals) *core.RetrievalContext {
	return e.retriever.Context(ctx, userID, sig)
}

// RAGInsights derives a human-readable pattern summary from a
// retrieval context, or "" when the evidence is insufficient.
func (e *Engine) RAGInsights(rctx *core.RetrievalContext) string {
	return e.retriever.Insights(rctx)
}

// EnhancePrompt augments a generation prompt with retrieved brand
// context. A nil or low-confidence context passes the prompt through
// unchanged.
func (e *Engine) EnhancePrompt(basePrompt string, rctx *core.RetrievalContext) string {
	return e.enhancer.Enhance(basePrompt, rctx)
}
