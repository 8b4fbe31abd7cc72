package brandrag

import (
	"context"
	"testing"
	"time"

	"github.com/brandloom/brandrag/ai/mock"
	"github.com/brandloom/brandrag/content"
	"github.com/brandloom/brandrag/core"
	"github.com/brandloom/brandrag/retrieval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine("", WithEmbedder(mock.NewMockEmbedder()))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, engine.Close()) })
	return engine
}

func seedContent(t *testing.T, engine *Engine, userID string, sources ...content.Source) {
	t.Helper()
	ctx := context.Background()
	for _, src := range sources {
		record := content.ToRecord(userID, src)
		record.CreatedAt = time.Now().UTC()
		require.NoError(t, engine.ContentRepository().PutContent(ctx, record))
	}
}

func TestEngineEndToEnd(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	seedContent(t, engine, "u1",
		&content.BrandProfile{
			ID:          "b1",
			Name:        "Fern & Forage",
			Description: "Botanical skincare from wild-harvested ingredients",
			Industry:    "skincare",
			Voice:       "warm, grounded",
		},
		&content.SocialPost{
			ID:       "p1",
			Platform: "instagram",
			Caption:  "Moss doesn't rush. Neither do we.",
			Tone:     "earthy",
		},
		&content.SocialPost{
			ID:       "p2",
			Platform: "instagram",
			Caption:  "The forest made it first. We bottled it.",
			Tone:     "earthy",
		},
	)

	// Vectorize everything through the orchestrator
	job, err := engine.Orchestrator().Start(ctx, core.JobScopeSingleUser, core.JobDetails{UserID: "u1"}, "test")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := engine.Orchestrator().GetJob(ctx, job.ID)
		return err == nil && got.Terminal()
	}, 5*time.Second, 5*time.Millisecond)

	final, err := engine.Orchestrator().GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, core.JobStatusCompleted, final.Status)
	assert.EqualValues(t, 3, final.ProcessedItems)

	// Retrieval over the indexed content
	rctx := engine.RAGContext(ctx, "u1", retrieval.Signals{
		BrandDescription: "botanical skincare",
		Platform:         "instagram",
	})
	require.NotNil(t, rctx)
	assert.Len(t, rctx.RelevantContent, 3)
	assert.GreaterOrEqual(t, rctx.Confidence, 0.0)
	assert.LessOrEqual(t, rctx.Confidence, 1.0)

	// Insights surface the recurring tone when confidence allows
	if rctx.Confidence >= 0.5 {
		assert.Contains(t, engine.RAGInsights(rctx), "earthy")
	}

	// Prompt enhancement keeps the base prompt intact
	base := "Write an instagram caption for our new balm."
	enhanced := engine.EnhancePrompt(base, rctx)
	assert.Contains(t, enhanced, base)
}

func TestEngineEmptyUser(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	rctx := engine.RAGContext(ctx, "nobody", retrieval.Signals{BrandDescription: "anything"})
	require.NotNil(t, rctx)
	assert.Empty(t, rctx.RelevantContent)
	assert.Zero(t, rctx.Confidence)

	base := "Write a caption."
	assert.Equal(t, base, engine.EnhancePrompt(base, rctx))
	assert.Empty(t, engine.RAGInsights(rctx))
}

func TestEngineDirectStore(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	err := engine.VectorStore().StoreContentVector(ctx, "u1",
		&content.BlogPost{ID: "a1", Title: "Slow rituals", Body: "On patience and skincare."})
	require.NoError(t, err)

	ids, err := engine.VectorStore().ExistingContentIDs(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, ids, "blog_a1")
}
