package corpus

import (
	"context"
	"fmt"
	"log"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/sync/errgroup"
)

// Build embeds every pose with encoder and returns a populated index.
// Up to concurrency embedding calls run at once; vectors are stored by row
// position, so the index order always matches the dataset order.
func Build(ctx context.Context, encoder domain.SemanticEncoder, model string, poses []domain.PoseRecord, concurrency int) (*Index, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(poses) == 0 {
		err := domain.NewDatasetErr("dataset contains no poses")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if concurrency < 1 {
		concurrency = 1
	}

	embeddings := make([]domain.EmbeddingVector, len(poses))

	g, gCtx := errgroup.WithContext(spanCtx)
	g.SetLimit(concurrency)
	for i, pose := range poses {
		g.Go(func() error {
			vec, err := encoder.VectorizePose(gCtx, model, pose)
			if err != nil {
				return domain.NewEmbeddingErr(fmt.Sprintf("failed to embed pose %q (row %d)", pose.Pose, i), err)
			}
			embeddings[i] = vec
			return nil
		})
	}
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	ix := NewIndex(0)
	for i, pose := range poses {
		if err := ix.Add(embeddings[i].Vector, pose); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		ix.totalTokens += embeddings[i].TotalTokens
	}
	return ix, nil
}

// InitPoseIndex loads the dataset, builds the index and registers it as
// domain.PoseIndex.
type InitPoseIndex struct {
	Logger         *log.Logger            `resolve:""`
	Dataset        domain.PoseDataset     `resolve:""`
	Encoder        domain.SemanticEncoder `resolve:""`
	EmbeddingModel string                 `config:"EMBEDDING_MODEL" default:"ai/all-minilm"`
	Concurrency    int                    `config:"EMBEDDING_CONCURRENCY" default:"4"`
}

// Initialize builds the pose index. Any dataset or embedding failure stops
// the application.
func (i InitPoseIndex) Initialize(ctx context.Context) (context.Context, error) {
	poses, err := i.Dataset.LoadPoses(ctx)
	if err != nil {
		return ctx, fmt.Errorf("failed to load pose dataset: %w", err)
	}

	ix, err := Build(ctx, i.Encoder, i.EmbeddingModel, poses, i.Concurrency)
	if err != nil {
		return ctx, fmt.Errorf("failed to build pose index: %w", err)
	}

	i.Logger.Printf("PoseIndex: indexed %d poses (dimension=%d, tokens=%d)", ix.Len(), ix.Dimension(), ix.TotalTokens())

	depend.Register[domain.PoseIndex](ix)
	return ctx, nil
}
