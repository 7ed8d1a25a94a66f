package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/planner"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CandidateCount is the number of nearest poses considered for each plan.
const CandidateCount = 15

// PlanRequest holds the parameters for generating a plan.
type PlanRequest struct {
	// Duration is the requested session length in minutes.
	Duration  int
	Intensity string
	Muscles   []string
}

// QueryText returns the text embedded to find matching poses. Intensity only
// steers the semantic search; it is not used as a filter.
func (r PlanRequest) QueryText() string {
	return fmt.Sprintf("Intensity: %s. Target muscles: %s.", r.Intensity, strings.Join(r.Muscles, ", "))
}

// GeneratePlan defines the interface for the GeneratePlan use case.
type GeneratePlan interface {
	Execute(ctx context.Context, req PlanRequest) (domain.Plan, error)
}

// GeneratePlanImpl is the implementation of the GeneratePlan use case.
type GeneratePlanImpl struct {
	encoder        domain.SemanticEncoder
	index          domain.PoseIndex
	embeddingModel string
}

// NewGeneratePlanImpl creates a new instance of GeneratePlanImpl.
func NewGeneratePlanImpl(encoder domain.SemanticEncoder, index domain.PoseIndex, embeddingModel string) GeneratePlanImpl {
	return GeneratePlanImpl{
		encoder:        encoder,
		index:          index,
		embeddingModel: embeddingModel,
	}
}

// Execute retrieves the poses closest to the request and fits them into the
// requested duration. A plan that cannot fill the duration is returned with
// Satisfied set to false; it is not an error.
func (gp GeneratePlanImpl) Execute(ctx context.Context, req PlanRequest) (domain.Plan, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	plan, err := gp.execute(spanCtx, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordPlanError(spanCtx, err)
		return domain.Plan{}, err
	}

	RecordPlanGenerated(spanCtx, plan)
	return plan, nil
}

func (gp GeneratePlanImpl) execute(ctx context.Context, req PlanRequest) (domain.Plan, error) {
	if req.Duration <= 0 {
		return domain.Plan{}, domain.NewValidationErr("duration must be a positive number of minutes")
	}

	vec, err := gp.encoder.VectorizeQuery(ctx, gp.embeddingModel, req.QueryText())
	if err != nil {
		return domain.Plan{}, domain.NewEmbeddingErr("failed to embed plan query", err)
	}
	RecordEmbeddingTokens(ctx, vec.TotalTokens)

	candidates, err := gp.index.Nearest(ctx, vec.Vector, CandidateCount)
	if err != nil {
		return domain.Plan{}, err
	}

	return planner.Build(candidates, float64(req.Duration))
}

// InitGeneratePlan initializes the GeneratePlan use case and registers it in the dependency container.
type InitGeneratePlan struct {
	Encoder        domain.SemanticEncoder `resolve:""`
	Index          domain.PoseIndex       `resolve:""`
	EmbeddingModel string                 `config:"EMBEDDING_MODEL" default:"ai/all-minilm"`
}

// Initialize initializes the GeneratePlanImpl use case and registers it in the dependency container.
func (igp InitGeneratePlan) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GeneratePlan](NewGeneratePlanImpl(igp.Encoder, igp.Index, igp.EmbeddingModel))
	return ctx, nil
}
