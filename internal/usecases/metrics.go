package usecases

import (
	"context"
	"strconv"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	EmbeddingTokensUsed metric.Int64Counter
	PlansGenerated      metric.Int64Counter
	PlanErrors          metric.Int64Counter
	PlanMinutes         metric.Float64Histogram
)

func init() {
	var err error
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total tokens consumed by query embeddings"),
	)
	if err != nil {
		panic(err)
	}

	PlansGenerated, err = meter.Int64Counter(
		"plans_generated_total",
		metric.WithDescription("Total yoga plans generated"),
	)
	if err != nil {
		panic(err)
	}

	PlanErrors, err = meter.Int64Counter(
		"plan_errors_total",
		metric.WithDescription("Total failed plan generations by error kind"),
	)
	if err != nil {
		panic(err)
	}

	PlanMinutes, err = meter.Float64Histogram(
		"plan_minutes",
		metric.WithDescription("Minutes filled by generated plans"),
		metric.WithUnit("min"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingTokens records the number of tokens used to embed a query.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordPlanGenerated records a generated plan and how much of the request it filled.
func RecordPlanGenerated(ctx context.Context, plan domain.Plan) {
	attrs := metric.WithAttributes(
		attribute.String("satisfied", strconv.FormatBool(plan.Satisfied)),
	)
	PlansGenerated.Add(ctx, 1, attrs)
	PlanMinutes.Record(ctx, plan.UsedMinutes, attrs)
}

// RecordPlanError records a failed plan generation.
func RecordPlanError(ctx context.Context, err error) {
	PlanErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", string(domain.KindOf(err))),
	))
}
