package modelrunner

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ProviderName selects this adapter through EMBEDDING_PROVIDER.
const ProviderName = "modelrunner"

var _ domain.SemanticEncoder = Encoder{}

// Encoder adapts DRMAPIClient to domain.SemanticEncoder.
type Encoder struct {
	client           DRMAPIClient
	embeddingFactory EmbeddingFactory
}

// NewEncoder creates a new encoder.
func NewEncoder(client DRMAPIClient) Encoder {
	return Encoder{client: client, embeddingFactory: embeddingFactory{}}
}

// VectorizePose implements domain.SemanticEncoder.
func (e Encoder) VectorizePose(ctx context.Context, model string, pose domain.PoseRecord) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := e.embeddingFactory.Get(model).GenerateIndexingPrompt(pose)
	vec, err := e.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e Encoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	prompt := e.embeddingFactory.Get(model).GenerateSearchPrompt(query)
	vec, err := e.embed(spanCtx, model, prompt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e Encoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	req := EmbeddingsRequest{Model: model, Input: input}
	resp, err := e.client.Embeddings(ctx, req)
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// InitEncoder registers the Model Runner encoder when it is the selected provider.
type InitEncoder struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"EMBEDDING_MODEL_HOST" default:"http://localhost:12434"`
	Provider   string       `config:"EMBEDDING_PROVIDER" default:"modelrunner"`
}

// Initialize registers domain.SemanticEncoder.
func (i InitEncoder) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	i.Logger.Printf("SemanticEncoder: using model runner at %s", i.ModelHost)
	depend.Register[domain.SemanticEncoder](NewEncoder(NewDRMAPIClient(i.ModelHost, "", i.HttpClient)))
	return ctx, nil
}
