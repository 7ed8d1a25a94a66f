// Package openai implements domain.SemanticEncoder on top of the OpenAI
// embeddings API, or any server that speaks its wire format.
package openai

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/common"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	goopenai "github.com/sashabaranov/go-openai"
)

// ProviderName selects this adapter through EMBEDDING_PROVIDER.
const ProviderName = "openai"

// EmbeddingsCreator is the subset of the go-openai client used by Encoder.
type EmbeddingsCreator interface {
	CreateEmbeddings(ctx context.Context, conv goopenai.EmbeddingRequestConverter) (goopenai.EmbeddingResponse, error)
}

var _ domain.SemanticEncoder = Encoder{}

// Encoder implements domain.SemanticEncoder with the OpenAI embeddings endpoint.
type Encoder struct {
	client EmbeddingsCreator
}

// NewEncoder creates a new Encoder.
func NewEncoder(client EmbeddingsCreator) Encoder {
	return Encoder{client: client}
}

// NewClient builds a go-openai client. An empty baseURL keeps the public API endpoint.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *goopenai.Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return goopenai.NewClientWithConfig(cfg)
}

// VectorizePose implements domain.SemanticEncoder.
func (e Encoder) VectorizePose(ctx context.Context, model string, pose domain.PoseRecord) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, pose.IndexingText())
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

// VectorizeQuery implements domain.SemanticEncoder.
func (e Encoder) VectorizeQuery(ctx context.Context, model, query string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vec, err := e.embed(spanCtx, model, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	return vec, nil
}

func (e Encoder) embed(ctx context.Context, model, input string) (domain.EmbeddingVector, error) {
	resp, err := e.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequestStrings{
		Input: []string{input},
		Model: goopenai.EmbeddingModel(model),
	})
	if err != nil {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 {
		return domain.EmbeddingVector{}, errors.New("no embedding data in response")
	}
	return domain.EmbeddingVector{
		Vector:      common.Float32To64(resp.Data[0].Embedding),
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}

// InitEncoder registers the OpenAI encoder when it is the selected provider.
type InitEncoder struct {
	Logger     *log.Logger  `resolve:""`
	HttpClient *http.Client `resolve:""`
	APIKey     string       `config:"OPENAI_API_KEY" default:"-"`
	BaseURL    string       `config:"OPENAI_BASE_URL" default:"-"`
	Provider   string       `config:"EMBEDDING_PROVIDER" default:"modelrunner"`
}

// Initialize registers domain.SemanticEncoder.
func (i InitEncoder) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	if i.APIKey == "-" || i.APIKey == "" {
		return ctx, errors.New("OPENAI_API_KEY is required when EMBEDDING_PROVIDER=openai")
	}
	baseURL := i.BaseURL
	if baseURL == "-" {
		baseURL = ""
	}
	i.Logger.Print("SemanticEncoder: using OpenAI embeddings")
	depend.Register[domain.SemanticEncoder](NewEncoder(NewClient(i.APIKey, baseURL, i.HttpClient)))
	return ctx, nil
}
