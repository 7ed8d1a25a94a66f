package app

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/localembed"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/modelrunner"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/adapters/outbound/openai"
)

// EmbeddingProviders lists the accepted EMBEDDING_PROVIDER values.
var EmbeddingProviders = []string{modelrunner.ProviderName, openai.ProviderName, localembed.ProviderName}

// InitEmbeddingProvider fails startup when EMBEDDING_PROVIDER names no known
// encoder. Each encoder initializer registers itself only when selected.
type InitEmbeddingProvider struct {
	Logger   *log.Logger `resolve:""`
	Provider string      `config:"EMBEDDING_PROVIDER" default:"modelrunner"`
	Model    string      `config:"EMBEDDING_MODEL" default:"ai/all-minilm"`
}

// Initialize validates the provider selection.
func (i InitEmbeddingProvider) Initialize(ctx context.Context) (context.Context, error) {
	if !slices.Contains(EmbeddingProviders, i.Provider) {
		return ctx, fmt.Errorf("unknown embedding provider %q (expected one of %v)", i.Provider, EmbeddingProviders)
	}
	i.Logger.Printf("SemanticEncoder: provider=%s model=%s", i.Provider, i.Model)
	return ctx, nil
}
