package modelrunner

import (
	"fmt"
	"strings"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
)

// EmbeddingGenerator defines the interface for generating embedding prompts for poses and plan queries.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the prompt used for generating embeddings for a pose.
	GenerateIndexingPrompt(pose domain.PoseRecord) string
	// GenerateSearchPrompt creates the prompt used for generating embeddings for a plan query.
	GenerateSearchPrompt(searchInput string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct {
}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "embeddinggemma") {
		return gemmaEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding implements the EmbeddingGenerator interface for the Gemma embedding model.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateIndexingPrompt(pose domain.PoseRecord) string {
	return fmt.Sprintf("title: %s | text: %s", pose.Pose, pose.IndexingText())
}

func (a gemmaEmbedding) GenerateSearchPrompt(searchInput string) string {
	return fmt.Sprintf("task: search result | query: %s", searchInput)
}

// defaultEmbeddingGenerator embeds the raw text, which is what sentence
// transformer models such as all-MiniLM expect.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(pose domain.PoseRecord) string {
	return pose.IndexingText()
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(searchInput string) string {
	return searchInput
}
