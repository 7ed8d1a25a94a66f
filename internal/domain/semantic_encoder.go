package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// VectorizePose generates a semantic vector for one dataset pose.
	VectorizePose(ctx context.Context, model string, pose PoseRecord) (EmbeddingVector, error)
	// VectorizeQuery generates a semantic vector for one plan query.
	VectorizeQuery(ctx context.Context, model, query string) (EmbeddingVector, error)
}
