// Package localembed provides an in-process domain.SemanticEncoder that maps
// text to a fixed-size vector with signed feature hashing. It needs no model
// server, which makes it suitable for development and integration tests.
package localembed

import (
	"context"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ProviderName selects this adapter through EMBEDDING_PROVIDER.
const ProviderName = "local"

var _ domain.SemanticEncoder = Encoder{}

// Encoder hashes lowercased word unigrams and bigrams into a vector of a
// fixed dimension and L2-normalizes the result. Texts sharing words end up
// close to each other.
type Encoder struct {
	dim int
}

// NewEncoder creates an Encoder producing vectors of the given dimension.
func NewEncoder(dim int) (Encoder, error) {
	if dim <= 0 {
		return Encoder{}, fmt.Errorf("embedding dimension must be positive, got %d", dim)
	}
	return Encoder{dim: dim}, nil
}

// VectorizePose implements domain.SemanticEncoder. The model name is ignored.
func (e Encoder) VectorizePose(ctx context.Context, _ string, pose domain.PoseRecord) (domain.EmbeddingVector, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()
	return e.Embed(pose.IndexingText()), nil
}

// VectorizeQuery implements domain.SemanticEncoder. The model name is ignored.
func (e Encoder) VectorizeQuery(ctx context.Context, _ string, query string) (domain.EmbeddingVector, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()
	return e.Embed(query), nil
}

// Embed returns the hashed vector for text. TotalTokens is the number of words.
func (e Encoder) Embed(text string) domain.EmbeddingVector {
	tokens := tokenize(text)
	vec := make([]float64, e.dim)
	for i, tok := range tokens {
		e.add(vec, tok, 1)
		if i > 0 {
			e.add(vec, tokens[i-1]+" "+tok, 0.5)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return domain.EmbeddingVector{Vector: vec, TotalTokens: len(tokens)}
}

func (e Encoder) add(vec []float64, feature string, weight float64) {
	h := fnv.New64a()
	h.Write([]byte(feature)) //nolint:errcheck
	sum := h.Sum64()
	bucket := sum % uint64(e.dim)
	// top bit picks the sign so collisions tend to cancel out
	if sum>>63 == 1 {
		weight = -weight
	}
	vec[bucket] += weight
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// InitEncoder registers the local encoder when it is the selected provider.
type InitEncoder struct {
	Logger     *log.Logger `resolve:""`
	Dimensions int         `config:"EMBEDDING_DIMENSIONS" default:"384"`
	Provider   string      `config:"EMBEDDING_PROVIDER" default:"modelrunner"`
}

// Initialize registers domain.SemanticEncoder.
func (i InitEncoder) Initialize(ctx context.Context) (context.Context, error) {
	if i.Provider != ProviderName {
		return ctx, nil
	}
	encoder, err := NewEncoder(i.Dimensions)
	if err != nil {
		return ctx, err
	}
	i.Logger.Printf("SemanticEncoder: using local hashing encoder (dimension=%d)", i.Dimensions)
	depend.Register[domain.SemanticEncoder](encoder)
	return ctx, nil
}
