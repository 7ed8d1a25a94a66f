// Package corpus holds the in-memory nearest-neighbour index over the pose
// dataset. The index is built once at startup and is read-only afterwards, so
// queries need no locking.
package corpus

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/common"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/telemetry"
)

var _ domain.PoseIndex = (*Index)(nil)

// Index is a flat (exhaustive) squared-L2 index. The vector at position i
// always belongs to the pose at position i.
type Index struct {
	dim         int
	vectors     [][]float64
	poses       []domain.PoseRecord
	totalTokens int
}

// NewIndex creates an empty index. A zero dim is fixed by the first Add.
func NewIndex(dim int) *Index {
	return &Index{dim: dim}
}

// Add appends a vector and the pose it was computed from.
func (ix *Index) Add(vector []float64, pose domain.PoseRecord) error {
	if len(vector) == 0 {
		return domain.NewIndexErr(fmt.Sprintf("empty vector for pose %q", pose.Pose), nil)
	}
	if ix.dim == 0 {
		ix.dim = len(vector)
	}
	if len(vector) != ix.dim {
		return domain.NewIndexErr(fmt.Sprintf(
			"vector for pose %q has dimension %d, index expects %d", pose.Pose, len(vector), ix.dim,
		), nil)
	}
	ix.vectors = append(ix.vectors, vector)
	ix.poses = append(ix.poses, pose)
	return nil
}

// Len returns the number of indexed poses.
func (ix *Index) Len() int {
	return len(ix.poses)
}

// Dimension returns the vector dimension, or 0 when nothing was added.
func (ix *Index) Dimension() int {
	return ix.dim
}

// TotalTokens returns the tokens reported by the encoder while building.
func (ix *Index) TotalTokens() int {
	return ix.totalTokens
}

// At returns the vector and pose stored at position i.
func (ix *Index) At(i int) ([]float64, domain.PoseRecord) {
	return ix.vectors[i], ix.poses[i]
}

// Search returns the squared distances and positions of the k vectors closest
// to query, nearest first. Equal distances keep insertion order. k is clamped
// to the index size.
func (ix *Index) Search(query []float64, k int) ([]float64, []int, error) {
	if k <= 0 || len(ix.vectors) == 0 {
		return nil, nil, nil
	}
	if len(query) != ix.dim {
		return nil, nil, domain.NewIndexErr(fmt.Sprintf(
			"query has dimension %d, index expects %d", len(query), ix.dim,
		), nil)
	}

	type hit struct {
		pos  int
		dist float64
	}
	hits := make([]hit, len(ix.vectors))
	for i, v := range ix.vectors {
		d, _ := common.SquaredEuclideanDistance(query, v)
		hits[i] = hit{pos: i, dist: d}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(a.dist, b.dist)
	})

	k = min(k, len(hits))
	distances := make([]float64, k)
	positions := make([]int, k)
	for i := range k {
		distances[i] = hits[i].dist
		positions[i] = hits[i].pos
	}
	return distances, positions, nil
}

// Nearest implements domain.PoseIndex.
func (ix *Index) Nearest(ctx context.Context, vector []float64, k int) ([]domain.PoseCandidate, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	distances, positions, err := ix.Search(vector, k)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	candidates := make([]domain.PoseCandidate, len(positions))
	for i, pos := range positions {
		candidates[i] = domain.PoseCandidate{
			Record:   ix.poses[pos],
			Distance: distances[i],
		}
	}
	return candidates, nil
}
