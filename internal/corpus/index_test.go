package corpus

import (
	"context"
	"testing"

	"github.com/Amir-Shahriari/AI-Personal-Trainer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	ix := NewIndex(0)
	require.NoError(t, ix.Add([]float64{0, 0}, domain.PoseRecord{Pose: "Mountain"}))
	require.NoError(t, ix.Add([]float64{3, 4}, domain.PoseRecord{Pose: "Warrior"}))
	require.NoError(t, ix.Add([]float64{1, 1}, domain.PoseRecord{Pose: "Tree"}))
	require.NoError(t, ix.Add([]float64{1, 1}, domain.PoseRecord{Pose: "Chair"}))
	return ix
}

func TestIndex_Add(t *testing.T) {
	ix := NewIndex(0)
	assert.Equal(t, 0, ix.Dimension())

	require.NoError(t, ix.Add([]float64{1, 2, 3}, domain.PoseRecord{Pose: "Mountain"}))
	assert.Equal(t, 3, ix.Dimension())

	err := ix.Add([]float64{1, 2}, domain.PoseRecord{Pose: "Tree"})
	assert.Equal(t, domain.ErrKindIndex, domain.KindOf(err))

	err = ix.Add(nil, domain.PoseRecord{Pose: "Tree"})
	assert.Equal(t, domain.ErrKindIndex, domain.KindOf(err))

	assert.Equal(t, 1, ix.Len())
}

func TestIndex_Search(t *testing.T) {
	tests := map[string]struct {
		query             []float64
		k                 int
		expectedPositions []int
		expectedDistances []float64
		expectedErrKind   domain.ErrKind
	}{
		"nearest-first": {
			query:             []float64{0, 0},
			k:                 2,
			expectedPositions: []int{0, 2},
			expectedDistances: []float64{0, 2},
		},
		"ties-keep-insertion-order": {
			query:             []float64{1, 1},
			k:                 3,
			expectedPositions: []int{2, 3, 0},
			expectedDistances: []float64{0, 0, 2},
		},
		"k-clamped-to-size": {
			query:             []float64{3, 4},
			k:                 15,
			expectedPositions: []int{1, 2, 3, 0},
			expectedDistances: []float64{0, 13, 13, 25},
		},
		"zero-k": {
			query: []float64{0, 0},
			k:     0,
		},
		"dimension-mismatch": {
			query:           []float64{0, 0, 0},
			k:               2,
			expectedErrKind: domain.ErrKindIndex,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ix := newTestIndex(t)
			distances, positions, err := ix.Search(tt.query, tt.k)
			if tt.expectedErrKind != "" {
				assert.Equal(t, tt.expectedErrKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPositions, positions)
			assert.Equal(t, tt.expectedDistances, distances)
		})
	}
}

func TestIndex_Search_Empty(t *testing.T) {
	distances, positions, err := NewIndex(0).Search([]float64{1}, 5)
	assert.NoError(t, err)
	assert.Empty(t, distances)
	assert.Empty(t, positions)
}

func TestIndex_Nearest(t *testing.T) {
	ix := newTestIndex(t)

	got, err := ix.Nearest(context.Background(), []float64{2.5, 3.5}, 15)
	require.NoError(t, err)
	require.Len(t, got, ix.Len())

	var names []string
	for i, c := range got {
		names = append(names, c.Record.Pose)
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].Distance, c.Distance, "distances must be non-decreasing")
		}
	}
	assert.Equal(t, []string{"Warrior", "Tree", "Chair", "Mountain"}, names)
}
