package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredEuclideanDistance(t *testing.T) {
	tests := map[string]struct {
		a, b     []float64
		expected float64
		ok       bool
	}{
		"identical": {
			a:        []float64{1, 2, 3},
			b:        []float64{1, 2, 3},
			expected: 0,
			ok:       true,
		},
		"simple": {
			a:        []float64{0, 0},
			b:        []float64{3, 4},
			expected: 25,
			ok:       true,
		},
		"negative-components": {
			a:        []float64{-1, 1},
			b:        []float64{1, -1},
			expected: 8,
			ok:       true,
		},
		"length-mismatch": {
			a:  []float64{1, 2},
			b:  []float64{1},
			ok: false,
		},
		"empty": {
			a:  []float64{},
			b:  []float64{},
			ok: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := SquaredEuclideanDistance(tt.a, tt.b)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestFloat32To64(t *testing.T) {
	assert.Equal(t, []float64{0.5, -1, 2}, Float32To64([]float32{0.5, -1, 2}))
	assert.Empty(t, Float32To64(nil))
}
