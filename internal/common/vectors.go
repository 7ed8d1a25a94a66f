package common

// SquaredEuclideanDistance calculates the squared L2 distance between two vectors
// and returns the distance along with a boolean indicating if the calculation was successful.
func SquaredEuclideanDistance(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum, true
}

// Float32To64 widens an embedding returned by float32-based providers.
func Float32To64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
