package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gcbaptista/go-word-kernel/internal/errors"
)

// Cosine returns dot(v,w) / sqrt(dot(v,v) * dot(w,w)). When the denominator is
// zero the raw dot product (itself zero) is returned, so the result is never NaN.
func Cosine(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, errors.NewDimensionMismatchError(len(v), len(w))
	}
	return cosine(v, w), nil
}

func cosine(v, w []float64) float64 {
	dot := floats.Dot(v, w)
	normalize := math.Sqrt(floats.Dot(v, v) * floats.Dot(w, w))
	if normalize != 0 {
		return dot / normalize
	}
	return dot
}

// Kernel vectorizes both texts and returns their cosine similarity.
func (m *Model) Kernel(a, b string) float64 {
	return cosine(m.Vectorize(a), m.Vectorize(b))
}
