package kernel

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gcbaptista/go-word-kernel/internal/errors"
)

// GramMatrix fits v on corpus and returns the model with the corpus Gram matrix.
func GramMatrix(v *Vectorizer, corpus []string) (*Model, *mat.Dense, error) {
	m, err := v.Fit(corpus)
	if err != nil {
		return nil, nil, err
	}
	gram, err := m.Gram(corpus)
	if err != nil {
		return nil, nil, err
	}
	return m, gram, nil
}

// Gram returns the len(docs) x len(docs) matrix of pairwise cosine
// similarities. Every ordered pair is computed, diagonal included.
func (m *Model) Gram(docs []string) (*mat.Dense, error) {
	if len(docs) == 0 {
		return nil, errors.ErrEmptyCorpus
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = m.Vectorize(doc)
	}
	return GramFromVectors(vectors)
}

// GramFromVectors builds the cosine Gram matrix of precomputed vectors, which
// must all have the same length.
func GramFromVectors(vectors [][]float64) (*mat.Dense, error) {
	n := len(vectors)
	if n == 0 {
		return nil, errors.ErrEmptyCorpus
	}
	for _, vector := range vectors[1:] {
		if len(vector) != len(vectors[0]) {
			return nil, errors.NewDimensionMismatchError(len(vectors[0]), len(vector))
		}
	}

	gram := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			gram.Set(i, j, cosine(vectors[i], vectors[j]))
		}
	}
	return gram, nil
}

// Rows copies a matrix into nested slices for JSON encoding.
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}
