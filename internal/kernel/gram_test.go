package kernel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-word-kernel/config"
	kerrors "github.com/gcbaptista/go-word-kernel/internal/errors"
)

func TestGramMatrix(t *testing.T) {
	v := newVectorizer(t, config.KernelSettings{Threshold: 0})

	m, gram, err := GramMatrix(v, alice)
	require.NoError(t, err)
	require.NotNil(t, m)

	rows, cols := gram.Dims()
	require.Equal(t, len(alice), rows)
	require.Equal(t, len(alice), cols)

	for i := 0; i < rows; i++ {
		assert.InDelta(t, 1.0, gram.At(i, i), 1e-12, "diagonal entry %d", i)
		for j := 0; j < cols; j++ {
			assert.Equal(t, gram.At(i, j), gram.At(j, i), "entry (%d,%d) must equal (%d,%d)", i, j, j, i)
			assert.InDelta(t, m.Kernel(alice[i], alice[j]), gram.At(i, j), 1e-12)
		}
	}
}

func TestGramMatrix_EmptyCorpus(t *testing.T) {
	v := newVectorizer(t, config.DefaultKernelSettings())

	_, _, err := GramMatrix(v, []string{})
	assert.True(t, errors.Is(err, kerrors.ErrEmptyCorpus))
}

func TestGramMatrix_EmptyVocabularyIsZero(t *testing.T) {
	v := newVectorizer(t, config.DefaultKernelSettings())

	_, gram, err := GramMatrix(v, animals)
	require.NoError(t, err)
	for _, row := range Rows(gram) {
		for _, x := range row {
			assert.Equal(t, 0.0, x)
		}
	}
}

func TestModel_Gram(t *testing.T) {
	m := fit(t, config.KernelSettings{Threshold: 1}, animals)

	gram, err := m.Gram([]string{"the cat sat", "the dog sat", "cat"})
	require.NoError(t, err)

	rows := Rows(gram)
	require.Len(t, rows, 3)
	assert.InDelta(t, 1.0, rows[0][0], 1e-12)
	assert.InDelta(t, 1.0, rows[1][1], 1e-12, "the dog sat still weighs sat")
	assert.InDelta(t, 1.0, rows[2][2], 1e-12)
	assert.Equal(t, 0.0, rows[1][2], "sat and cat share nothing")
	assert.Equal(t, rows[0][2], rows[2][0])

	_, err = m.Gram(nil)
	assert.True(t, errors.Is(err, kerrors.ErrEmptyCorpus))
}

func TestGramFromVectors(t *testing.T) {
	_, err := GramFromVectors([][]float64{{1, 2}, {1}})
	assert.True(t, errors.Is(err, kerrors.ErrDimensionMismatch))

	gram, err := GramFromVectors([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, Rows(gram))
}
