package engine_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/internal/engine"
	kerrors "github.com/gcbaptista/go-word-kernel/internal/errors"
	testutil "github.com/gcbaptista/go-word-kernel/internal/testing"
)

func TestEngine_FitAndGetKernel(t *testing.T) {
	eng := testutil.CreateTestEngine(t)
	info := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)

	assert.Equal(t, 3, info.Documents)
	assert.Equal(t, 3, info.VocabularySize)
	assert.Equal(t, config.FilterModeOccurrences, info.Settings.FilterMode)

	detail, err := eng.GetKernel(info.ID)
	require.NoError(t, err)
	require.Len(t, detail.Vocabulary, 3)

	assert.Equal(t, "the", detail.Vocabulary[0].Token)
	assert.Equal(t, 3, detail.Vocabulary[0].DocumentFrequency)
	assert.Equal(t, 0.0, detail.Vocabulary[0].IDF)
	assert.Equal(t, "cat", detail.Vocabulary[1].Token)
	assert.InDelta(t, math.Log(1.5), detail.Vocabulary[1].IDF, 1e-12)
}

func TestEngine_FitErrors(t *testing.T) {
	eng := testutil.CreateTestEngine(t)

	_, err := eng.FitKernel(nil, config.DefaultKernelSettings())
	assert.True(t, errors.Is(err, kerrors.ErrEmptyCorpus))

	_, err = eng.FitKernel(testutil.AnimalCorpus, config.KernelSettings{Threshold: -2})
	assert.True(t, errors.Is(err, kerrors.ErrInvalidInput))

	assert.Empty(t, eng.ListKernels(), "failed fits must not register kernels")
}

func TestEngine_UnknownKernel(t *testing.T) {
	eng := testutil.CreateTestEngine(t)

	_, err := eng.GetKernel("missing")
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound))

	_, err = eng.Vectorize("missing", "text")
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound))

	_, err = eng.Similarity("missing", "a", "b")
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound))

	_, err = eng.Gram("missing", []string{"a"})
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound))

	assert.True(t, errors.Is(eng.DeleteKernel("missing"), kerrors.ErrKernelNotFound))
}

func TestEngine_VectorizeReturnsCopies(t *testing.T) {
	eng := testutil.CreateTestEngine(t)
	info := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)

	first, err := eng.Vectorize(info.ID, "the cat sat")
	require.NoError(t, err)
	require.Len(t, first.Vector, 3)
	original := first.Vector[1]
	first.Vector[1] = 42

	second, err := eng.Vectorize(info.ID, "the cat sat")
	require.NoError(t, err)
	assert.Equal(t, original, second.Vector[1], "cached vectors must not be shared with callers")
}

func TestEngine_SimilarityAndGram(t *testing.T) {
	eng := testutil.CreateTestEngine(t)
	info := testutil.FitTestKernel(t, eng, testutil.AliceCorpus, 0)

	self, err := eng.Similarity(info.ID, testutil.AliceCorpus[0], testutil.AliceCorpus[0])
	require.NoError(t, err)
	assert.InDelta(t, 1.0, self.Similarity, 1e-12)

	ab, err := eng.Similarity(info.ID, testutil.AliceCorpus[0], testutil.AliceCorpus[1])
	require.NoError(t, err)
	ba, err := eng.Similarity(info.ID, testutil.AliceCorpus[1], testutil.AliceCorpus[0])
	require.NoError(t, err)
	assert.Equal(t, ab.Similarity, ba.Similarity)

	gram, err := eng.Gram(info.ID, testutil.AliceCorpus)
	require.NoError(t, err)
	assert.Equal(t, info.ID, gram.KernelID)
	assert.Equal(t, 3, gram.Documents)
	testutil.AssertSymmetric(t, gram.Matrix)
	testutil.AssertUnitDiagonal(t, gram.Matrix, 1e-12)
	assert.Equal(t, ab.Similarity, gram.Matrix[0][1])

	_, err = eng.Gram(info.ID, nil)
	assert.True(t, errors.Is(err, kerrors.ErrEmptyCorpus))
}

func TestEngine_FitGram(t *testing.T) {
	eng := testutil.CreateTestEngine(t)

	settings := config.DefaultKernelSettings()
	settings.Threshold = 0
	result, err := eng.FitGram(testutil.AliceCorpus, settings)
	require.NoError(t, err)

	assert.Empty(t, result.KernelID, "fit-and-gram does not register a kernel")
	assert.Equal(t, 3, result.Documents)
	assert.Positive(t, result.VocabularySize)
	testutil.AssertSymmetric(t, result.Matrix)
	testutil.AssertUnitDiagonal(t, result.Matrix, 1e-12)
	assert.Empty(t, eng.ListKernels())

	_, err = eng.FitGram([]string{}, settings)
	assert.True(t, errors.Is(err, kerrors.ErrEmptyCorpus))
}

func TestEngine_DeleteKernel(t *testing.T) {
	eng := testutil.CreateTestEngine(t)
	info := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)

	require.NoError(t, eng.DeleteKernel(info.ID))
	_, err := eng.GetKernel(info.ID)
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound))
}

func TestEngine_EvictsLeastRecentlyUsed(t *testing.T) {
	cfg := testutil.TestServerConfig()
	cfg.MaxKernels = 2
	eng, err := engine.NewEngine(cfg, testutil.QuietLogger())
	require.NoError(t, err)

	first := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)
	second := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)

	// Touch the first kernel so the second becomes least recently used.
	_, err = eng.GetKernel(first.ID)
	require.NoError(t, err)

	third := testutil.FitTestKernel(t, eng, testutil.AnimalCorpus, 1)

	_, err = eng.GetKernel(second.ID)
	assert.True(t, errors.Is(err, kerrors.ErrKernelNotFound), "second kernel should have been evicted")

	ids := make([]string, 0)
	for _, info := range eng.ListKernels() {
		ids = append(ids, info.ID)
	}
	assert.ElementsMatch(t, []string{first.ID, third.ID}, ids)
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cfg := testutil.TestServerConfig()
	cfg.VectorCacheSize = 0
	_, err := engine.NewEngine(cfg, nil)
	assert.Error(t, err)

	cfg = testutil.TestServerConfig()
	cfg.MaxKernels = 0
	_, err = engine.NewEngine(cfg, nil)
	assert.Error(t, err)
}

func TestEngine_DefaultSettings(t *testing.T) {
	eng := testutil.CreateTestEngine(t)

	defaults := eng.DefaultSettings()
	assert.Equal(t, config.DefaultThreshold, defaults.Threshold)

	*defaults.Lowercase = false
	assert.True(t, eng.DefaultSettings().LowercaseEnabled(), "callers cannot mutate engine defaults")
}
