// Package testing provides utilities and helpers for testing the word kernel.
package testing

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/internal/engine"
	"github.com/gcbaptista/go-word-kernel/model"
)

// AliceCorpus holds three passages from Alice's Adventures in Wonderland.
var AliceCorpus = []string{
	"So she was considering in her own mind (as well as she could, for the hot day made her feel very sleepy and stupid), whether the pleasure of making a daisy-chain would be worth the trouble of getting up and picking the daisies, when suddenly a White Rabbit with pink eyes ran close by her.",
	"The rabbit-hole went straight on like a tunnel for some way, and then dipped suddenly down, so suddenly that Alice had not a moment to think about stopping herself before she found herself falling down a very deep well.",
	"There were doors all round the hall, but they were all locked; and when Alice had been all the way down one side and up the other, trying every door, she walked sadly down the middle, wondering how she was ever to get out again.",
}

// AnimalCorpus is a tiny corpus whose vocabulary at threshold 1 is the, cat, sat.
var AnimalCorpus = []string{"the cat sat", "the cat ran", "the dog sat"}

// QuietLogger returns a logger that only reports warnings and errors.
func QuietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logrus.NewEntry(logger).WithField("test", true)
}

// TestServerConfig returns the default server configuration with a small kernel limit.
func TestServerConfig() config.ServerConfig {
	cfg := config.DefaultServerConfig()
	cfg.MaxKernels = 4
	cfg.VectorCacheSize = 16
	return cfg
}

// CreateTestEngine creates a new engine instance for testing.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.NewEngine(TestServerConfig(), QuietLogger())
	require.NoError(t, err, "Failed to create test engine")
	return eng
}

// FitTestKernel fits a kernel with the given threshold and default modes.
func FitTestKernel(t *testing.T, eng *engine.Engine, corpus []string, threshold int) *model.KernelInfo {
	t.Helper()
	settings := config.DefaultKernelSettings()
	settings.Threshold = threshold

	info, err := eng.FitKernel(corpus, settings)
	require.NoError(t, err, "Failed to fit test kernel")
	require.NotEmpty(t, info.ID)
	return info
}

// AssertSymmetric checks that matrix is square and exactly symmetric.
func AssertSymmetric(t *testing.T, matrix [][]float64) {
	t.Helper()
	for i := range matrix {
		require.Len(t, matrix[i], len(matrix), "row %d has the wrong length", i)
		for j := range matrix[i] {
			assert.Equal(t, matrix[i][j], matrix[j][i], "entry (%d,%d) differs from (%d,%d)", i, j, j, i)
		}
	}
}

// AssertUnitDiagonal checks that every diagonal entry is 1 within delta.
func AssertUnitDiagonal(t *testing.T, matrix [][]float64, delta float64) {
	t.Helper()
	for i := range matrix {
		assert.InDelta(t, 1.0, matrix[i][i], delta, "diagonal entry %d", i)
	}
}
