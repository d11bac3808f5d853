package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/internal/errors"
	"github.com/gcbaptista/go-word-kernel/internal/kernel"
	"github.com/gcbaptista/go-word-kernel/model"
)

// Engine manages fitted kernels.
// It implements the services.KernelManager interface.
//
// Kernels are kept in a bounded LRU; fitting beyond MaxKernels evicts the
// least recently used one.
type Engine struct {
	kernels         *lru.Cache[string, *KernelInstance]
	defaults        config.KernelSettings
	vectorCacheSize int
	logger          *logrus.Entry
}

// NewEngine creates a new kernel engine from the server configuration.
func NewEngine(cfg config.ServerConfig, logger *logrus.Entry) (*Engine, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	if cfg.VectorCacheSize <= 0 {
		return nil, fmt.Errorf("vector cache size must be positive, got %d", cfg.VectorCacheSize)
	}

	defaults := cfg.Defaults.Clone()
	defaults.ApplyDefaults()

	eng := &Engine{
		defaults:        defaults,
		vectorCacheSize: cfg.VectorCacheSize,
		logger:          logger.WithField("component", "engine"),
	}

	kernels, err := lru.NewWithEvict[string, *KernelInstance](cfg.MaxKernels, func(id string, _ *KernelInstance) {
		eng.logger.WithField("kernel_id", id).Info("Evicted least recently used kernel")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kernel cache: %w", err)
	}
	eng.kernels = kernels
	return eng, nil
}

// DefaultSettings returns the settings used when a request supplies none.
func (e *Engine) DefaultSettings() config.KernelSettings {
	return e.defaults.Clone()
}

func (e *Engine) newVectorizer(settings config.KernelSettings) (*kernel.Vectorizer, error) {
	return kernel.NewVectorizer(settings, kernel.WithLogger(e.logger))
}

// FitKernel fits a kernel on corpus and registers it under a new ID.
func (e *Engine) FitKernel(corpus []string, settings config.KernelSettings) (*model.KernelInfo, error) {
	vectorizer, err := e.newVectorizer(settings)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	fitted, err := vectorizer.Fit(corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to fit kernel: %w", err)
	}

	instance, err := NewKernelInstance(uuid.New().String(), fitted, e.vectorCacheSize)
	if err != nil {
		return nil, err
	}
	e.kernels.Add(instance.ID(), instance)

	e.logger.WithFields(logrus.Fields{
		"kernel_id":  instance.ID(),
		"documents":  fitted.N(),
		"vocabulary": fitted.Dimension(),
		"took_ms":    time.Since(start).Milliseconds(),
	}).Info("Fitted kernel")

	info := instance.Info()
	return &info, nil
}

// FitGram fits a throwaway kernel on corpus and returns the corpus Gram matrix.
func (e *Engine) FitGram(corpus []string, settings config.KernelSettings) (*model.GramResult, error) {
	vectorizer, err := e.newVectorizer(settings)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	fitted, gram, err := kernel.GramMatrix(vectorizer, corpus)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gram matrix: %w", err)
	}
	took := time.Since(start).Milliseconds()

	e.logger.WithFields(logrus.Fields{
		"documents":  fitted.N(),
		"vocabulary": fitted.Dimension(),
		"took_ms":    took,
	}).Info("Computed gram matrix")

	return &model.GramResult{
		Documents:      fitted.N(),
		VocabularySize: fitted.Dimension(),
		Matrix:         kernel.Rows(gram),
		Took:           took,
	}, nil
}

func (e *Engine) instance(kernelID string) (*KernelInstance, error) {
	instance, ok := e.kernels.Get(kernelID)
	if !ok {
		return nil, errors.NewKernelNotFoundError(kernelID)
	}
	return instance, nil
}

// GetKernel returns a fitted kernel with its vocabulary.
func (e *Engine) GetKernel(kernelID string) (*model.KernelDetail, error) {
	instance, err := e.instance(kernelID)
	if err != nil {
		return nil, err
	}
	detail := instance.Detail()
	return &detail, nil
}

// ListKernels returns all fitted kernels, least recently used first.
func (e *Engine) ListKernels() []model.KernelInfo {
	instances := e.kernels.Values()
	infos := make([]model.KernelInfo, 0, len(instances))
	for _, instance := range instances {
		infos = append(infos, instance.Info())
	}
	return infos
}

// DeleteKernel removes a fitted kernel.
func (e *Engine) DeleteKernel(kernelID string) error {
	if !e.kernels.Remove(kernelID) {
		return errors.NewKernelNotFoundError(kernelID)
	}
	e.logger.WithField("kernel_id", kernelID).Info("Deleted kernel")
	return nil
}

// Vectorize converts text with the given kernel.
func (e *Engine) Vectorize(kernelID, text string) (*model.VectorResult, error) {
	instance, err := e.instance(kernelID)
	if err != nil {
		return nil, err
	}
	return &model.VectorResult{
		KernelID: kernelID,
		Vector:   instance.Vectorize(text),
	}, nil
}

// Similarity returns the kernel value of a and b.
func (e *Engine) Similarity(kernelID, a, b string) (*model.SimilarityResult, error) {
	instance, err := e.instance(kernelID)
	if err != nil {
		return nil, err
	}
	similarity, err := instance.Similarity(a, b)
	if err != nil {
		return nil, err
	}
	return &model.SimilarityResult{
		KernelID:   kernelID,
		Similarity: similarity,
	}, nil
}

// Gram returns the Gram matrix of docs under the given kernel.
func (e *Engine) Gram(kernelID string, docs []string) (*model.GramResult, error) {
	instance, err := e.instance(kernelID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	matrix, err := instance.Gram(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute gram matrix for kernel '%s': %w", kernelID, err)
	}
	return &model.GramResult{
		KernelID:       kernelID,
		Documents:      len(docs),
		VocabularySize: instance.Model().Dimension(),
		Matrix:         matrix,
		Took:           time.Since(start).Milliseconds(),
	}, nil
}
