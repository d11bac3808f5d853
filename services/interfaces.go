package services

import (
	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/model"
)

// Vectorizer turns text into feature vectors with a fitted kernel
type Vectorizer interface {
	Vectorize(kernelID, text string) (*model.VectorResult, error)
}

// Similarity computes kernel values with a fitted kernel
type Similarity interface {
	Similarity(kernelID, a, b string) (*model.SimilarityResult, error)
	Gram(kernelID string, docs []string) (*model.GramResult, error)
}

// KernelManager manages the lifecycle of fitted kernels
type KernelManager interface {
	Vectorizer
	Similarity
	FitKernel(corpus []string, settings config.KernelSettings) (*model.KernelInfo, error)
	FitGram(corpus []string, settings config.KernelSettings) (*model.GramResult, error)
	GetKernel(kernelID string) (*model.KernelDetail, error)
	ListKernels() []model.KernelInfo
	DeleteKernel(kernelID string) error
	DefaultSettings() config.KernelSettings
}
