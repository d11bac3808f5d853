package model

import (
	"time"

	"github.com/gcbaptista/go-word-kernel/config"
)

// KernelInfo describes a fitted kernel.
type KernelInfo struct {
	ID             string                `json:"id"`
	Documents      int                   `json:"documents"`       // Corpus size n used for the idf term
	VocabularySize int                   `json:"vocabulary_size"` // Length of every vector the kernel produces
	Settings       config.KernelSettings `json:"settings"`
	CreatedAt      time.Time             `json:"created_at"`
}

// TermStat is one vocabulary entry in vector order.
type TermStat struct {
	Token             string  `json:"token"`
	DocumentFrequency int     `json:"document_frequency"`
	IDF               float64 `json:"idf"`
}

// KernelDetail is KernelInfo plus the full vocabulary.
type KernelDetail struct {
	KernelInfo
	Vocabulary []TermStat `json:"vocabulary"`
}

// VectorResult is a feature vector in the kernel's vocabulary order.
type VectorResult struct {
	KernelID string    `json:"kernel_id"`
	Vector   []float64 `json:"vector"`
}

// SimilarityResult is the kernel value of two texts.
type SimilarityResult struct {
	KernelID   string  `json:"kernel_id"`
	Similarity float64 `json:"similarity"`
}

// GramResult is a Gram matrix, row-major.
type GramResult struct {
	KernelID       string      `json:"kernel_id,omitempty"` // Empty when the kernel was fitted only for this request
	Documents      int         `json:"documents"`
	VocabularySize int         `json:"vocabulary_size"`
	Matrix         [][]float64 `json:"matrix"`
	Took           int64       `json:"took"` // milliseconds
}
