package engine

import (
	"crypto/sha256"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gcbaptista/go-word-kernel/internal/kernel"
	"github.com/gcbaptista/go-word-kernel/model"
)

// KernelInstance holds a fitted model and the vectors already computed with it.
// The model is immutable, so cached vectors never go stale. Cache keys are
// digests of the text, so entries cost the same regardless of input size.
type KernelInstance struct {
	id        string
	createdAt time.Time
	model     *kernel.Model
	vectors   *lru.Cache[[sha256.Size]byte, []float64]
}

// NewKernelInstance wraps a fitted model with a vector cache of cacheSize entries.
func NewKernelInstance(id string, m *kernel.Model, cacheSize int) (*KernelInstance, error) {
	if id == "" {
		return nil, fmt.Errorf("kernel ID cannot be empty")
	}
	vectors, err := lru.New[[sha256.Size]byte, []float64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create vector cache: %w", err)
	}
	return &KernelInstance{
		id:        id,
		createdAt: time.Now().UTC(),
		model:     m,
		vectors:   vectors,
	}, nil
}

// ID returns the kernel ID.
func (i *KernelInstance) ID() string {
	return i.id
}

// CachedVectors returns the number of vectors currently cached.
func (i *KernelInstance) CachedVectors() int {
	return i.vectors.Len()
}

// Model returns the fitted model.
func (i *KernelInstance) Model() *kernel.Model {
	return i.model
}

// Vectorize returns the feature vector of text, computing it at most once per
// cache lifetime. The returned slice is a copy the caller may modify.
func (i *KernelInstance) Vectorize(text string) []float64 {
	vector := i.vector(text)
	out := make([]float64, len(vector))
	copy(out, vector)
	return out
}

// vector returns the shared cached slice; callers must not modify it.
func (i *KernelInstance) vector(text string) []float64 {
	key := sha256.Sum256([]byte(text))
	if vector, ok := i.vectors.Get(key); ok {
		return vector
	}
	vector := i.model.Vectorize(text)
	i.vectors.Add(key, vector)
	return vector
}

// Similarity returns the kernel value of a and b.
func (i *KernelInstance) Similarity(a, b string) (float64, error) {
	return kernel.Cosine(i.vector(a), i.vector(b))
}

// Gram returns the Gram matrix of docs under this kernel.
func (i *KernelInstance) Gram(docs []string) ([][]float64, error) {
	vectors := make([][]float64, len(docs))
	for idx, doc := range docs {
		vectors[idx] = i.vector(doc)
	}
	gram, err := kernel.GramFromVectors(vectors)
	if err != nil {
		return nil, err
	}
	return kernel.Rows(gram), nil
}

// Info describes the instance.
func (i *KernelInstance) Info() model.KernelInfo {
	return model.KernelInfo{
		ID:             i.id,
		Documents:      i.model.N(),
		VocabularySize: i.model.Dimension(),
		Settings:       i.model.Settings(),
		CreatedAt:      i.createdAt,
	}
}

// Detail describes the instance including its vocabulary.
func (i *KernelInstance) Detail() model.KernelDetail {
	vocabulary := i.model.Vocabulary()
	terms := make([]model.TermStat, len(vocabulary))
	for idx, token := range vocabulary {
		df, _ := i.model.DocumentFrequency(token)
		idf, _ := i.model.IDF(token)
		terms[idx] = model.TermStat{
			Token:             token,
			DocumentFrequency: df,
			IDF:               idf,
		}
	}
	return model.KernelDetail{
		KernelInfo: i.Info(),
		Vocabulary: terms,
	}
}
