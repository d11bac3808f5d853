package kernel

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/gcbaptista/go-word-kernel/config"
	"github.com/gcbaptista/go-word-kernel/internal/errors"
	"github.com/gcbaptista/go-word-kernel/internal/tokenizer"
)

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithTokenizer overrides the tokenizer named in the settings.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(v *Vectorizer) {
		v.tokenizer = tok
	}
}

// WithLogger sets the logger used while fitting.
func WithLogger(logger *logrus.Entry) Option {
	return func(v *Vectorizer) {
		v.logger = logger
	}
}

// Vectorizer is an unfitted kernel: settings and a tokenizer, no corpus.
type Vectorizer struct {
	settings  config.KernelSettings
	tokenizer tokenizer.Tokenizer
	logger    *logrus.Entry
}

// NewVectorizer validates settings and builds the tokenizer they name.
func NewVectorizer(settings config.KernelSettings, opts ...Option) (*Vectorizer, error) {
	settings = settings.Clone()
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, errors.NewValidationError("settings", strings.Join(conflicts, "; "))
	}

	v := &Vectorizer{settings: settings}
	for _, opt := range opts {
		opt(v)
	}

	if v.tokenizer == nil {
		tok, err := tokenizer.New(settings.Tokenizer, settings.LowercaseEnabled())
		if err != nil {
			return nil, err
		}
		v.tokenizer = tok
	}
	if v.logger == nil {
		v.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return v, nil
}

// Settings returns the settings the vectorizer fits with.
func (v *Vectorizer) Settings() config.KernelSettings {
	return v.settings.Clone()
}

// Fit builds the vocabulary and document-frequency table for corpus.
func (v *Vectorizer) Fit(corpus []string) (*Model, error) {
	if len(corpus) == 0 {
		return nil, errors.ErrEmptyCorpus
	}

	docs := make([]string, len(corpus))
	copy(docs, corpus)

	// Candidates come from the joined corpus so their order is corpus-wide
	// first encounter.
	all := countTokens(v.tokenizer.Tokenize(strings.Join(docs, " ")))

	docTokens := make([][]string, len(docs))
	for i, doc := range docs {
		docTokens[i] = v.tokenizer.Tokenize(doc)
	}
	sets := tokenSets(docTokens)

	filterCounts := all.counts
	if v.settings.FilterMode == config.FilterModeDocuments {
		filterCounts = documentCounts(all.order, sets)
	}
	retained := filterByThreshold(all.order, filterCounts, v.settings.Threshold)

	var normalizedDocs []string
	if v.settings.DFMode == config.DFModeSubstring {
		normalizedDocs = make([]string, len(docs))
		for i, doc := range docs {
			normalizedDocs[i] = v.normalize(doc)
		}
	}
	df := documentFrequency(retained, v.settings.DFMode, normalizedDocs, sets)

	n := len(docs)
	m := &Model{
		settings:   v.settings.Clone(),
		tokenizer:  v.tokenizer,
		n:          n,
		vocabulary: make([]string, 0, len(retained)),
		index:      make(map[string]int, len(retained)),
		df:         make([]int, 0, len(retained)),
		idf:        make([]float64, 0, len(retained)),
	}
	for _, token := range retained {
		freq := df[token]
		if freq == 0 {
			continue
		}
		m.index[token] = len(m.vocabulary)
		m.vocabulary = append(m.vocabulary, token)
		m.df = append(m.df, freq)
		m.idf = append(m.idf, math.Log(float64(n)/float64(freq)))
	}

	fields := logrus.Fields{
		"documents":  n,
		"candidates": len(all.order),
		"vocabulary": len(m.vocabulary),
		"threshold":  v.settings.Threshold,
	}
	if len(m.vocabulary) == 0 {
		v.logger.WithFields(fields).Warn("Fitted kernel has an empty vocabulary; every kernel value will be 0")
	} else {
		v.logger.WithFields(fields).Debug("Fitted kernel")
	}
	return m, nil
}

func (v *Vectorizer) normalize(text string) string {
	if n, ok := v.tokenizer.(tokenizer.Normalizer); ok {
		return n.Normalize(text)
	}
	return text
}

// Model is a fitted kernel. It is immutable and safe for concurrent use.
type Model struct {
	settings   config.KernelSettings
	tokenizer  tokenizer.Tokenizer
	n          int
	vocabulary []string
	index      map[string]int
	df         []int
	idf        []float64
}

// N returns the number of documents the model was fitted on.
func (m *Model) N() int {
	return m.n
}

// Dimension returns the vocabulary size, which is the length of every vector.
func (m *Model) Dimension() int {
	return len(m.vocabulary)
}

// Vocabulary returns a copy of the vocabulary in vector order.
func (m *Model) Vocabulary() []string {
	vocabulary := make([]string, len(m.vocabulary))
	copy(vocabulary, m.vocabulary)
	return vocabulary
}

// Index returns the vector position of token.
func (m *Model) Index(token string) (int, bool) {
	idx, ok := m.index[token]
	return idx, ok
}

// DocumentFrequency returns the number of fitted documents containing token.
func (m *Model) DocumentFrequency(token string) (int, bool) {
	idx, ok := m.index[token]
	if !ok {
		return 0, false
	}
	return m.df[idx], true
}

// IDF returns log(n / df) for token.
func (m *Model) IDF(token string) (float64, bool) {
	idx, ok := m.index[token]
	if !ok {
		return 0, false
	}
	return m.idf[idx], true
}

// Settings returns the settings the model was fitted with.
func (m *Model) Settings() config.KernelSettings {
	return m.settings.Clone()
}

// Vectorize converts text into a feature vector over the vocabulary.
// When the model normalizes, a zero vector is returned as is.
func (m *Model) Vectorize(text string) []float64 {
	vector := make([]float64, len(m.vocabulary))
	if len(vector) == 0 {
		return vector
	}

	counts := make(map[string]int)
	for _, token := range m.tokenizer.Tokenize(text) {
		if _, ok := m.index[token]; ok {
			counts[token]++
		}
	}
	for token, count := range counts {
		idx := m.index[token]
		vector[idx] = math.Log1p(float64(count)) * m.idf[idx]
	}

	if m.settings.Normalize {
		if norm := floats.Norm(vector, 2); norm > 0 {
			floats.Scale(1/norm, vector)
		}
	}
	return vector
}

// String summarises the model for logs.
func (m *Model) String() string {
	return fmt.Sprintf("kernel(n=%d, vocabulary=%d, threshold=%d)", m.n, len(m.vocabulary), m.settings.Threshold)
}
