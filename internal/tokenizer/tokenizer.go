// Package tokenizer turns raw text into the word-level tokens the kernel
// counts. The kernel treats a Tokenizer as an opaque collaborator.
package tokenizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/gcbaptista/go-word-kernel/internal/errors"
)

const (
	// NameWord selects the regex word tokenizer.
	NameWord = "word"
	// NameBPE selects the tiktoken subword tokenizer.
	NameBPE = "bpe"
)

// Tokenizer maps a string to an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Normalizer is implemented by tokenizers that rewrite text before splitting
// it (case folding, Unicode normalization). Substring document frequency
// compares tokens against the normalized document so both sides agree.
type Normalizer interface {
	Normalize(text string) string
}

// nonWordRegex matches runs of characters that are neither letters nor digits.
var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// WordTokenizer splits text on non-alphanumeric runs after NFKC normalization
// and, optionally, case folding.
type WordTokenizer struct {
	lowercase bool
}

// NewWordTokenizer creates a WordTokenizer.
func NewWordTokenizer(lowercase bool) *WordTokenizer {
	return &WordTokenizer{lowercase: lowercase}
}

// Normalize applies NFKC normalization and, when enabled, case folding.
func (t *WordTokenizer) Normalize(text string) string {
	normalized := norm.NFKC.String(text)
	if t.lowercase {
		// Casers are stateful; build one per call.
		normalized = cases.Fold().String(normalized)
	}
	return normalized
}

// Tokenize converts a string into a slice of tokens.
func (t *WordTokenizer) Tokenize(text string) []string {
	split := nonWordRegex.Split(t.Normalize(text), -1)

	tokens := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// Tokenize splits text with a lowercasing WordTokenizer.
func Tokenize(text string) []string {
	return NewWordTokenizer(true).Tokenize(text)
}

// New builds the tokenizer registered under name. An empty name selects the
// word tokenizer.
func New(name string, lowercase bool) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameWord:
		return NewWordTokenizer(lowercase), nil
	case NameBPE:
		return NewBPETokenizer(DefaultEncoding, lowercase)
	default:
		return nil, errors.NewValidationError("tokenizer", "unknown tokenizer '"+name+"' (must be 'word' or 'bpe')")
	}
}
