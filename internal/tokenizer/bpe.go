package tokenizer

import (
	"fmt"
	"strings"

	tiktoken "github.com/tiktoken-go/tokenizer"
	"golang.org/x/text/cases"
)

// DefaultEncoding is the tiktoken encoding used by the bpe tokenizer.
const DefaultEncoding = tiktoken.Cl100kBase

// BPETokenizer emits byte-pair-encoded subword pieces instead of words.
type BPETokenizer struct {
	codec     tiktoken.Codec
	lowercase bool
}

// NewBPETokenizer loads the given tiktoken encoding.
func NewBPETokenizer(encoding tiktoken.Encoding, lowercase bool) (*BPETokenizer, error) {
	codec, err := tiktoken.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %s: %w", encoding, err)
	}
	return &BPETokenizer{codec: codec, lowercase: lowercase}, nil
}

// Normalize folds case when enabled. Subword pieces are matched on the same text.
func (t *BPETokenizer) Normalize(text string) string {
	if t.lowercase {
		return cases.Fold().String(text)
	}
	return text
}

// Tokenize encodes text and returns the trimmed, non-empty pieces.
func (t *BPETokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0)
	if text == "" {
		return tokens
	}

	_, pieces, err := t.codec.Encode(t.Normalize(text))
	if err != nil {
		return tokens
	}
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}
