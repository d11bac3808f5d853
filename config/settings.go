// Package config provides configuration structures for the word kernel.
// It defines how a kernel filters its vocabulary, counts document frequency
// and tokenizes text, plus the server settings that wrap it.
package config

import (
	"strconv"
	"strings"
)

// Filter modes decide which count the vocabulary threshold is applied to.
const (
	FilterModeOccurrences = "occurrences" // total token occurrences across the corpus
	FilterModeDocuments   = "documents"   // number of documents containing the token
)

// Document frequency modes decide what "a document contains a token" means.
const (
	DFModeToken     = "token"     // the token is one of the document's tokens
	DFModeSubstring = "substring" // the token is a substring of the document's text
)

// Tokenizer names accepted in KernelSettings.Tokenizer.
const (
	TokenizerWord = "word"
	TokenizerBPE  = "bpe"
)

// DefaultThreshold keeps tokens seen more than three times.
const DefaultThreshold = 3

// KernelSettings contains all configuration options for fitting a kernel.
//
// A token survives vocabulary filtering only when its count (as selected by
// FilterMode) is strictly greater than Threshold.
type KernelSettings struct {
	Threshold  int    `json:"threshold" toml:"threshold"`     // Tokens must be counted more than this many times
	FilterMode string `json:"filter_mode" toml:"filter_mode"` // "occurrences" or "documents"
	DFMode     string `json:"df_mode" toml:"df_mode"`         // "token" or "substring"
	Normalize  bool   `json:"normalize" toml:"normalize"`     // L2-normalize every vector returned by Vectorize
	Tokenizer  string `json:"tokenizer" toml:"tokenizer"`     // "word" or "bpe"
	Lowercase  *bool  `json:"lowercase,omitempty" toml:"lowercase,omitempty"`
}

// DefaultKernelSettings returns settings with every default applied.
func DefaultKernelSettings() KernelSettings {
	settings := KernelSettings{Threshold: DefaultThreshold}
	settings.ApplyDefaults()
	return settings
}

// ApplyDefaults applies default values to the kernel settings.
// A zero Threshold is left alone; it is a valid "keep everything seen at least once" choice.
func (settings *KernelSettings) ApplyDefaults() {
	if settings.FilterMode == "" {
		settings.FilterMode = FilterModeOccurrences
	}
	if settings.DFMode == "" {
		settings.DFMode = DFModeToken
	}
	if settings.Tokenizer == "" {
		settings.Tokenizer = TokenizerWord
	}
	if settings.Lowercase == nil {
		lowercase := true
		settings.Lowercase = &lowercase
	}
}

// LowercaseEnabled reports whether tokens are case folded. Unset means true.
func (settings KernelSettings) LowercaseEnabled() bool {
	return settings.Lowercase == nil || *settings.Lowercase
}

// Validate checks the settings and returns one message per problem found.
func (settings *KernelSettings) Validate() []string {
	var errors []string

	if settings.Threshold < 0 {
		errors = append(errors, "Invalid threshold "+strconv.Itoa(settings.Threshold)+" (must not be negative)")
	}

	switch strings.TrimSpace(settings.FilterMode) {
	case "", FilterModeOccurrences, FilterModeDocuments:
	default:
		errors = append(errors, "Invalid filter_mode '"+settings.FilterMode+"' (must be 'occurrences' or 'documents')")
	}

	switch strings.TrimSpace(settings.DFMode) {
	case "", DFModeToken, DFModeSubstring:
	default:
		errors = append(errors, "Invalid df_mode '"+settings.DFMode+"' (must be 'token' or 'substring')")
	}

	switch strings.ToLower(strings.TrimSpace(settings.Tokenizer)) {
	case "", TokenizerWord, TokenizerBPE:
	default:
		errors = append(errors, "Invalid tokenizer '"+settings.Tokenizer+"' (must be 'word' or 'bpe')")
	}

	return errors
}

// Clone returns a deep copy, so decoding into the copy never touches the original.
func (settings KernelSettings) Clone() KernelSettings {
	clone := settings
	if settings.Lowercase != nil {
		lowercase := *settings.Lowercase
		clone.Lowercase = &lowercase
	}
	return clone
}
