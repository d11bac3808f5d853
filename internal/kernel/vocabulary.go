package kernel

import (
	"strings"

	"github.com/gcbaptista/go-word-kernel/config"
)

// tokenCounts holds token counts together with first-encounter order.
type tokenCounts struct {
	order  []string
	counts map[string]int
}

// countTokens counts occurrences and remembers the order tokens were first seen.
func countTokens(tokens []string) tokenCounts {
	tc := tokenCounts{
		order:  make([]string, 0),
		counts: make(map[string]int),
	}
	for _, token := range tokens {
		if _, seen := tc.counts[token]; !seen {
			tc.order = append(tc.order, token)
		}
		tc.counts[token]++
	}
	return tc
}

// tokenSets returns one set of distinct tokens per document.
func tokenSets(docTokens [][]string) []map[string]struct{} {
	sets := make([]map[string]struct{}, len(docTokens))
	for i, tokens := range docTokens {
		set := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			set[token] = struct{}{}
		}
		sets[i] = set
	}
	return sets
}

// documentCounts counts, for every candidate, how many token sets contain it.
func documentCounts(candidates []string, sets []map[string]struct{}) map[string]int {
	counts := make(map[string]int, len(candidates))
	for _, token := range candidates {
		for _, set := range sets {
			if _, ok := set[token]; ok {
				counts[token]++
			}
		}
	}
	return counts
}

// filterByThreshold returns, in candidate order, the tokens whose count is
// strictly greater than threshold. Neither input is modified.
func filterByThreshold(candidates []string, counts map[string]int, threshold int) []string {
	kept := make([]string, 0, len(candidates))
	for _, token := range candidates {
		if counts[token] > threshold {
			kept = append(kept, token)
		}
	}
	return kept
}

// documentFrequency returns the number of documents containing each token.
//
// In token mode a document contains a token when tokenizing it yields that
// token. In substring mode the token only has to occur somewhere in the
// normalized document text, so "cat" is contained in "concatenate".
func documentFrequency(tokens []string, mode string, normalizedDocs []string, sets []map[string]struct{}) map[string]int {
	if mode != config.DFModeSubstring {
		return documentCounts(tokens, sets)
	}

	df := make(map[string]int, len(tokens))
	for _, token := range tokens {
		for _, doc := range normalizedDocs {
			if strings.Contains(doc, token) {
				df[token]++
			}
		}
	}
	return df
}
