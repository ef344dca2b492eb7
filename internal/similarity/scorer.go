package similarity

import (
	"sort"

	"mesclador/internal/textutil"
)

// Weights applied when the pair shares at least one numeric token.
const (
	numericWeight = 0.8
	textWeight    = 0.2
)

// Result describes how alike two filenames are. Final is the combined score
// in [0,1]; Text is the normalized-text component; Numeric is 1 when the pair
// shares at least one numeric token and 0 otherwise. CommonTokens holds the
// shared numeric tokens, sorted, without duplicates.
type Result struct {
	Final        float64
	Text         float64
	Numeric      float64
	CommonTokens []string
}

// Score computes the similarity between two filenames. When the files share a
// numeric token the final score is 0.8*numeric + 0.2*text; otherwise the text
// similarity stands alone. Absence of numeric overlap never counts in favor of
// a pair, even when neither side has numeric tokens at all.
func Score(fileA, fileB string) Result {
	common := intersect(
		textutil.ExtractNumericTokens(fileA),
		textutil.ExtractNumericTokens(fileB),
	)
	text := textutil.Ratio(
		textutil.NormalizeText(fileA),
		textutil.NormalizeText(fileB),
	)

	result := Result{Text: text, CommonTokens: common}
	if len(common) > 0 {
		result.Numeric = 1
		result.Final = numericWeight*result.Numeric + textWeight*text
	} else {
		result.Final = text
	}
	return result
}

// intersect returns the deduplicated, sorted set intersection of two token
// sequences.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	inA := make(map[string]struct{}, len(a))
	for _, token := range a {
		inA[token] = struct{}{}
	}
	seen := make(map[string]struct{})
	var common []string
	for _, token := range b {
		if _, ok := inA[token]; !ok {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		common = append(common, token)
	}
	sort.Strings(common)
	return common
}
