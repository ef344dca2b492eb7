package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	digitRunPattern = regexp.MustCompile(`[0-9]+`)
	nonWordPattern  = regexp.MustCompile(`[\W_]+`)
	spaceRunPattern = regexp.MustCompile(`\s+`)
)

// NormalizeText reduces a filename to comparable plain text: the extension is
// stripped, accented characters are transliterated to their base letters
// (characters with no ASCII base form are dropped), digit runs and
// punctuation/underscore runs each collapse to a single space, whitespace is
// collapsed and trimmed, and the result is lowercased. Never fails; malformed
// input yields an empty string at worst.
func NormalizeText(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = stripDiacritics(base)
	base = digitRunPattern.ReplaceAllString(base, " ")
	base = nonWordPattern.ReplaceAllString(base, " ")
	base = spaceRunPattern.ReplaceAllString(base, " ")
	return strings.ToLower(strings.TrimSpace(base))
}

// stripDiacritics decomposes the input (NFKD), removes combining marks, and
// drops any remaining non-ASCII runes.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, s)
	if err != nil {
		decomposed = s
	}
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
