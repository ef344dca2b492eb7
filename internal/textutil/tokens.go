package textutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

// numericRunPattern matches maximal digit runs of three or more characters.
var numericRunPattern = regexp.MustCompile(`[0-9]{3,}`)

// ExtractNumericTokens returns every digit run of length >= 3 found in the
// filename with its extension stripped, in order of appearance. Each match is
// independent, so a repeated run appears more than once. Runs shorter than
// three digits are excluded; they tend to be version or page markers rather
// than case/reference numbers.
func ExtractNumericTokens(filename string) []string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return numericRunPattern.FindAllString(base, -1)
}
