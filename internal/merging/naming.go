package merging

import (
	"path/filepath"
	"strings"

	"mesclador/internal/textutil"
)

const (
	outputPrefix = "Mesclado_"
	outputSuffix = "_mesclado"
)

// OutputName derives the merged file name for a group from its anchor: when
// the anchor carries at least one numeric token the name is
// "Mesclado_<firstToken>.pdf", otherwise "<anchorStem>_mesclado.pdf".
func OutputName(anchor string) string {
	if tokens := textutil.ExtractNumericTokens(anchor); len(tokens) > 0 {
		return outputPrefix + tokens[0] + ".pdf"
	}
	stem := strings.TrimSuffix(anchor, filepath.Ext(anchor))
	return stem + outputSuffix + ".pdf"
}
