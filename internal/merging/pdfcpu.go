package merging

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type pdfcpuEngine struct {
	conf *model.Configuration
}

// NewEngine returns the pdfcpu-backed PDF engine.
func NewEngine() Engine {
	return &pdfcpuEngine{conf: model.NewDefaultConfiguration()}
}

func (e *pdfcpuEngine) Inspect(path string) (Info, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		if isEncryptionError(err) {
			return Info{Encrypted: true}, nil
		}
		return Info{}, err
	}
	return Info{Pages: ctx.PageCount}, nil
}

func (e *pdfcpuEngine) Merge(inputs []string, output string) error {
	return api.MergeCreateFile(inputs, output, false, e.conf)
}

// isEncryptionError recognizes pdfcpu's password/encryption failures. pdfcpu
// reports these with varying messages across versions, so match on substrings
// rather than sentinel errors.
func isEncryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypt")
}
