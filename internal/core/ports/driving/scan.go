package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/linesift/internal/core/domain"
)

// ScanService runs a search over a single file.
type ScanService interface {
	// Run scans the file at path and writes every selected line, newline
	// terminated, to w. Input access is validated before anything is written.
	Run(ctx context.Context, cfg domain.SearchConfig, path string, w io.Writer) (domain.ScanResult, error)
}
