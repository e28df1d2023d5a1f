// Package filesystem opens input files through go-billy, so the same code
// path serves the real OS filesystem and an in-memory one in tests.
package filesystem

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/custodia-labs/linesift/internal/core/domain"
	"github.com/custodia-labs/linesift/internal/core/ports/driven"
)

// Ensure FS implements the interface.
var _ driven.FileSystem = (*FS)(nil)

// FS implements driven.FileSystem on top of a billy filesystem.
type FS struct {
	fs billy.Basic
}

// New wraps a billy filesystem.
func New(fs billy.Basic) *FS {
	return &FS{fs: fs}
}

// NewOS returns an FS over the host filesystem. Paths are used as given,
// relative to the working directory.
func NewOS() *FS {
	return New(osfs.Default)
}

// Open opens path for reading. It fails with ErrFileNotFound when path is
// missing or not a regular file, and with ErrFileNotReadable when the
// file exists but cannot be opened.
func (b *FS) Open(path string) (io.ReadCloser, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, &domain.InputAccessError{
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrFileNotFound, err),
		}
	}
	if !info.Mode().IsRegular() {
		return nil, &domain.InputAccessError{
			Path: path,
			Err:  fmt.Errorf("%w: not a regular file", domain.ErrFileNotFound),
		}
	}

	f, err := b.fs.Open(path)
	if err != nil {
		return nil, &domain.InputAccessError{
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrFileNotReadable, err),
		}
	}
	return f, nil
}
