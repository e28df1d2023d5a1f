package driven

import "io"

// FileSystem opens input files for scanning.
type FileSystem interface {
	// Open opens path for reading. The path must name an existing regular
	// file; failures are returned as *domain.InputAccessError wrapping
	// domain.ErrFileNotFound or domain.ErrFileNotReadable.
	Open(path string) (io.ReadCloser, error)
}
