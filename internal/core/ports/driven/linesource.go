package driven

import (
	"io"
	"iter"
)

// LineSource yields the lines of an input in order, without their
// terminating newline. After Lines has been drained, Err reports the
// first I/O error that stopped iteration, or nil at a clean end of input.
type LineSource interface {
	// Lines returns the sequence of raw line contents.
	Lines() iter.Seq[string]

	// Err returns the error that ended iteration early, if any.
	Err() error
}

// LineSourceFactory wraps an open reader in a LineSource.
type LineSourceFactory func(r io.Reader) LineSource
