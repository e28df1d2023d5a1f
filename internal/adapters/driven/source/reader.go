package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/custodia-labs/linesift/internal/core/domain"
	"github.com/custodia-labs/linesift/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.LineSource = (*Reader)(nil)

// Reader streams lines from an io.Reader, one buffered line at a time.
// Lines may be arbitrarily long. A Reader can be iterated once.
type Reader struct {
	r   *bufio.Reader
	err error
}

// NewReader creates a line source reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// NewLineSource adapts NewReader to driven.LineSourceFactory.
//
//nolint:ireturn // factory signature is fixed by the port.
func NewLineSource(r io.Reader) driven.LineSource {
	return NewReader(r)
}

// Lines yields each line with its trailing "\n" removed. A final line
// without a newline is yielded once; an empty input yields nothing.
func (s *Reader) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := s.r.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("%w: %w", domain.ErrRead, err)
				return
			}
			if line != "" && !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Err returns the read error that stopped iteration, or nil.
func (s *Reader) Err() error {
	return s.err
}
