package source

import (
	"iter"
	"slices"

	"github.com/custodia-labs/linesift/internal/core/ports/driven"
)

// Ensure Slice implements the interface.
var _ driven.LineSource = Slice(nil)

// Slice is an in-memory line source. It can be iterated any number of times.
type Slice []string

// Lines yields the elements in order.
func (s Slice) Lines() iter.Seq[string] {
	return slices.Values(s)
}

// Err always returns nil.
func (s Slice) Err() error {
	return nil
}
