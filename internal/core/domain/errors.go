package domain

import (
	"errors"
	"fmt"
)

// Domain errors. The CLI maps each of these onto a diagnostic and an
// exit status.
var (
	// ErrUsage indicates an invalid flag or a wrong argument count.
	ErrUsage = errors.New("usage error")

	// ErrFileNotFound indicates the input path is missing or is not a regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileNotReadable indicates the input file exists but cannot be opened.
	ErrFileNotReadable = errors.New("file not readable")

	// ErrRead indicates an I/O failure while reading an open file.
	ErrRead = errors.New("read failed")

	// ErrNoMatch is not a failure: the scan completed and selected nothing.
	ErrNoMatch = errors.New("no lines selected")
)

// UsageError carries the diagnostic shown for a malformed command line.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is(err, ErrUsage).
func (e *UsageError) Unwrap() error {
	return ErrUsage
}

// InputAccessError reports a problem with the input file. Err wraps one
// of ErrFileNotFound, ErrFileNotReadable or ErrRead.
type InputAccessError struct {
	Path string
	Err  error
}

func (e *InputAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputAccessError) Unwrap() error {
	return e.Err
}
