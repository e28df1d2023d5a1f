package domain

import "strconv"

// SearchConfig configures a scan. It is built once before scanning
// begins and is never mutated.
type SearchConfig struct {
	// Pattern is the literal text to look for. Empty matches every line.
	Pattern string

	// ShowLineNumbers prefixes each emitted line with "{n}:".
	ShowLineNumbers bool

	// InvertMatch selects the lines that do NOT contain Pattern.
	InvertMatch bool
}

// LineRecord is a single input line and its 1-based position.
type LineRecord struct {
	// Number counts every line read, starting at 1.
	Number int

	// Text is the line without its terminating newline.
	Text string
}

// Format renders the record as an output line.
func (r LineRecord) Format(showLineNumbers bool) string {
	if !showLineNumbers {
		return r.Text
	}
	return strconv.Itoa(r.Number) + ":" + r.Text
}

// ScanResult summarises a completed scan.
type ScanResult struct {
	// AnyOutput is true once at least one line has been selected.
	// It drives the process exit status.
	AnyOutput bool

	// LinesRead is the number of input lines consumed.
	LinesRead int

	// LinesSelected is the number of lines emitted.
	LinesSelected int
}
