package services

import (
	"iter"

	"github.com/custodia-labs/linesift/internal/core/domain"
)

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithFold sets the case-folding function. Defaults to ASCIIFold.
func WithFold(fold FoldFunc) ScannerOption {
	return func(s *Scanner) {
		if fold != nil {
			s.fold = fold
		}
	}
}

// Scanner selects and formats lines for a single SearchConfig.
// It performs no I/O and holds no state between calls.
type Scanner struct {
	cfg  domain.SearchConfig
	fold FoldFunc
}

// NewScanner creates a scanner for cfg.
func NewScanner(cfg domain.SearchConfig, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		cfg:  cfg,
		fold: ASCIIFold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the scanner was built with.
func (s *Scanner) Config() domain.SearchConfig {
	return s.cfg
}

// Matches reports whether line contains the pattern, ignoring case.
func (s *Scanner) Matches(line string) bool {
	return CaseInsensitiveContains(line, s.cfg.Pattern, s.fold)
}

// Select reports whether line should be emitted: a match, or with
// InvertMatch set, a non-match.
func (s *Scanner) Select(line string) bool {
	return s.Matches(line) != s.cfg.InvertMatch
}

// Records lazily yields the selected lines with their 1-based position
// in lines. Every line read advances the counter, selected or not.
func (s *Scanner) Records(lines iter.Seq[string]) iter.Seq[domain.LineRecord] {
	return func(yield func(domain.LineRecord) bool) {
		n := 0
		for line := range lines {
			n++
			if !s.Select(line) {
				continue
			}
			if !yield(domain.LineRecord{Number: n, Text: line}) {
				return
			}
		}
	}
}

// Lines lazily yields the formatted output lines, in input order.
func (s *Scanner) Lines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for rec := range s.Records(lines) {
			if !yield(rec.Format(s.cfg.ShowLineNumbers)) {
				return
			}
		}
	}
}

// Scan drains lines, passing each formatted output line to emit. The
// only error returned is one from emit, which stops the scan at once.
func (s *Scanner) Scan(lines iter.Seq[string], emit func(string) error) (domain.ScanResult, error) {
	var res domain.ScanResult
	counted := func(yield func(string) bool) {
		for line := range lines {
			res.LinesRead++
			if !yield(line) {
				return
			}
		}
	}

	for out := range s.Lines(counted) {
		res.AnyOutput = true
		res.LinesSelected++
		if err := emit(out); err != nil {
			return res, err
		}
	}
	return res, nil
}
