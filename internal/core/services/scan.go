package services

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/linesift/internal/core/domain"
	"github.com/custodia-labs/linesift/internal/core/ports/driven"
	"github.com/custodia-labs/linesift/internal/core/ports/driving"
	"github.com/custodia-labs/linesift/internal/logger"
)

// Ensure ScanService implements the interface.
var _ driving.ScanService = (*ScanService)(nil)

// ScanService opens an input file and runs a Scanner over its lines.
type ScanService struct {
	fs        driven.FileSystem
	newSource driven.LineSourceFactory
	opts      []ScannerOption
}

// NewScanService creates a new scan service. The options are passed to
// every Scanner it builds.
func NewScanService(
	fs driven.FileSystem,
	newSource driven.LineSourceFactory,
	opts ...ScannerOption,
) *ScanService {
	return &ScanService{
		fs:        fs,
		newSource: newSource,
		opts:      opts,
	}
}

// Run scans the file at path and writes every selected line to w.
func (s *ScanService) Run(
	ctx context.Context, cfg domain.SearchConfig, path string, w io.Writer,
) (domain.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScanResult{}, err
	}

	logger.Section("Scan")
	logger.Debug("Pattern: %q", cfg.Pattern)
	logger.Debug("File: %s", path)
	logger.Debug("Line numbers: %t, invert: %t", cfg.ShowLineNumbers, cfg.InvertMatch)

	rc, err := s.fs.Open(path)
	if err != nil {
		logger.Warn("Open failed: %v", err)
		return domain.ScanResult{}, err
	}
	defer rc.Close()

	src := s.newSource(rc)
	scanner := NewScanner(cfg, s.opts...)
	out := bufio.NewWriter(w)

	res, err := scanner.Scan(src.Lines(), func(line string) error {
		if _, err := out.WriteString(line); err != nil {
			return err
		}
		return out.WriteByte('\n')
	})
	if err != nil {
		return res, fmt.Errorf("failed to write output: %w", err)
	}
	if err := out.Flush(); err != nil {
		return res, fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("Lines read: %d, selected: %d", res.LinesRead, res.LinesSelected)

	if err := src.Err(); err != nil {
		logger.Warn("Read failed after %d lines: %v", res.LinesRead, err)
		return res, &domain.InputAccessError{Path: path, Err: err}
	}
	return res, nil
}
