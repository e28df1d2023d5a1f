package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesift/internal/adapters/driven/source"
	"github.com/custodia-labs/linesift/internal/core/domain"
	"github.com/custodia-labs/linesift/internal/core/services"
	"github.com/custodia-labs/linesift/internal/logger"
)

func runScan(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)
	defer logger.SetVerbose(false)

	if fileSystem == nil {
		return errors.New("file system not configured")
	}

	cfg := domain.SearchConfig{
		Pattern:         args[0],
		ShowLineNumbers: showLineNumbers,
		InvertMatch:     invertMatch,
	}

	fold := services.ASCIIFold
	if unicodeFold {
		logger.Info("Using Unicode case folding")
		fold = services.UnicodeFold
	}

	svc := services.NewScanService(fileSystem, source.NewLineSource, services.WithFold(fold))
	res, err := svc.Run(cmd.Context(), cfg, args[1], cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if !res.AnyOutput {
		return domain.ErrNoMatch
	}
	return nil
}
