// Package cli implements the linesift command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/linesift/internal/core/domain"
	"github.com/custodia-labs/linesift/internal/core/ports/driven"
)

const usageHint = "Try 'linesift --help' for more information."

const helpText = `usage: linesift [-n] [-v] PATTERN FILE
       linesift --help

Search FILE for lines containing PATTERN and print them to standard
output in their original order.

PATTERN is matched as literal text, not as a regular expression, and
without regard to case. An empty PATTERN matches every line.

Options:
  -n        prefix each printed line with its line number and a colon
  -v        invert the match: print lines that do NOT contain PATTERN
  --help    show this help and exit

Options may be combined, as in -nv.

Exit status is 0 if at least one line was printed, and 1 if no line
was printed or an error occurred.
`

var (
	showLineNumbers bool
	invertMatch     bool
	verbose         bool
	unicodeFold     bool
)

// fileSystem opens input files. Set by main via SetFileSystem.
var fileSystem driven.FileSystem

var rootCmd = &cobra.Command{
	Use:                   "linesift [-n] [-v] PATTERN FILE",
	Short:                 "Print lines of a file that contain a literal pattern",
	Long:                  helpText,
	Args:                  validateArgs,
	RunE:                  runScan,
	SilenceErrors:         true,
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&showLineNumbers, "line-number", "n", false, "prefix each line with its line number")
	rootCmd.Flags().BoolVarP(&invertMatch, "invert-match", "v", false, "select non-matching lines")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log scan details to stderr")
	rootCmd.Flags().BoolVar(&unicodeFold, "unicode", false, "use full Unicode case folding")
	// Registered here so cobra does not add its -h shorthand.
	rootCmd.Flags().Bool("help", false, "show this help and exit")
	_ = rootCmd.Flags().MarkHidden("verbose")
	_ = rootCmd.Flags().MarkHidden("unicode")
	_ = rootCmd.Flags().MarkHidden("help")

	// PATTERN and FILE end option parsing: "hello -n.txt" names a file.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.UsageError{Message: "Invalid option: " + invalidOption(err)}
	})
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), helpText)
	})
}

// SetFileSystem sets the filesystem used to open input files.
func SetFileSystem(fs driven.FileSystem) {
	fileSystem = fs
}

// Execute runs the command line and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "--help" {
		fmt.Fprint(stdout, helpText)
		return 0
	}

	resetFlags()
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return exitStatus(rootCmd.Execute(), stderr)
}

// exitStatus reports err on stderr and maps it to an exit status.
func exitStatus(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var usageErr *domain.UsageError
	var accessErr *domain.InputAccessError
	switch {
	case errors.Is(err, domain.ErrNoMatch):
		// Not an error: nothing was selected.
	case errors.As(err, &usageErr):
		fmt.Fprintf(stderr, "Error: %s\n", usageErr.Message)
		fmt.Fprintln(stderr, usageHint)
	case errors.As(err, &accessErr):
		fmt.Fprintln(stderr, accessMessage(accessErr))
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func accessMessage(err *domain.InputAccessError) string {
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		return fmt.Sprintf("Error: File '%s' not found.", err.Path)
	case errors.Is(err, domain.ErrFileNotReadable):
		return fmt.Sprintf("Error: File '%s' is not readable. Check permissions.", err.Path)
	default:
		return fmt.Sprintf("Error: Could not read file '%s': %v", err.Path, err.Err)
	}
}

func validateArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &domain.UsageError{Message: "Missing PATTERN and FILE arguments."}
	case len(args) == 1:
		return &domain.UsageError{Message: "Missing FILE argument."}
	case len(args) > 2:
		return &domain.UsageError{Message: "Too many arguments."}
	}
	return nil
}

// invalidOption extracts the offending option from a pflag parse error,
// which reads "unknown shorthand flag: 'x' in -nx" or "unknown flag: --foo".
func invalidOption(err error) string {
	if errors.Is(err, pflag.ErrHelp) {
		// pflag reports an undefined -h as a help request.
		return "-h"
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "unknown shorthand flag: '"); ok {
		if r, size := utf8.DecodeRuneInString(rest); size > 0 && r != utf8.RuneError {
			return "-" + string(r)
		}
	}
	if rest, ok := strings.CutPrefix(msg, "unknown flag: "); ok {
		return rest
	}
	return msg
}

// resetFlags restores every flag to its default so repeated Execute calls
// do not see values from an earlier run.
func resetFlags() {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
