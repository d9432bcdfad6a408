package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const rootLong = `gjhint checks every *.geojson file directly inside a directory
(the current directory when none is given) and reports each invalid file.

Each file is parsed as JSON, then hinted against the GeoJSON rules: types,
required members, position arity, closed linear rings, bounding boxes and
foreign members. Defaults can be set per project in .gjhint.yaml.

Exit Codes:
  0  - Success (all files valid)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - File or directory could not be read
  11 - A file is not valid JSON
  12 - A file is not valid GeoJSON`

type rootOptions struct {
	all     bool
	noColor bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:               "gjhint [dir]",
		Short:             "Validate the GeoJSON files in a directory",
		Long:              rootLong,
		Args:              OptionalDirectory,
		ValidArgsFunction: completeDirectories,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output on stderr")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Hint every file and report all invalid ones instead of stopping at the first")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun '%s --help' for usage.\n", err, rootCmd.CommandPath())
	}
	return err
}

// reportedError marks an error the run has already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
