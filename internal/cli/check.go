package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/gjhint/internal/config"
	"github.com/vvka-141/gjhint/internal/files/reader"
	"github.com/vvka-141/gjhint/internal/files/scanner"
	"github.com/vvka-141/gjhint/internal/geojson"
	"github.com/vvka-141/gjhint/internal/logging"
	"github.com/vvka-141/gjhint/internal/services"
	"github.com/vvka-141/gjhint/internal/ui"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

func runCheck(cmd *cobra.Command, args []string, opts *rootOptions) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(cmd.ErrOrStderr(), verbose)

	// .env may set NO_COLOR or CLICOLOR_FORCE, so it loads before the printer.
	if err := godotenv.Load(); err == nil {
		logger.Verbose("Loaded .env")
	}
	printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.noColor)

	projectCfg, err := loadProjectConfig(dir)
	if err != nil {
		printer.RunFailed(err)
		return &reportedError{err}
	}
	if projectCfg != nil {
		logger.Verbose("Loaded %s from %s", config.ConfigFileName, dir)
	}

	hintOpts := projectCfg.HintOptions()
	reportAll := projectCfg.ReportAllEnabled()
	if cmd.Flags().Changed("all") {
		reportAll = opts.all
	}
	logger.Verbose("Hint options: %+v, report all: %t", hintOpts, reportAll)

	hinter := services.NewHintService(reader.NewReader(), geojson.NewValidator(hintOpts), printer, logger)
	runner := services.NewRunService(scanner.NewScanner(), hinter, logger, reportAll)

	outcome, err := runner.Run(cmd.Context(), dir)
	if err != nil {
		printer.RunFailed(err)
		return &reportedError{err}
	}
	printer.RunSucceeded(len(outcome.Files))
	return nil
}

// loadProjectConfig returns nil config if .gjhint.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, gjhint.NewUnexpectedError(dir, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err))
	}
	return projectCfg, nil
}
