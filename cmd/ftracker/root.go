package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ftracker/internal/config"
	"github.com/garrettladley/ftracker/internal/report"
	"github.com/garrettladley/ftracker/internal/training"
	"github.com/garrettladley/ftracker/internal/version"
	"github.com/garrettladley/ftracker/internal/xslog"
)

type app struct {
	format report.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ftracker",
		Short: "Workout statistics from sensor packages",
		Long: "Computes distance, mean speed and spent calories for swimming (SWM), " +
			"running (RUN) and race walking (WLK) packages.\n" +
			"Without a subcommand it reports on the built-in sample packages.",
		Version:           version.Get(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.report(cmd, training.DefaultPackages)
		},
	}

	rootCmd.PersistentFlags().Var(&a.format, "format", "report format: text, json or pretty (default from FTRACKER_FORMAT)")

	rootCmd.AddCommand(a.calcCmd())
	rootCmd.AddCommand(codesCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if a.format == "" {
		a.format = cfg.Format
	}

	logger := xslog.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel).With(xslog.Version())
	logger.Debug("starting",
		xslog.Format(a.format.String()),
		slog.Bool("release", version.IsRelease(version.Get())),
	)

	cmd.SetContext(xslog.WithLogger(cmd.Context(), logger))
	return nil
}

func (a *app) report(cmd *cobra.Command, packages []training.Package) error {
	w, err := report.NewWriter(cmd.OutOrStdout(), a.format)
	if err != nil {
		return err
	}
	return training.Run(cmd.Context(), packages, w)
}
