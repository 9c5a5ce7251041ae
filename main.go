package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/harrisonrobin/tasktimer/pkg/config"
	"github.com/harrisonrobin/tasktimer/pkg/harness"
	"github.com/harrisonrobin/tasktimer/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, harness.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		level      zapcore.Level
		checks     []string
		saveConfig bool
	)

	cmd := &cobra.Command{
		Use:           "tasktimer",
		Short:         "Run the TaskTimer self-test checks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Priority: Flag > Env > Config file > Default
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = level.String()
			}
			if cmd.Flags().Changed("check") {
				cfg.Checks = checks
			}

			if saveConfig {
				if err := config.Save(cfg); err != nil {
					return fmt.Errorf("error saving config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved")
				return nil
			}

			lvl, err := logger.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			log := logger.New(cmd.ErrOrStderr(), lvl)
			defer log.Sync()

			runner := harness.NewRunner(cmd.OutOrStdout(), log, harness.WithFilter(cfg.Checks))
			report, err := runner.Run(cmd.Context(), harness.DefaultChecks())
			log.Debug("Run finished",
				zap.Int("passed", report.Passed),
				zap.Int("failed", report.Failed),
				zap.Duration("took", report.Duration))
			return err
		},
	}

	logger.LevelVar(cmd.Flags(), &level, "log-level", zapcore.InfoLevel, "log level: debug, info, warn, error")
	cmd.Flags().StringSliceVar(&checks, "check", nil, "run only the named check (repeatable)")
	cmd.Flags().BoolVar(&saveConfig, "save-config", false, "persist --log-level and --check as defaults and exit")

	return cmd
}
