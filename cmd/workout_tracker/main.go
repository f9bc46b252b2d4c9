// Package main runs the interactive workout tracker on STDIN/STDOUT.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/gymstats/session"
	"github.com/2beens/workouttracker/internal/logging"
	"github.com/2beens/workouttracker/internal/metrics"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var env, configPath string

	rootCmd := &cobra.Command{
		Use:   "workout_tracker",
		Short: "Log cardio, strength and flexibility exercises of a workout",
		Long: `Workout tracker asks for the exercises of a single workout, one at a time,
and prints the burned calories and the duration once the workout is finished.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(env, configPath, in, out)
		},
	}
	rootCmd.Flags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.Flags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "workout_tracker v%s\n", version)
		},
	})

	return rootCmd
}

func run(env, configPath string, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	done := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToConsole:     cfg.LogToConsole,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("WORKOUT_TRACKER_SENTRY_DSN"),
		SentryServerName: "workout-tracker",
	})
	defer done()

	log.Debugf("running in [%s] environment", env)

	reg := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(cfg.MetricsNamespace, "session", reg)

	w, err := session.New(in, out, metricsManager).Run()
	if err != nil {
		log.Errorf("workout session: %s", err)
		return err
	}
	log.Debugf("session ended with %d exercises", w.Count())

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile, reg); err != nil {
			log.Errorf("failed to write metrics: %s", err)
			return err
		}
		log.Debugf("metrics written to [%s]", cfg.MetricsTextfile)
	}

	return nil
}
