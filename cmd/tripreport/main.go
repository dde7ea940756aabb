package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/tripreport/internal/config"
	"github.com/mmynk/tripreport/internal/filter"
	"github.com/mmynk/tripreport/internal/metrics"
	"github.com/mmynk/tripreport/internal/models"
	"github.com/mmynk/tripreport/internal/parser"
	"github.com/mmynk/tripreport/internal/service"
	"github.com/mmynk/tripreport/internal/source"
	"github.com/mmynk/tripreport/internal/storage/sqlite"
	"github.com/mmynk/tripreport/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "tripreport [file...]",
		Short: "Report miles driven and average speed per driver",
		Long: `tripreport reads command logs of Driver and Trip records and prints,
for every registered driver, the total miles driven and the average speed.
Trips averaging below --min-mph or above --max-mph are discarded.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.Float64("min-mph", filter.DefaultMinMPH, "slowest admitted average trip speed")
	flags.Float64("max-mph", filter.DefaultMaxMPH, "fastest admitted average trip speed")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("metrics-file", "", "write Prometheus metrics to this file after the run")
	flags.String("db-path", "", "read drivers and trips from this SQLite database instead of files")
	flags.String("config", "", "config file (default ./tripreport.yaml if present)")

	return cmd
}

func run(ctx context.Context, v *viper.Viper, files []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, logging.ParseLevel(cfg.LogLevel)).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	if cfg.DBPath == "" && len(files) == 0 {
		return fmt.Errorf("no input: pass at least one file or --db-path")
	}

	recorder := metrics.NewRecorder()
	runErr := report(ctx, cfg, files, recorder, logger, stdout)

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("Failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}
	return runErr
}

// report processes every input independently, stopping at the first failure.
func report(ctx context.Context, cfg *config.Config, files []string, recorder *metrics.Recorder, logger *slog.Logger, stdout io.Writer) error {
	opts := parser.Options{
		TripFilters: []filter.Filter[models.Trip]{filter.NewMinMaxSpeed(cfg.MinMPH, cfg.MaxMPH, logger)},
		Observer:    recorder,
		Logger:      logger,
	}

	if cfg.DBPath != "" {
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			logger.Error("Failed to open database", "error", err)
			return err
		}
		defer store.Close()

		return render(ctx, service.NewProcessor(store.Parser(opts),
			service.WithLogger(logger.With("source", "sqlite")),
			service.WithReportObserver(recorder),
		), stdout)
	}

	for _, file := range files {
		fileLogger := logger.With("file", file)

		lines, err := source.ReadFile(file)
		if err != nil {
			fileLogger.Error("Failed to read input", "error", err)
			return fmt.Errorf("%s: %w", file, err)
		}

		fileOpts := opts
		fileOpts.Logger = fileLogger
		err = render(ctx, service.NewProcessor(parser.NewLineParser(lines, fileOpts),
			service.WithLogger(fileLogger),
			service.WithReportObserver(recorder),
		), stdout)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func render(ctx context.Context, proc *service.Processor, stdout io.Writer) error {
	result, err := proc.Process(ctx)
	if err != nil {
		return err
	}
	_, err = result.WriteTo(stdout)
	return err
}
