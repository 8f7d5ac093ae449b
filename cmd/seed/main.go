package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/football-hub/internal/app"
	"github.com/riskibarqy/football-hub/internal/config"
	"github.com/riskibarqy/football-hub/internal/platform/id"
	"github.com/riskibarqy/football-hub/internal/platform/logging"
	"github.com/riskibarqy/football-hub/internal/seeder"
	"github.com/riskibarqy/football-hub/internal/usecase"
	"github.com/spf13/cobra"
)

type options struct {
	workers   int
	batchSize int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "seed",
		Short:        "Load players and matches from JSON exports",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&opts.workers, "workers", seeder.DefaultWorkers, "concurrent upsert workers")
	root.PersistentFlags().IntVar(&opts.batchSize, "batch-size", seeder.DefaultBatchSize, "records per upsert")

	root.AddCommand(newPlayersCmd(opts))
	root.AddCommand(newMatchesCmd(opts))

	return root
}

func newPlayersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "players <file.json>",
		Short: "Upsert players from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args[0], opts, func(ctx context.Context, runner *seeder.Runner, repos *app.Repositories, raw []byte) (seeder.Report, error) {
				return runner.Players(ctx, usecase.NewPlayerService(repos.Players), raw)
			})
		},
	}
}

func newMatchesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matches <file.json>",
		Short: "Upsert matches from a JSON array; status never moves backwards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, args[0], opts, func(ctx context.Context, runner *seeder.Runner, repos *app.Repositories, raw []byte) (seeder.Report, error) {
				return runner.Matches(ctx, usecase.NewMatchService(repos.Matches), raw)
			})
		},
	}
}

type seedFunc func(ctx context.Context, runner *seeder.Runner, repos *app.Repositories, raw []byte) (seeder.Report, error)

func runSeed(cmd *cobra.Command, path string, opts *options, seed seedFunc) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DBURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	// Transition checks read the database directly.
	cfg.CacheEnabled = false

	logger := logging.NewConsole(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx := cmd.Context()
	repos, err := app.NewRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	runner := seeder.NewRunner(opts.workers, opts.batchSize, id.NewUUIDGenerator(), logger)
	report, err := seed(ctx, runner, repos, raw)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d records loaded in %d batches (%dms)\n",
		report.Kind, report.Loaded(), report.Records, report.Batches, report.DurationMs)
	for _, failed := range report.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "  failed %v\n", failed)
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d batches failed", len(report.Failed), report.Batches)
	}
	return nil
}
