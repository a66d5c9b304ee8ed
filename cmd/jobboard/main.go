package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmcdole/jobboard/internal/adapter"
	"github.com/mmcdole/jobboard/internal/api"
	"github.com/mmcdole/jobboard/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobboard",
		Short:         "Browse and post jobs and specialists from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context())
		},
	}

	root.AddCommand(
		newServeCmd(),
		newLoginCmd(),
		newRegisterCmd(),
		newConfigCmd(),
	)
	return root
}

func runTUI(ctx context.Context) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting jobboard", "version", Version, "api", cfg.API.BaseURL)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	repos := tui.Repositories{
		Jobs:        api.NewJobRepository(client, cfg.API.JobsPath),
		Specialists: api.NewSpecialistRepository(client, cfg.API.SpecialistsPath),
	}
	opts := tui.Options{Theme: cfg.UI.Theme, FilterMode: cfg.UI.FilterMode}

	if err := tui.Run(ctx, repos, opts, logger); err != nil {
		logger.Error("TUI error", "error", err)
		return err
	}

	logger.Info("shutting down")
	return nil
}
