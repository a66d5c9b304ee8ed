package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcdole/jobboard/internal/adapter"
	"github.com/mmcdole/jobboard/internal/auth"
	"github.com/mmcdole/jobboard/internal/board"
	"github.com/mmcdole/jobboard/internal/server"
	"github.com/mmcdole/jobboard/internal/store"
)

func newServeCmd() *cobra.Command {
	var addr, dataFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local job board API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := adapter.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("data") {
				cfg.Server.DataFile = dataFile
			}

			logger := adapter.NewConsoleLogger(os.Stderr, &cfg.Logging)

			st, err := store.Open(cfg.Server.DataFile)
			if err != nil {
				return fmt.Errorf("failed to open store: %w", err)
			}
			defer st.Close()

			boardSvc := board.NewService(st.Jobs(), st.Specialists(), logger)
			authSvc := auth.NewService(st.Users(), logger)

			if cfg.Server.Seed {
				if err := boardSvc.SeedDemo(cmd.Context()); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
			}

			jobCount, err := st.Jobs().Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count jobs: %w", err)
			}
			specialistCount, err := st.Specialists().Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count specialists: %w", err)
			}

			logger.Info("starting server",
				"version", Version,
				"persistent", st.Persistent(),
				"jobs", jobCount,
				"specialists", specialistCount,
			)
			srv := server.New(boardSvc, authSvc, server.Options{
				Addr:           cfg.Server.Addr,
				AllowedOrigins: cfg.Server.AllowedOrigins,
			}, logger)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&dataFile, "data", "", "bbolt file to persist records in (overrides server.data_file)")
	return cmd
}
