package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/core/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/app"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// cli holds what PersistentPreRunE prepared for the subcommands.
var cli struct {
	cfg    *config.Config
	logger *slog.Logger
}

var rootCmd = &cobra.Command{
	Use:   "treasuryctl",
	Short: "Operate the treasury ledger from the command line",
	Long: `treasuryctl seeds the account catalog, prints balances and ledger entries,
runs reconciliation and applies database migrations.

It reads the same environment variables (and .env file) as the server.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if driver, _ := cmd.Flags().GetString("store"); driver != "" {
			cfg.StoreDriver = driver
		}
		cli.cfg = cfg
		cli.logger = app.NewLogger(cfg.LogLevel)
		slog.SetDefault(cli.logger)
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "Store driver override (postgres or memory)")
}

// withServices opens the stores and hands the service container to fn.
func withServices(ctx context.Context, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) error {
	res, err := app.Open(ctx, cli.cfg, cli.logger, false)
	if err != nil {
		return err
	}
	defer res.Close()
	return fn(ctx, services.NewServiceContainer(cli.cfg, res.Repos, nil))
}
