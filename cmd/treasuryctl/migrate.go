package main

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cli.cfg.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required")
		}
		applied, err := database.RunMigrations(cli.cfg.DatabaseURL, cli.cfg.MigrationsPath, cli.logger)
		if err != nil {
			return err
		}
		if applied {
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
