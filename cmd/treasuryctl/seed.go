package main

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/app"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create catalog accounts that do not exist yet",
	Long: `Create the accounts listed in ACCOUNT_CATALOG_FILE, or the built-in catalog
when no file is configured. Existing accounts are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			created, err := app.SeedCatalog(ctx, cli.cfg, svc.Account)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d account(s) created\n", created)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
