package main

import (
	"context"
	"encoding/json"
	"errors"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

var errDrift = errors.New("drift detected")

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Replay the ledger and compare it with account and debt projections",
	Long: `Replay every ledger entry from the catalog's opening balances and compare the
result with the stored account balances and debt holder totals.

Without --repair the command exits non-zero when drift is found.`,
	Example: `  # Report only
  treasuryctl reconcile

  # Overwrite drifted projections with the replayed figures
  treasuryctl reconcile --repair`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().Bool("repair", false, "Repair drifted projections")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	repair, _ := cmd.Flags().GetBool("repair")

	return withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		report, err := svc.Reconciliation.Reconcile(ctx, repair)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Clean() && !report.Repaired {
			return errDrift
		}
		return nil
	})
}
