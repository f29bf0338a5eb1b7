package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Print every account with its balance and cumulative flows",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
			accounts, err := svc.Account.ListAccounts(ctx)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "KEY\tCATEGORY\tCURRENCY\tBALANCE\tINFLOW\tOUTFLOW\t")
			for _, acc := range accounts {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
					acc.Key, acc.Category, acc.CurrencyCode,
					acc.CurrentBalance.StringFixed(2),
					acc.CumulativeInflow.StringFixed(2),
					acc.CumulativeOutflow.StringFixed(2),
				)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}
