package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:     "entries <account>",
	Short:   "Print an account's ledger entries in sequence order",
	Example: `  treasuryctl entries boveda_monte --from 2026-01-01 --to 2026-02-01`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEntries,
}

func init() {
	rootCmd.AddCommand(entriesCmd)
	entriesCmd.Flags().String("from", "", "Inclusive start date (YYYY-MM-DD or RFC 3339)")
	entriesCmd.Flags().String("to", "", "Exclusive end date (YYYY-MM-DD or RFC 3339)")
}

func parseBound(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC 3339", raw)
}

func runEntries(cmd *cobra.Command, args []string) error {
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	from, err := parseBound(fromRaw)
	if err != nil {
		return err
	}
	to, err := parseBound(toRaw)
	if err != nil {
		return err
	}

	return withServices(cmd.Context(), func(ctx context.Context, svc *portssvc.ServiceContainer) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SEQ\tCREATED\tKIND\tAMOUNT\tBALANCE\tCOUNTER\tENTITY\tMEMO")

		params := dto.ListEntriesParams{From: from, To: to, Limit: 500}
		for {
			page, err := svc.Account.ListEntries(ctx, args[0], params)
			if err != nil {
				return err
			}
			for _, e := range page.Entries {
				counter := ""
				if e.CounterAccountKey != nil {
					counter = *e.CounterAccountKey
				}
				entity := ""
				if !e.Entity.IsZero() {
					entity = string(e.Entity.Type) + ":" + e.Entity.ID
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Seq, e.CreatedAt.Format(time.RFC3339), e.Kind,
					e.Amount.StringFixed(2), e.BalanceAfter.StringFixed(2),
					counter, entity, e.Memo,
				)
			}
			if page.NextToken == nil {
				break
			}
			params.NextToken = page.NextToken
		}
		return w.Flush()
	})
}
