package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect and seed the chart of accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Create the default posting chart accounts the organization is missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				chart, err := svc.Account.SeedDefaultChart(ctx, opts.orgID, opts.actor)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "default chart present: %d accounts\n", len(chart))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts ordered by code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				accounts, err := svc.Account.ListAccounts(ctx, opts.orgID, domain.AccountFilter{})
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tNAME\tTYPE\tACTIVE")
				for _, a := range accounts {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", a.Code, a.Name, a.AccountType, a.IsActive)
				}
				return tw.Flush()
			})
		},
	})

	return cmd
}
