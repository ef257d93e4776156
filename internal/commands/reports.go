package commands

import (
	"context"

	"github.com/spf13/cobra"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
)

func newReportsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Print financial statements as JSON",
	}

	var asOf, branch string
	tb := &cobra.Command{
		Use:   "trial-balance",
		Short: "Net debit or credit per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dto.ParseOptionalDate(asOf)
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.TrialBalance(ctx, opts.orgID, date, dto.BranchPtr(branch))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToTrialBalanceResponse(report))
			})
		},
	}
	tb.Flags().StringVar(&asOf, "as-of", "", "last day included, YYYY-MM-DD")
	tb.Flags().StringVar(&branch, "branch", "", "branch filter")
	cmd.AddCommand(tb)

	var bsAsOf string
	bs := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Assets, liabilities and equity as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dto.ParseDate(bsAsOf)
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.BalanceSheet(ctx, opts.orgID, date)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToBalanceSheetResponse(report))
			})
		},
	}
	bs.Flags().StringVar(&bsAsOf, "as-of", "", "report date, YYYY-MM-DD (required)")
	_ = bs.MarkFlagRequired("as-of")
	cmd.AddCommand(bs)

	var from, to, plBranch string
	pl := &cobra.Command{
		Use:   "profit-and-loss",
		Short: "Revenue and expenses over a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := dto.ParseDate(from)
			if err != nil {
				return err
			}
			end, err := dto.ParseDate(to)
			if err != nil {
				return err
			}
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				report, err := svc.Reporting.ProfitAndLoss(ctx, opts.orgID, start, end, dto.BranchPtr(plBranch))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.ToProfitAndLossResponse(report))
			})
		},
	}
	pl.Flags().StringVar(&from, "from", "", "first day, YYYY-MM-DD (required)")
	pl.Flags().StringVar(&to, "to", "", "last day, YYYY-MM-DD (required)")
	pl.Flags().StringVar(&plBranch, "branch", "", "branch filter")
	_ = pl.MarkFlagRequired("from")
	_ = pl.MarkFlagRequired("to")
	cmd.AddCommand(pl)

	return cmd
}
