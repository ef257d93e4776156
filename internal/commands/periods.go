package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
)

func newPeriodsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Manage fiscal periods",
	}

	var req dto.CreatePeriodRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Open a fiscal period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				p, err := svc.Period.CreatePeriod(ctx, opts.orgID, req, opts.actor)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created period %s (%s)\n", p.Name, p.PeriodID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "period name (required)")
	create.Flags().StringVar(&req.StartDate, "start", "", "first day, YYYY-MM-DD (required)")
	create.Flags().StringVar(&req.EndDate, "end", "", "last day, YYYY-MM-DD (required)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("start")
	_ = create.MarkFlagRequired("end")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List fiscal periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				periods, err := svc.Period.ListPeriods(ctx, opts.orgID)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND\tSTATUS")
				for _, p := range periods {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.PeriodID, p.Name,
						p.StartDate.Format(dto.DateLayout), p.EndDate.Format(dto.DateLayout), p.Status)
				}
				return tw.Flush()
			})
		},
	})

	cmd.AddCommand(periodTransition(opts, "close", "Post the closing entry and mark the period CLOSED",
		func(ctx context.Context, svc *portssvc.ServiceContainer, periodID string) (*domain.FiscalPeriod, error) {
			return svc.Period.ClosePeriod(ctx, opts.orgID, periodID, opts.actor)
		}))
	cmd.AddCommand(periodTransition(opts, "lock", "Lock a CLOSED period permanently",
		func(ctx context.Context, svc *portssvc.ServiceContainer, periodID string) (*domain.FiscalPeriod, error) {
			return svc.Period.LockPeriod(ctx, opts.orgID, periodID, opts.actor)
		}))

	return cmd
}

type transitionFunc func(ctx context.Context, svc *portssvc.ServiceContainer, periodID string) (*domain.FiscalPeriod, error)

func periodTransition(opts *rootOptions, use, short string, run transitionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <period-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(cmd, func(ctx context.Context, svc *portssvc.ServiceContainer) error {
				p, err := run(ctx, svc, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "period %s is %s\n", p.Name, p.Status)
				if p.ClosingEntryID != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "closing entry %s\n", p.ClosingEntryID)
				}
				return nil
			})
		},
	}
}
