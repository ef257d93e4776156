package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ledger_core/internal/middleware"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var (
		subject string
		orgs    []string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if len(orgs) == 0 && opts.orgID != "" {
				orgs = []string{opts.orgID}
			}
			if len(orgs) == 0 {
				return fmt.Errorf("--org or --orgs is required")
			}
			token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, subject, orgs, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "identity the token authenticates")
	cmd.Flags().StringSliceVar(&orgs, "orgs", nil, "organizations the token grants, * for all")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
