// Package commands implements ledgerctl, the operator CLI of the ledger.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledger_core/internal/repositories/memory"
	"github.com/SscSPs/ledger_core/pkg/database"
)

// StorageOpener returns the repositories for cfg and a func releasing them.
type StorageOpener func(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error)

// OpenStorage opens the storage backend named by cfg.StorageDriver.
func OpenStorage(ctx context.Context, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("ledgerctl needs a persistent store; STORAGE_DRIVER=%s keeps nothing between runs", cfg.StorageDriver)
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
}

// MemoryOpener serves every command from one in-process store.
func MemoryOpener(store *memory.Store) StorageOpener {
	return func(context.Context, *config.Config) (portsrepo.RepositoryProvider, func(), error) {
		return store.Repositories(), func() {}, nil
	}
}

type rootOptions struct {
	orgID string
	actor string

	loadConfig func() (*config.Config, error)
	open       StorageOpener
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(loadConfig func() (*config.Config, error), open StorageOpener) *cobra.Command {
	opts := &rootOptions{loadConfig: loadConfig, open: open}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the general ledger: migrations, chart of accounts, fiscal periods and statements",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.orgID, "org", "", "organization id")
	rootCmd.PersistentFlags().StringVar(&opts.actor, "actor", "ledgerctl", "identity recorded on writes")

	rootCmd.AddCommand(
		newMigrateCommand(opts),
		newAccountsCommand(opts),
		newPeriodsCommand(opts),
		newReportsCommand(opts),
		newTokenCommand(opts),
	)
	return rootCmd
}

// withServices loads config, opens storage and runs fn against a service container.
func (o *rootOptions) withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *portssvc.ServiceContainer) error) error {
	if o.orgID == "" {
		return fmt.Errorf("--org is required")
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repos, release, err := o.open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer release()

	return fn(ctx, services.NewServiceContainer(cfg, repos, nil))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
