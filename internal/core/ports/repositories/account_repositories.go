package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account of an org by its unique identifier.
	FindAccountByID(ctx context.Context, orgID, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its org-unique code.
	FindAccountByCode(ctx context.Context, orgID, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts of an org. Missing IDs are absent from the map.
	FindAccountsByIDs(ctx context.Context, orgID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the org's accounts ordered by code.
	ListAccounts(ctx context.Context, orgID string, filter domain.AccountFilter) ([]domain.Account, error)

	// AccountHasLines reports whether any journal line references the account.
	AccountHasLines(ctx context.Context, orgID, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A taken code yields *apperrors.DuplicateCodeError.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account that no journal line references.
	DeleteAccount(ctx context.Context, orgID, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
