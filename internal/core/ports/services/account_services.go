package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	GetAccount(ctx context.Context, orgID, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, orgID, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, orgID string, filter domain.AccountFilter) ([]domain.Account, error)
	// AccountTree returns the org's accounts as a forest derived from parent references.
	AccountTree(ctx context.Context, orgID string) ([]*domain.AccountNode, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, orgID string, req dto.CreateAccountRequest, actor string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, orgID, accountID string, req dto.UpdateAccountRequest, actor string) (*domain.Account, error)
	// DeactivateAccount blocks future postings to the account. History is untouched.
	DeactivateAccount(ctx context.Context, orgID, accountID, actor string) (*domain.Account, error)
	// DeleteAccount removes an account no journal line references.
	DeleteAccount(ctx context.Context, orgID, accountID string) error
	// SeedDefaultChart creates the missing accounts of the default posting chart.
	SeedDefaultChart(ctx context.Context, orgID, actor string) ([]domain.Account, error)
}

// AccountResolver resolves the account playing a posting role in an org.
// A missing or inactive account yields *apperrors.MissingAccountError.
type AccountResolver interface {
	ResolveAccount(ctx context.Context, orgID string, role domain.AccountRole) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountResolver
}
