package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data.
// Each call reads one consistent snapshot of POSTED entries.
type ReportingRepository interface {
	// AccountBalances sums debits and credits per account (and per branch when requested)
	// for the lines selected by q. Accounts without activity are omitted.
	AccountBalances(ctx context.Context, q domain.BalanceQuery) ([]domain.AccountBalance, error)

	// OpenItems groups the lines of one account by document reference up to asOf.
	// Lines without a document reference are ignored.
	OpenItems(ctx context.Context, orgID, accountID string, asOf time.Time) ([]domain.OpenItem, error)

	// ListBranches returns the distinct branch tags used by income-statement lines in the
	// window. Untagged lines are reported as domain.UnassignedBranch.
	ListBranches(ctx context.Context, orgID string, from, to time.Time) ([]string, error)
	// LedgerVersion returns the org's write counter. Every committed write that can change
	// a statement (entries, approvals, account changes) increments it in the same transaction.
	LedgerVersion(ctx context.Context, orgID string) (int64, error)
}
