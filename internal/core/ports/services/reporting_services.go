package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance through asOf (nil means all time)
	TrialBalance(ctx context.Context, orgID string, asOf *time.Time, branch *string) (*domain.TrialBalanceReport, error)

	// ProfitAndLoss generates a profit and loss report for a date range, closing entries excluded
	ProfitAndLoss(ctx context.Context, orgID string, from, to time.Time, branch *string) (*domain.PAndLReport, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, orgID string, asOf time.Time) (*domain.BalanceSheetReport, error)

	APAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error)
	ARAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error)

	// AccountLedger lists an account's lines with a running balance on its normal side
	AccountLedger(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error)
}

// SummaryService is the only sanctioned source of financial metrics for other modules.
type SummaryService interface {
	GetFinancialSummary(ctx context.Context, orgID string, branch *string, from, to time.Time) (*domain.FinancialSummary, error)
	// GetBranchRollup computes every branch concurrently and verifies they add up to the org total.
	GetBranchRollup(ctx context.Context, orgID string, from, to time.Time) (*domain.BranchRollup, error)
}
