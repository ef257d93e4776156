package repositories

import "github.com/SscSPs/ledger_core/internal/core/domain"

// PeriodGuardFunc is evaluated inside the storage transaction that writes an entry,
// after the covering period (nil when none) has been share-locked. A non-nil error
// aborts the write.
type PeriodGuardFunc func(covering *domain.FiscalPeriod) error

// ClosingEntryBuilder turns the per (account, branch) income-statement balances of a
// period into its closing entry. Returning nil means there is nothing to zero.
type ClosingEntryBuilder func(period domain.FiscalPeriod, balances []domain.AccountBalance) (*domain.JournalEntry, error)
