package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// PeriodRepository persists fiscal periods and performs their lifecycle transitions.
type PeriodRepository interface {
	// SavePeriod persists a new period. Overlap with an existing period of the org
	// yields *apperrors.PeriodOverlapError.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) error

	FindPeriodByID(ctx context.Context, orgID, periodID string) (*domain.FiscalPeriod, error)

	// FindCoveringPeriod returns the period containing date, or nil when there is none.
	FindCoveringPeriod(ctx context.Context, orgID string, date time.Time) (*domain.FiscalPeriod, error)

	// ListPeriods returns the org's periods ordered by start date.
	ListPeriods(ctx context.Context, orgID string) ([]domain.FiscalPeriod, error)

	// ClosePeriod exclusively locks the period, checks OPEN -> CLOSED is legal, sums the
	// POSTED income-statement lines dated in the period per (account, branch), inserts the
	// entry produced by build (if any) and marks the period CLOSED, all atomically.
	ClosePeriod(ctx context.Context, orgID, periodID, actor string, at time.Time, build ClosingEntryBuilder) (*domain.FiscalPeriod, error)

	// LockPeriod exclusively locks the period and moves it CLOSED -> LOCKED.
	LockPeriod(ctx context.Context, orgID, periodID, actor string, at time.Time) (*domain.FiscalPeriod, error)
}
