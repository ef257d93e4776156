package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// PeriodGuardSvc answers whether a date accepts postings.
type PeriodGuardSvc interface {
	// CheckPostingDate fails with *apperrors.PeriodLockedError when the covering period is
	// CLOSED or LOCKED.
	CheckPostingDate(ctx context.Context, orgID string, date time.Time) error

	// Guard returns the check to run inside a storage transaction once the covering
	// period row is locked.
	Guard(orgID string, date time.Time) portsrepo.PeriodGuardFunc
}

// PeriodSvcFacade manages fiscal periods and their lifecycle.
type PeriodSvcFacade interface {
	PeriodGuardSvc
	CreatePeriod(ctx context.Context, orgID string, req dto.CreatePeriodRequest, actor string) (*domain.FiscalPeriod, error)
	// ClosePeriod zeroes the period's income-statement accounts into retained earnings and marks it CLOSED.
	ClosePeriod(ctx context.Context, orgID, periodID, actor string) (*domain.FiscalPeriod, error)
	// LockPeriod moves a CLOSED period to LOCKED. It is irreversible.
	LockPeriod(ctx context.Context, orgID, periodID, actor string) (*domain.FiscalPeriod, error)
	GetPeriod(ctx context.Context, orgID, periodID string) (*domain.FiscalPeriod, error)
	ListPeriods(ctx context.Context, orgID string) ([]domain.FiscalPeriod, error)
}
