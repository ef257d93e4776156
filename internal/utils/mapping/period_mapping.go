package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelFiscalPeriod converts a domain FiscalPeriod to a model FiscalPeriod
func ToModelFiscalPeriod(d domain.FiscalPeriod) models.FiscalPeriod {
	return models.FiscalPeriod{
		PeriodID:       d.PeriodID,
		OrgID:          d.OrgID,
		Name:           d.Name,
		StartDate:      domain.DateOnly(d.StartDate),
		EndDate:        domain.DateOnly(d.EndDate),
		Status:         string(d.Status),
		ClosedBy:       nullable(d.ClosedBy),
		ClosedAt:       d.ClosedAt,
		LockedBy:       nullable(d.LockedBy),
		LockedAt:       d.LockedAt,
		ClosingEntryID: nullable(d.ClosingEntryID),
		CreatedAt:      d.CreatedAt,
		CreatedBy:      d.CreatedBy,
	}
}

// ToDomainFiscalPeriod converts a model FiscalPeriod to a domain FiscalPeriod
func ToDomainFiscalPeriod(m models.FiscalPeriod) domain.FiscalPeriod {
	return domain.FiscalPeriod{
		PeriodID:       m.PeriodID,
		OrgID:          m.OrgID,
		Name:           m.Name,
		StartDate:      domain.DateOnly(m.StartDate),
		EndDate:        domain.DateOnly(m.EndDate),
		Status:         domain.PeriodStatus(m.Status),
		ClosedBy:       deref(m.ClosedBy),
		ClosedAt:       m.ClosedAt,
		LockedBy:       deref(m.LockedBy),
		LockedAt:       m.LockedAt,
		ClosingEntryID: deref(m.ClosingEntryID),
		CreatedAt:      m.CreatedAt,
		CreatedBy:      m.CreatedBy,
	}
}
