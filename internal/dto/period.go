package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreatePeriodRequest defines the body of POST /periods.
type CreatePeriodRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// PeriodResponse defines the data returned for a fiscal period.
type PeriodResponse struct {
	PeriodID       string              `json:"periodID"`
	Name           string              `json:"name"`
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	Status         domain.PeriodStatus `json:"status"`
	ClosedBy       string              `json:"closedBy,omitempty"`
	ClosedAt       *time.Time          `json:"closedAt,omitempty"`
	LockedBy       string              `json:"lockedBy,omitempty"`
	LockedAt       *time.Time          `json:"lockedAt,omitempty"`
	ClosingEntryID string              `json:"closingEntryID,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy"`
}

// ToPeriodResponse converts a domain.FiscalPeriod to its DTO.
func ToPeriodResponse(p *domain.FiscalPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:       p.PeriodID,
		Name:           p.Name,
		StartDate:      p.StartDate.Format(DateLayout),
		EndDate:        p.EndDate.Format(DateLayout),
		Status:         p.Status,
		ClosedBy:       p.ClosedBy,
		ClosedAt:       p.ClosedAt,
		LockedBy:       p.LockedBy,
		LockedAt:       p.LockedAt,
		ClosingEntryID: p.ClosingEntryID,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
	}
}

// ToPeriodResponses converts a slice of periods.
func ToPeriodResponses(periods []domain.FiscalPeriod) []PeriodResponse {
	res := make([]PeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToPeriodResponse(&periods[i])
	}
	return res
}
