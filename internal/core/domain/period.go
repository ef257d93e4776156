package domain

import "time"

// PeriodStatus is the lifecycle state of a fiscal period. It only advances.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
	PeriodLocked PeriodStatus = "LOCKED"
)

func (s PeriodStatus) rank() int {
	switch s {
	case PeriodOpen:
		return 0
	case PeriodClosed:
		return 1
	case PeriodLocked:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether next is exactly one step forward from s.
func (s PeriodStatus) CanTransitionTo(next PeriodStatus) bool {
	return s.rank() >= 0 && next.rank() == s.rank()+1
}

// AcceptsPostings reports whether entries may be dated inside a period with this status.
func (s PeriodStatus) AcceptsPostings() bool {
	return s == PeriodOpen
}

// FiscalPeriod is an inclusive date range whose status gates postings.
type FiscalPeriod struct {
	PeriodID       string       `json:"periodID"`
	OrgID          string       `json:"orgID"`
	Name           string       `json:"name"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	ClosedBy       string       `json:"closedBy,omitempty"`
	ClosedAt       *time.Time   `json:"closedAt,omitempty"`
	LockedBy       string       `json:"lockedBy,omitempty"`
	LockedAt       *time.Time   `json:"lockedAt,omitempty"`
	ClosingEntryID string       `json:"closingEntryID,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	CreatedBy      string       `json:"createdBy"`
}

// Covers reports whether date falls inside the period, both ends inclusive.
func (p FiscalPeriod) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// Overlaps reports whether two periods share at least one day.
func (p FiscalPeriod) Overlaps(other FiscalPeriod) bool {
	return !DateOnly(p.EndDate).Before(DateOnly(other.StartDate)) &&
		!DateOnly(other.EndDate).Before(DateOnly(p.StartDate))
}
