package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ImbalancedEntryError is returned when an entry's debits and credits differ.
type ImbalancedEntryError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *ImbalancedEntryError) Error() string {
	return fmt.Sprintf("entry does not balance: debits %s, credits %s", e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}

func (e *ImbalancedEntryError) Unwrap() error { return ErrValidation }

// MalformedLineError describes a journal line that breaks the one-sided, two-decimal rule.
type MalformedLineError struct {
	LineNo int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.LineNo, e.Reason)
}

func (e *MalformedLineError) Unwrap() error { return ErrValidation }

// MissingAccountError is a chart-of-accounts configuration defect: a posting needs a code the org lacks.
type MissingAccountError struct {
	OrgID string
	Role  string
	Code  string
}

func (e *MissingAccountError) Error() string {
	return fmt.Sprintf("org %s has no active %s account (code %s)", e.OrgID, e.Role, e.Code)
}

func (e *MissingAccountError) Unwrap() error { return ErrValidation }

// UnknownAccountError is returned when a line references an account outside the org.
type UnknownAccountError struct {
	OrgID     string
	AccountID string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("account %s does not exist in org %s", e.AccountID, e.OrgID)
}

func (e *UnknownAccountError) Unwrap() error { return ErrNotFound }

// DuplicateCodeError is returned when an account code is already taken in the org.
type DuplicateCodeError struct {
	OrgID string
	Code  string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("account code %s already exists in org %s", e.Code, e.OrgID)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrConflict }

// CyclicHierarchyError is returned when a reparent would make an account its own ancestor.
type CyclicHierarchyError struct {
	AccountID string
	ParentID  string
}

func (e *CyclicHierarchyError) Error() string {
	return fmt.Sprintf("account %s cannot be placed under %s: %s is its descendant", e.AccountID, e.ParentID, e.ParentID)
}

func (e *CyclicHierarchyError) Unwrap() error { return ErrConflict }

// PeriodOverlapError is returned when a new period intersects an existing one.
type PeriodOverlapError struct {
	Name     string
	Existing string
}

func (e *PeriodOverlapError) Error() string {
	return fmt.Sprintf("period %q overlaps existing period %q", e.Name, e.Existing)
}

func (e *PeriodOverlapError) Unwrap() error { return ErrConflict }

// PeriodLockedError rejects a posting dated inside a CLOSED or LOCKED period.
type PeriodLockedError struct {
	PeriodID   string
	PeriodName string
	Status     string
}

func (e *PeriodLockedError) Error() string {
	return fmt.Sprintf("fiscal period %q is %s and does not accept postings", e.PeriodName, e.Status)
}

func (e *PeriodLockedError) Unwrap() error { return ErrState }

// IllegalTransitionError rejects a period lifecycle move that is not forward by one step.
type IllegalTransitionError struct {
	PeriodName string
	From       string
	To         string
}

func (e *IllegalTransitionError) Error() string {
	switch {
	case e.To == "CLOSED" && (e.From == "CLOSED" || e.From == "LOCKED"):
		return fmt.Sprintf("fiscal period %q is already closed", e.PeriodName)
	case e.To == "LOCKED" && e.From == "LOCKED":
		return fmt.Sprintf("fiscal period %q is already locked", e.PeriodName)
	}
	return fmt.Sprintf("fiscal period %q cannot move from %s to %s", e.PeriodName, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrState }

// ConsistencyError reports a violated ledger invariant detected on a read.
type ConsistencyError struct {
	Check string
	Left  decimal.Decimal
	Right decimal.Decimal
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency check %q failed: %s != %s", e.Check, e.Left.StringFixed(2), e.Right.StringFixed(2))
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }
