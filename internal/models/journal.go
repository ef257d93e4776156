package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus mirrors the journal_entries.status column.
type JournalStatus string

// JournalEntry is a row of the journal_entries table. Nullable columns are pointers.
type JournalEntry struct {
	EntryID         string        `db:"entry_id"`
	OrgID           string        `db:"org_id"`
	EntryDate       time.Time     `db:"entry_date"`
	Memo            string        `db:"memo"`
	Source          string        `db:"source"`
	SourceID        *string       `db:"source_id"`
	PostedBy        *string       `db:"posted_by"`
	Status          JournalStatus `db:"status"`
	ApprovedBy      *string       `db:"approved_by"`
	ApprovedAt      *time.Time    `db:"approved_at"`
	ReversesEntryID *string       `db:"reverses_entry_id"`
	CreatedAt       time.Time     `db:"created_at"`
}

// JournalLine is a row of the journal_lines table. Exactly one of Debit and Credit is
// non-NULL, enforced by a CHECK constraint.
type JournalLine struct {
	LineID      string              `db:"line_id"`
	EntryID     string              `db:"entry_id"`
	LineNo      int                 `db:"line_no"`
	AccountID   string              `db:"account_id"`
	BranchID    *string             `db:"branch_id"`
	DocumentRef *string             `db:"document_ref"`
	Debit       decimal.NullDecimal `db:"debit"`
	Credit      decimal.NullDecimal `db:"credit"`
	Memo        *string             `db:"memo"`
}
