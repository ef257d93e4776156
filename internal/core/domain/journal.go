package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source tags the business event that produced a journal entry.
type Source string

const (
	SourceSale                   Source = "SALE"
	SourceSaleCOGS               Source = "SALE_COGS"
	SourceCustomerPayment        Source = "CUSTOMER_PAYMENT"
	SourceRefund                 Source = "REFUND"
	SourceCashSafe               Source = "CASH_SAFE"
	SourceWastage                Source = "WASTAGE"
	SourcePayroll                Source = "PAYROLL"
	SourceServiceProviderBill    Source = "SERVICE_PROVIDER_BILL"
	SourceServiceProviderPayment Source = "SERVICE_PROVIDER_PAYMENT"
	SourceManual                 Source = "MANUAL"
	SourcePeriodClose            Source = "PERIOD_CLOSE"
	SourceReversal               Source = "REVERSAL"
)

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	switch s {
	case SourceSale, SourceSaleCOGS, SourceCustomerPayment, SourceRefund, SourceCashSafe,
		SourceWastage, SourcePayroll, SourceServiceProviderBill, SourceServiceProviderPayment,
		SourceManual, SourcePeriodClose, SourceReversal:
		return true
	}
	return false
}

// Deduplicated reports whether (source, sourceID) identifies a singular business event.
// Manual journals are never deduplicated.
func (s Source) Deduplicated() bool {
	return s != SourceManual
}

// JournalStatus indicates whether an entry is visible to statements.
type JournalStatus string

const (
	Posted          JournalStatus = "POSTED"
	PendingApproval JournalStatus = "PENDING_APPROVAL"
	Rejected        JournalStatus = "REJECTED"
)

// JournalEntry is one atomic, balanced transaction record. Immutable once persisted;
// corrections are new reversing or adjusting entries.
type JournalEntry struct {
	EntryID         string        `json:"entryID"`
	OrgID           string        `json:"orgID"`
	EntryDate       time.Time     `json:"entryDate"`
	Memo            string        `json:"memo"`
	Source          Source        `json:"source"`
	SourceID        string        `json:"sourceID,omitempty"`
	PostedBy        string        `json:"postedBy,omitempty"`
	Status          JournalStatus `json:"status"`
	ApprovedBy      string        `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time    `json:"approvedAt,omitempty"`
	ReversesEntryID string        `json:"reversesEntryID,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	Lines           []JournalLine `json:"lines"`
}

// JournalLine is a single debit or credit against one account.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	LineNo      int             `json:"lineNo"`
	AccountID   string          `json:"accountID"`
	BranchID    string          `json:"branchID,omitempty"`
	DocumentRef string          `json:"documentRef,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// IsDebit reports whether the line's nonzero side is the debit.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// SignedAmount returns debit minus credit.
func (l JournalLine) SignedAmount() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// Totals sums the debit and credit sides of the entry.
func (e JournalEntry) Totals() (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits, credits
}

// AccountIDs returns the distinct account IDs referenced by the entry's lines.
func (e JournalEntry) AccountIDs() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	ids := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}
	return ids
}

// Reversal builds the mirror lines of the entry: every debit becomes a credit and vice versa.
func (e JournalEntry) Reversal() []JournalLine {
	lines := make([]JournalLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLine{
			LineNo:      i + 1,
			AccountID:   l.AccountID,
			BranchID:    l.BranchID,
			DocumentRef: l.DocumentRef,
			Debit:       l.Credit,
			Credit:      l.Debit,
			Memo:        l.Memo,
		}
	}
	return lines
}

// EntryFilter narrows entry listings.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Source *Source
	Status *JournalStatus
}
