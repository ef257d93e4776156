package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the raw debit/credit total of one account (optionally per branch)
// over a query window. Every statement is derived from these rows.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	BranchID    string          `json:"branchID,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Net returns the balance on the account's normal side.
func (b AccountBalance) Net() decimal.Decimal {
	if b.AccountType.IsDebitNormal() {
		return b.Debit.Sub(b.Credit)
	}
	return b.Credit.Sub(b.Debit)
}

// BalanceQuery selects the lines summed into AccountBalance rows.
type BalanceQuery struct {
	OrgID string
	// From and To are inclusive entry dates; nil means unbounded.
	From *time.Time
	To   *time.Time
	// Branch restricts to lines tagged with this branch. UnassignedBranch selects untagged lines.
	Branch *string
	Types  []AccountType
	// ExcludeSources drops entries of these sources (P&L drops PERIOD_CLOSE).
	ExcludeSources []Source
	// GroupByBranch splits rows per branch tag.
	GroupByBranch bool
}

// UnassignedBranch is the pseudo-branch for lines with no branch tag.
const UnassignedBranch = "__unassigned__"

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	// Balance is signed on the account's normal side.
	Balance decimal.Decimal `json:"balance"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalanceReport holds the rows and their verified totals.
type TrialBalanceReport struct {
	AsOf        *time.Time        `json:"asOf,omitempty"`
	Branch      string            `json:"branch,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// PAndLReport represents a profit and loss report.
type PAndLReport struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	Branch        string          `json:"branch,omitempty"`
	Revenue       []AccountAmount `json:"revenue"`
	COGS          []AccountAmount `json:"cogs"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalCOGS     decimal.Decimal `json:"totalCOGS"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport represents a balance sheet report.
type BalanceSheetReport struct {
	AsOf             time.Time       `json:"asOf"`
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	CurrentEarnings  decimal.Decimal `json:"currentEarnings"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// AgingBucket labels an aging column.
type AgingBucket string

const (
	Bucket0To30  AgingBucket = "0-30"
	Bucket31To60 AgingBucket = "31-60"
	Bucket61To90 AgingBucket = "61-90"
	BucketOver90 AgingBucket = "90+"
)

// AgingBuckets lists the buckets in display order.
var AgingBuckets = []AgingBucket{Bucket0To30, Bucket31To60, Bucket61To90, BucketOver90}

// BucketForAge places an age in days into its bucket.
func BucketForAge(days int) AgingBucket {
	switch {
	case days <= 30:
		return Bucket0To30
	case days <= 60:
		return Bucket31To60
	case days <= 90:
		return Bucket61To90
	}
	return BucketOver90
}

// OpenItem is one document's activity on a payable or receivable account.
type OpenItem struct {
	DocumentRef string          `json:"documentRef"`
	OriginDate  time.Time       `json:"originDate"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AgingItem is one outstanding document in an aging report.
type AgingItem struct {
	DocumentRef string          `json:"documentRef"`
	OriginDate  time.Time       `json:"originDate"`
	AgeDays     int             `json:"ageDays"`
	Bucket      AgingBucket     `json:"bucket"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// AgingReport buckets outstanding payables or receivables.
type AgingReport struct {
	Kind    string                          `json:"kind"` // AP or AR
	AsOf    time.Time                       `json:"asOf"`
	Items   []AgingItem                     `json:"items"`
	Buckets map[AgingBucket]decimal.Decimal `json:"buckets"`
	Total   decimal.Decimal                 `json:"total"`
}

// LedgerLine is a journal line enriched with its entry header, for account ledgers.
type LedgerLine struct {
	EntryID        string          `json:"entryID"`
	EntryDate      time.Time       `json:"entryDate"`
	Source         Source          `json:"source"`
	Memo           string          `json:"memo"`
	BranchID       string          `json:"branchID,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	CreatedAt      time.Time       `json:"-"`
}

// FinancialSummary is the only sanctioned shape for financial metrics consumed outside the core.
type FinancialSummary struct {
	OrgID       string          `json:"orgID"`
	Branch      string          `json:"branch,omitempty"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	Revenue     decimal.Decimal `json:"revenue"`
	COGS        decimal.Decimal `json:"cogs"`
	GrossMargin decimal.Decimal `json:"grossMargin"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
}

// BranchRollup pairs per-branch summaries with the org-level total they must add up to.
type BranchRollup struct {
	Branches []FinancialSummary `json:"branches"`
	Total    FinancialSummary   `json:"total"`
}
