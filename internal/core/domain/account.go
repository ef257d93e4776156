package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	COGS      AccountType = "COGS"
	Expense   AccountType = "EXPENSE"
)

// AllAccountTypes lists every account type in statement order.
var AllAccountTypes = []AccountType{Asset, Liability, Equity, Revenue, COGS, Expense}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, COGS, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether balances of this type grow with debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == COGS || t == Expense
}

// IsIncomeStatement reports whether the type is zeroed into retained earnings on close.
func (t AccountType) IsIncomeStatement() bool {
	return t == Revenue || t == COGS || t == Expense
}

// Account represents a ledger account within an organization's chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"`
	OrgID           string      `json:"orgID"`
	Code            string      `json:"code"` // unique per org
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID"` // empty when top level
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// AccountFilter narrows ListAccounts. Nil fields are not applied.
type AccountFilter struct {
	Type   *AccountType
	Active *bool
}

// Matches reports whether the account passes the filter.
func (f AccountFilter) Matches(a Account) bool {
	if f.Type != nil && a.AccountType != *f.Type {
		return false
	}
	if f.Active != nil && a.IsActive != *f.Active {
		return false
	}
	return true
}

// AccountNode is one node of the derived account tree.
type AccountNode struct {
	Account
	Children []*AccountNode `json:"children"`
}

// BuildAccountTree derives the children index from parent references.
// Accounts whose parent is missing from the slice become roots.
func BuildAccountTree(accounts []Account) []*AccountNode {
	nodes := make(map[string]*AccountNode, len(accounts))
	for _, a := range accounts {
		nodes[a.AccountID] = &AccountNode{Account: a}
	}

	roots := make([]*AccountNode, 0)
	for _, a := range accounts {
		node := nodes[a.AccountID]
		if parent, ok := nodes[a.ParentAccountID]; ok && a.ParentAccountID != "" {
			parent.Children = append(parent.Children, node)
			continue
		}
		roots = append(roots, node)
	}
	return roots
}
