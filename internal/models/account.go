package models

// AccountType mirrors the account_type column.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID       string      `db:"account_id"`
	OrgID           string      `db:"org_id"`
	Code            string      `db:"code"`
	Name            string      `db:"name"`
	AccountType     AccountType `db:"account_type"`
	ParentAccountID *string     `db:"parent_account_id"` // NULL for top-level accounts
	Description     string      `db:"description"`
	IsActive        bool        `db:"is_active"`
	AuditFields
}
