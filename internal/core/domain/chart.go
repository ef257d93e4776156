package domain

// AccountRole names an account the posting adapters need, independent of its code.
type AccountRole string

const (
	RoleCash                   AccountRole = "CASH"
	RoleCashSafe               AccountRole = "CASH_SAFE"
	RoleBank                   AccountRole = "BANK"
	RoleAccountsReceivable     AccountRole = "ACCOUNTS_RECEIVABLE"
	RoleInventory              AccountRole = "INVENTORY"
	RoleServiceProviderPayable AccountRole = "SERVICE_PROVIDER_PAYABLE"
	RolePayrollPayable         AccountRole = "PAYROLL_PAYABLE"
	RoleRetainedEarnings       AccountRole = "RETAINED_EARNINGS"
	RoleSalesRevenue           AccountRole = "SALES_REVENUE"
	RoleCOGS                   AccountRole = "COGS"
	RoleWastageExpense         AccountRole = "WASTAGE_EXPENSE"
	RolePayrollExpense         AccountRole = "PAYROLL_EXPENSE"
	RoleRentExpense            AccountRole = "RENT_EXPENSE"
	RoleUtilitiesExpense       AccountRole = "UTILITIES_EXPENSE"
	RoleMarketingExpense       AccountRole = "MARKETING_EXPENSE"
)

// ChartEntry is one account of the default posting chart.
type ChartEntry struct {
	Role AccountRole
	Code string
	Name string
	Type AccountType
}

// DefaultChart is the chart seeded for new organizations, in code order.
var DefaultChart = []ChartEntry{
	{RoleCash, "1000", "Cash", Asset},
	{RoleCashSafe, "1010", "Cash Safe", Asset},
	{RoleBank, "1020", "Bank", Asset},
	{RoleAccountsReceivable, "1100", "Accounts Receivable", Asset},
	{RoleInventory, "1200", "Inventory", Asset},
	{RoleServiceProviderPayable, "2000", "Service-Provider Payable", Liability},
	{RolePayrollPayable, "2100", "Payroll Payable", Liability},
	{RoleRetainedEarnings, "3100", "Retained Earnings", Equity},
	{RoleSalesRevenue, "4000", "Sales Revenue", Revenue},
	{RoleCOGS, "5000", "Cost of Goods Sold", COGS},
	{RoleWastageExpense, "6100", "Wastage Expense", Expense},
	{RolePayrollExpense, "6200", "Payroll Expense", Expense},
	{RoleRentExpense, "6300", "Rent Expense", Expense},
	{RoleUtilitiesExpense, "6400", "Utilities Expense", Expense},
	{RoleMarketingExpense, "6500", "Marketing Expense", Expense},
}

// PostingAccounts maps each role to the account code used for it in an org.
type PostingAccounts map[AccountRole]string

// DefaultPostingAccounts returns the role to code map of DefaultChart.
func DefaultPostingAccounts() PostingAccounts {
	m := make(PostingAccounts, len(DefaultChart))
	for _, e := range DefaultChart {
		m[e.Role] = e.Code
	}
	return m
}

// Code returns the configured code for role, falling back to the default chart.
func (p PostingAccounts) Code(role AccountRole) string {
	if code, ok := p[role]; ok && code != "" {
		return code
	}
	for _, e := range DefaultChart {
		if e.Role == role {
			return e.Code
		}
	}
	return ""
}

// PostingResult is what an adapter returns: the created-or-existing entry.
type PostingResult struct {
	Entry   *JournalEntry `json:"entry"`
	Created bool          `json:"created"`
	// Related holds companion entries written for the same event, such as the SALE_COGS entry of a sale.
	Related []PostingResult `json:"related,omitempty"`
}
