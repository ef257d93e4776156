package accounting

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalAmount signs a debit/credit pair on the account type's normal side:
// debits grow ASSET, COGS and EXPENSE accounts, credits grow the rest.
func NormalAmount(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// RunningBalances returns the cumulative normal-side balance after each line, starting
// from opening.
func RunningBalances(accountType domain.AccountType, opening decimal.Decimal, lines []domain.LedgerLine) []decimal.Decimal {
	out := make([]decimal.Decimal, len(lines))
	running := opening
	for i, l := range lines {
		running = running.Add(NormalAmount(accountType, l.Debit, l.Credit))
		out[i] = running
	}
	return out
}
