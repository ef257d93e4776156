package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

type balanceKey struct {
	accountID string
	branchID  string
}

func (s *Store) AccountBalances(_ context.Context, q domain.BalanceQuery) ([]domain.AccountBalance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balancesLocked(q), nil
}

func (s *Store) balancesLocked(q domain.BalanceQuery) []domain.AccountBalance {
	sums := make(map[balanceKey]*domain.AccountBalance)
	for _, e := range s.entries {
		if e.OrgID != q.OrgID || e.Status != domain.Posted || !inRange(e.EntryDate, q.From, q.To) {
			continue
		}
		if slices.Contains(q.ExcludeSources, e.Source) {
			continue
		}
		for _, l := range e.Lines {
			acc, ok := s.accounts[l.AccountID]
			if !ok {
				continue
			}
			if len(q.Types) > 0 && !slices.Contains(q.Types, acc.AccountType) {
				continue
			}
			if q.Branch != nil && !branchMatches(*q.Branch, l.BranchID) {
				continue
			}
			key := balanceKey{accountID: acc.AccountID}
			if q.GroupByBranch {
				key.branchID = l.BranchID
			}
			b, ok := sums[key]
			if !ok {
				b = &domain.AccountBalance{
					AccountID:   acc.AccountID,
					Code:        acc.Code,
					Name:        acc.Name,
					AccountType: acc.AccountType,
					BranchID:    key.branchID,
					Debit:       decimal.Zero,
					Credit:      decimal.Zero,
				}
				sums[key] = b
			}
			b.Debit = b.Debit.Add(l.Debit)
			b.Credit = b.Credit.Add(l.Credit)
		}
	}

	out := make([]domain.AccountBalance, 0, len(sums))
	for _, b := range sums {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].BranchID < out[j].BranchID
	})
	return out
}

func branchMatches(want, have string) bool {
	if want == domain.UnassignedBranch {
		return have == ""
	}
	return want == have
}

func (s *Store) OpenItems(_ context.Context, orgID, accountID string, asOf time.Time) ([]domain.OpenItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make(map[string]*domain.OpenItem)
	for _, e := range s.entries {
		if e.OrgID != orgID || e.Status != domain.Posted || !inRange(e.EntryDate, nil, &asOf) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID != accountID || l.DocumentRef == "" {
				continue
			}
			it, ok := items[l.DocumentRef]
			if !ok {
				it = &domain.OpenItem{DocumentRef: l.DocumentRef, OriginDate: e.EntryDate, Debit: decimal.Zero, Credit: decimal.Zero}
				items[l.DocumentRef] = it
			}
			if e.EntryDate.Before(it.OriginDate) {
				it.OriginDate = e.EntryDate
			}
			it.Debit = it.Debit.Add(l.Debit)
			it.Credit = it.Credit.Add(l.Credit)
		}
	}

	out := make([]domain.OpenItem, 0, len(items))
	for _, it := range items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OriginDate.Equal(out[j].OriginDate) {
			return out[i].OriginDate.Before(out[j].OriginDate)
		}
		return out[i].DocumentRef < out[j].DocumentRef
	})
	return out, nil
}

func (s *Store) ListBranches(_ context.Context, orgID string, from, to time.Time) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, e := range s.entries {
		if e.OrgID != orgID || e.Status != domain.Posted || e.Source == domain.SourcePeriodClose || !inRange(e.EntryDate, &from, &to) {
			continue
		}
		for _, l := range e.Lines {
			acc, ok := s.accounts[l.AccountID]
			if !ok || !acc.AccountType.IsIncomeStatement() {
				continue
			}
			branch := l.BranchID
			if branch == "" {
				branch = domain.UnassignedBranch
			}
			seen[branch] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for b := range seen {
		out = append(out, b)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) LedgerVersion(_ context.Context, orgID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[orgID], nil
}
