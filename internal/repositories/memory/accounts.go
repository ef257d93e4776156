package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
)

func (s *Store) FindAccountByID(_ context.Context, orgID, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[accountID]
	if !ok || a.OrgID != orgID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	c := *a
	return &c, nil
}

func (s *Store) FindAccountByCode(_ context.Context, orgID, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.OrgID == orgID && a.Code == code {
			c := *a
			return &c, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("account with code %s not found", code))
}

func (s *Store) FindAccountsByIDs(_ context.Context, orgID string, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if a, ok := s.accounts[id]; ok && a.OrgID == orgID {
			out[id] = *a
		}
	}
	return out, nil
}

func (s *Store) ListAccounts(_ context.Context, orgID string, filter domain.AccountFilter) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, 0)
	for _, a := range s.accounts {
		if a.OrgID == orgID && filter.Matches(*a) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) AccountHasLines(_ context.Context, orgID, accountID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountHasLinesLocked(orgID, accountID), nil
}

func (s *Store) accountHasLinesLocked(orgID, accountID string) bool {
	for _, e := range s.entries {
		if e.OrgID != orgID {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID == accountID {
				return true
			}
		}
	}
	return false
}

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.OrgID == account.OrgID && a.Code == account.Code {
			return &apperrors.DuplicateCodeError{OrgID: account.OrgID, Code: account.Code}
		}
	}
	c := account
	s.accounts[account.AccountID] = &c
	s.bumpLocked(account.OrgID)
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.AccountID]
	if !ok || existing.OrgID != account.OrgID {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", account.AccountID))
	}
	if account.AccountType != existing.AccountType && s.accountHasLinesLocked(account.OrgID, account.AccountID) {
		return apperrors.NewStateError(fmt.Sprintf("account %s has postings; its type can no longer change", existing.Code))
	}
	c := account
	c.Code = existing.Code
	c.CreatedAt, c.CreatedBy = existing.CreatedAt, existing.CreatedBy
	s.accounts[account.AccountID] = &c
	s.bumpLocked(account.OrgID)
	return nil
}

func (s *Store) DeleteAccount(_ context.Context, orgID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[accountID]
	if !ok || a.OrgID != orgID {
		return apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", accountID))
	}
	if s.accountHasLinesLocked(orgID, accountID) {
		return apperrors.NewStateError(fmt.Sprintf("account %s is referenced by journal lines", a.Code))
	}
	for _, other := range s.accounts {
		if other.OrgID == orgID && other.ParentAccountID == accountID {
			return apperrors.NewStateError(fmt.Sprintf("account %s has child accounts", a.Code))
		}
	}
	delete(s.accounts, accountID)
	s.bumpLocked(orgID)
	return nil
}
