package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

func (s *Store) coveringLocked(orgID string, date time.Time) *domain.FiscalPeriod {
	for _, p := range s.periods {
		if p.OrgID == orgID && p.Covers(date) {
			c := *p
			return &c
		}
	}
	return nil
}

func (s *Store) findPeriodLocked(orgID, periodID string) (*domain.FiscalPeriod, error) {
	p, ok := s.periods[periodID]
	if !ok || p.OrgID != orgID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("fiscal period %s not found", periodID))
	}
	return p, nil
}

func (s *Store) SavePeriod(_ context.Context, period domain.FiscalPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.periods {
		if p.OrgID == period.OrgID && p.Overlaps(period) {
			return &apperrors.PeriodOverlapError{Name: period.Name, Existing: p.Name}
		}
	}
	c := period
	s.periods[period.PeriodID] = &c
	return nil
}

func (s *Store) FindPeriodByID(_ context.Context, orgID, periodID string) (*domain.FiscalPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, err := s.findPeriodLocked(orgID, periodID)
	if err != nil {
		return nil, err
	}
	c := *p
	return &c, nil
}

func (s *Store) FindCoveringPeriod(_ context.Context, orgID string, date time.Time) (*domain.FiscalPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coveringLocked(orgID, date), nil
}

func (s *Store) ListPeriods(_ context.Context, orgID string) ([]domain.FiscalPeriod, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.FiscalPeriod, 0)
	for _, p := range s.periods {
		if p.OrgID == orgID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *Store) ClosePeriod(_ context.Context, orgID, periodID, actor string, at time.Time, build portsrepo.ClosingEntryBuilder) (*domain.FiscalPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findPeriodLocked(orgID, periodID)
	if err != nil {
		return nil, err
	}
	if !p.Status.CanTransitionTo(domain.PeriodClosed) {
		return nil, &apperrors.IllegalTransitionError{PeriodName: p.Name, From: string(p.Status), To: string(domain.PeriodClosed)}
	}

	start, end := p.StartDate, p.EndDate
	balances := s.balancesLocked(domain.BalanceQuery{
		OrgID:          orgID,
		From:           &start,
		To:             &end,
		Types:          []domain.AccountType{domain.Revenue, domain.COGS, domain.Expense},
		ExcludeSources: []domain.Source{domain.SourcePeriodClose},
		GroupByBranch:  true,
	})
	closing, err := build(*p, balances)
	if err != nil {
		return nil, err
	}
	if closing != nil {
		if _, dup := s.sourceIndex[sourceKey{orgID, closing.Source, closing.SourceID}]; dup {
			return nil, apperrors.NewConflictError(fmt.Sprintf("closing entry for period %q already exists", p.Name))
		}
		s.insertLocked(closing)
		p.ClosingEntryID = closing.EntryID
	}

	p.Status = domain.PeriodClosed
	p.ClosedBy = actor
	p.ClosedAt = &at
	c := *p
	return &c, nil
}

func (s *Store) LockPeriod(_ context.Context, orgID, periodID, actor string, at time.Time) (*domain.FiscalPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findPeriodLocked(orgID, periodID)
	if err != nil {
		return nil, err
	}
	if !p.Status.CanTransitionTo(domain.PeriodLocked) {
		return nil, &apperrors.IllegalTransitionError{PeriodName: p.Name, From: string(p.Status), To: string(domain.PeriodLocked)}
	}
	p.Status = domain.PeriodLocked
	p.LockedBy = actor
	p.LockedAt = &at
	c := *p
	return &c, nil
}
