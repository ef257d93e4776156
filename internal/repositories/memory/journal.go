package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
)

func (s *Store) FindEntryByID(_ context.Context, orgID, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[entryID]
	if !ok || e.OrgID != orgID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryID))
	}
	return copyEntry(e), nil
}

func (s *Store) FindEntryBySource(_ context.Context, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sourceIndex[sourceKey{orgID, source, sourceID}]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no %s entry for source id %s", source, sourceID))
	}
	return copyEntry(s.entries[id]), nil
}

func (s *Store) ListEntries(_ context.Context, orgID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor = &c
	}

	s.mu.RLock()
	matched := make([]domain.JournalEntry, 0)
	for _, e := range s.entries {
		if e.OrgID != orgID || !inRange(e.EntryDate, filter.From, filter.To) {
			continue
		}
		if filter.Source != nil && e.Source != *filter.Source {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if cursor != nil && !cursor.After(e.EntryDate, e.CreatedAt, e.EntryID) {
			continue
		}
		matched = append(matched, *copyEntry(e))
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	if limit <= 0 || len(matched) <= limit {
		return matched, nil, nil
	}
	page := matched[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.EntryID)
	return page, &token, nil
}

func (s *Store) ListLinesByAccount(_ context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.LedgerLine, 0)
	for _, e := range s.entries {
		if e.OrgID != orgID || e.Status != domain.Posted || !inRange(e.EntryDate, from, to) {
			continue
		}
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			out = append(out, domain.LedgerLine{
				EntryID:   e.EntryID,
				EntryDate: e.EntryDate,
				Source:    e.Source,
				Memo:      e.Memo,
				BranchID:  l.BranchID,
				Debit:     l.Debit,
				Credit:    l.Credit,
				CreatedAt: e.CreatedAt,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.Before(out[j].EntryDate)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].EntryID < out[j].EntryID
	})
	return out, nil
}

func (s *Store) InsertEntry(_ context.Context, entry domain.JournalEntry, guard portsrepo.PeriodGuardFunc) (*domain.JournalEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Source.Deduplicated() {
		if id, ok := s.sourceIndex[sourceKey{entry.OrgID, entry.Source, entry.SourceID}]; ok {
			return copyEntry(s.entries[id]), false, nil
		}
	}
	if guard != nil {
		if err := guard(s.coveringLocked(entry.OrgID, entry.EntryDate)); err != nil {
			return nil, false, err
		}
	}
	s.insertLocked(&entry)
	return copyEntry(&entry), true, nil
}

func (s *Store) insertLocked(entry *domain.JournalEntry) {
	stored := copyEntry(entry)
	s.entries[stored.EntryID] = stored
	s.bumpLocked(stored.OrgID)
	if stored.Source.Deduplicated() {
		s.sourceIndex[sourceKey{stored.OrgID, stored.Source, stored.SourceID}] = stored.EntryID
	}
}

func (s *Store) SetEntryStatus(_ context.Context, orgID, entryID string, status domain.JournalStatus, actor string, at time.Time, guard portsrepo.PeriodGuardFunc) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[entryID]
	if !ok || e.OrgID != orgID {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %s not found", entryID))
	}
	if e.Status != domain.PendingApproval {
		return nil, apperrors.NewStateError(fmt.Sprintf("journal entry %s is %s, not %s", entryID, e.Status, domain.PendingApproval))
	}
	if status == domain.Posted && guard != nil {
		if err := guard(s.coveringLocked(orgID, e.EntryDate)); err != nil {
			return nil, err
		}
	}
	e.Status = status
	e.ApprovedBy = actor
	e.ApprovedAt = &at
	s.bumpLocked(orgID)
	return copyEntry(e), nil
}
