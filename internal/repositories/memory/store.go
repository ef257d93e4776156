// Package memory is an in-process implementation of every ledger repository.
// A single RWMutex guards all state: writes hold it for the whole
// check-and-insert, reads take a consistent snapshot under the read lock.
package memory

import (
	"sync"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

type sourceKey struct {
	orgID    string
	source   domain.Source
	sourceID string
}

type Store struct {
	mu sync.RWMutex

	accounts map[string]*domain.Account

	entries     map[string]*domain.JournalEntry
	sourceIndex map[sourceKey]string

	periods map[string]*domain.FiscalPeriod

	// versions counts statement-affecting writes per org.
	versions map[string]int64
}

func New() *Store {
	return &Store{
		accounts:    make(map[string]*domain.Account),
		entries:     make(map[string]*domain.JournalEntry),
		sourceIndex: make(map[sourceKey]string),
		periods:     make(map[string]*domain.FiscalPeriod),
		versions:    make(map[string]int64),
	}
}

// Repositories exposes the store through the repository ports.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   s,
		JournalRepo:   s,
		PeriodRepo:    s,
		ReportingRepo: s,
	}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade = (*Store)(nil)
	_ portsrepo.PeriodRepository        = (*Store)(nil)
	_ portsrepo.ReportingRepository     = (*Store)(nil)
)

// bumpLocked moves the org's ledger version on. Callers hold the write lock.
func (s *Store) bumpLocked(orgID string) {
	s.versions[orgID]++
}

func copyEntry(e *domain.JournalEntry) *domain.JournalEntry {
	c := *e
	c.Lines = append([]domain.JournalLine(nil), e.Lines...)
	return &c
}

func inRange(date time.Time, from, to *time.Time) bool {
	d := domain.DateOnly(date)
	if from != nil && d.Before(domain.DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(domain.DateOnly(*to)) {
		return false
	}
	return true
}
