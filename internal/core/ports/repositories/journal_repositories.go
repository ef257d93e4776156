package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, orgID, entryID string) (*domain.JournalEntry, error)

	// FindEntryBySource retrieves the entry recorded for an idempotency key.
	FindEntryBySource(ctx context.Context, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries ordered by entry date then creation time, newest first.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, orgID string, filter domain.EntryFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// ListLinesByAccount retrieves the POSTED lines of one account in chronological order.
	ListLinesByAccount(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// InsertEntry persists an entry and its lines in one transaction. It share-locks the
	// period covering the entry date, runs guard, and for deduplicated sources performs the
	// idempotency check-and-insert. When the key already exists the stored entry is
	// returned with created=false.
	InsertEntry(ctx context.Context, entry domain.JournalEntry, guard PeriodGuardFunc) (stored *domain.JournalEntry, created bool, err error)

	// SetEntryStatus moves a PENDING_APPROVAL entry to POSTED or REJECTED. Approval runs
	// guard under the same period locking as InsertEntry.
	SetEntryStatus(ctx context.Context, orgID, entryID string, status domain.JournalStatus, actor string, at time.Time, guard PeriodGuardFunc) (*domain.JournalEntry, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
