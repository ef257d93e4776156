package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, orgID, entryID string) (*domain.JournalEntry, error)
	FindBySource(ctx context.Context, orgID string, source domain.Source, sourceID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, orgID string, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
	ListLinesByAccount(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// AppendEntry validates and persists a candidate entry. For deduplicated sources a
	// repeat of (source, sourceID) returns the stored entry with created=false.
	AppendEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, bool, error)

	// ReverseEntry posts the mirror of a POSTED entry. Reversing twice returns the first reversal.
	ReverseEntry(ctx context.Context, orgID, entryID string, date *time.Time, actor string) (*domain.JournalEntry, bool, error)

	// ApproveEntry posts a PENDING_APPROVAL entry after re-checking its period.
	ApproveEntry(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error)

	// RejectEntry marks a PENDING_APPROVAL entry REJECTED.
	RejectEntry(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
