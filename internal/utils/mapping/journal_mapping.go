package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelJournalEntry converts a domain JournalEntry header to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.EntryID,
		OrgID:           d.OrgID,
		EntryDate:       domain.DateOnly(d.EntryDate),
		Memo:            d.Memo,
		Source:          string(d.Source),
		SourceID:        nullable(d.SourceID),
		PostedBy:        nullable(d.PostedBy),
		Status:          models.JournalStatus(d.Status),
		ApprovedBy:      nullable(d.ApprovedBy),
		ApprovedAt:      d.ApprovedAt,
		ReversesEntryID: nullable(d.ReversesEntryID),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainJournalEntry converts a model JournalEntry and its lines to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalLine) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:         m.EntryID,
		OrgID:           m.OrgID,
		EntryDate:       domain.DateOnly(m.EntryDate),
		Memo:            m.Memo,
		Source:          domain.Source(m.Source),
		SourceID:        deref(m.SourceID),
		PostedBy:        deref(m.PostedBy),
		Status:          domain.JournalStatus(m.Status),
		ApprovedBy:      deref(m.ApprovedBy),
		ApprovedAt:      m.ApprovedAt,
		ReversesEntryID: deref(m.ReversesEntryID),
		CreatedAt:       m.CreatedAt,
		Lines:           make([]domain.JournalLine, len(lines)),
	}
	for i, l := range lines {
		d.Lines[i] = ToDomainJournalLine(l)
	}
	return d
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine. The zero side
// is stored as NULL.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	m := models.JournalLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		LineNo:      d.LineNo,
		AccountID:   d.AccountID,
		BranchID:    nullable(d.BranchID),
		DocumentRef: nullable(d.DocumentRef),
		Memo:        nullable(d.Memo),
	}
	if d.IsDebit() {
		m.Debit = decimal.NewNullDecimal(d.Debit)
	} else {
		m.Credit = decimal.NewNullDecimal(d.Credit)
	}
	return m
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	d := domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		LineNo:      m.LineNo,
		AccountID:   m.AccountID,
		BranchID:    deref(m.BranchID),
		DocumentRef: deref(m.DocumentRef),
		Memo:        deref(m.Memo),
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}
	if m.Debit.Valid {
		d.Debit = m.Debit.Decimal
	}
	if m.Credit.Valid {
		d.Credit = m.Credit.Decimal
	}
	return d
}
