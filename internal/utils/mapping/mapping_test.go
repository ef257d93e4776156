package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalLineStoresZeroSideAsNull(t *testing.T) {
	debit := domain.JournalLine{LineNo: 1, AccountID: "a", Debit: decimal.RequireFromString("12.50"), Credit: decimal.Zero}
	m := ToModelJournalLine(debit)
	assert.True(t, m.Debit.Valid)
	assert.False(t, m.Credit.Valid)
	assert.Nil(t, m.BranchID)
	assert.Nil(t, m.DocumentRef)

	back := ToDomainJournalLine(m)
	assert.True(t, back.Debit.Equal(debit.Debit))
	assert.True(t, back.Credit.IsZero())
	assert.Empty(t, back.BranchID)
}

func TestJournalEntryNullableColumns(t *testing.T) {
	entry := domain.JournalEntry{
		EntryID:   "e-1",
		OrgID:     "org-1",
		EntryDate: time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
		Source:    domain.SourceManual,
		Status:    domain.Posted,
	}
	m := ToModelJournalEntry(entry)
	assert.Nil(t, m.SourceID)
	assert.Nil(t, m.ReversesEntryID)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), m.EntryDate)

	branch := "north"
	back := ToDomainJournalEntry(m, []models.JournalLine{{LineNo: 1, AccountID: "a", BranchID: &branch, Credit: decimal.NewNullDecimal(decimal.NewFromInt(3))}})
	assert.Empty(t, back.SourceID)
	require.Len(t, back.Lines, 1)
	assert.Equal(t, "north", back.Lines[0].BranchID)
	assert.True(t, back.Lines[0].Debit.IsZero())
}

func TestAccountParentRoundTrip(t *testing.T) {
	top := ToModelAccount(domain.Account{AccountID: "a", Code: "1000"})
	assert.Nil(t, top.ParentAccountID)

	child := ToModelAccount(domain.Account{AccountID: "b", Code: "1010", ParentAccountID: "a"})
	require.NotNil(t, child.ParentAccountID)
	assert.Equal(t, "a", ToDomainAccount(child).ParentAccountID)
}
