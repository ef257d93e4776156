package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountType_NormalSide(t *testing.T) {
	for _, typ := range []domain.AccountType{domain.Asset, domain.COGS, domain.Expense} {
		assert.True(t, typ.IsDebitNormal(), typ)
	}
	for _, typ := range []domain.AccountType{domain.Liability, domain.Equity, domain.Revenue} {
		assert.False(t, typ.IsDebitNormal(), typ)
	}
	assert.False(t, domain.AccountType("INCOME").IsValid())
}

func TestBuildAccountTree(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "assets", Code: "1"},
		{AccountID: "cash", Code: "1000", ParentAccountID: "assets"},
		{AccountID: "safe", Code: "1010", ParentAccountID: "cash"},
		{AccountID: "orphan", Code: "9", ParentAccountID: "missing"},
	}

	roots := domain.BuildAccountTree(accounts)
	require.Len(t, roots, 2)
	assert.Equal(t, "assets", roots[0].AccountID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "cash", roots[0].Children[0].AccountID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "safe", roots[0].Children[0].Children[0].AccountID)
	assert.Equal(t, "orphan", roots[1].AccountID)
}

func TestAccountFilter_Matches(t *testing.T) {
	rev := domain.Revenue
	active := true
	f := domain.AccountFilter{Type: &rev, Active: &active}

	assert.True(t, f.Matches(domain.Account{AccountType: domain.Revenue, IsActive: true}))
	assert.False(t, f.Matches(domain.Account{AccountType: domain.Revenue, IsActive: false}))
	assert.False(t, f.Matches(domain.Account{AccountType: domain.Asset, IsActive: true}))
}
