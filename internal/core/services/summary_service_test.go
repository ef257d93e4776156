package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/services"
)

// MockReportingService is a mock type for the ReportingService interface
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, orgID string, asOf *time.Time, branch *string) (*domain.TrialBalanceReport, error) {
	args := m.Called(ctx, orgID, asOf, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalanceReport), args.Error(1)
}

func (m *MockReportingService) ProfitAndLoss(ctx context.Context, orgID string, from, to time.Time, branch *string) (*domain.PAndLReport, error) {
	args := m.Called(ctx, orgID, from, to, branch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PAndLReport), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, orgID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, orgID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheetReport), args.Error(1)
}

func (m *MockReportingService) APAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error) {
	args := m.Called(ctx, orgID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}

func (m *MockReportingService) ARAging(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error) {
	args := m.Called(ctx, orgID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}

func (m *MockReportingService) AccountLedger(ctx context.Context, orgID, accountID string, from, to *time.Time) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, orgID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func branchIs(name string) any {
	return mock.MatchedBy(func(b *string) bool { return b != nil && *b == name })
}

func orgWide() any {
	return mock.MatchedBy(func(b *string) bool { return b == nil })
}

func netProfit(amount string) *domain.PAndLReport {
	return &domain.PAndLReport{
		TotalRevenue:  dec(amount),
		TotalCOGS:     decimal.Zero,
		TotalExpenses: decimal.Zero,
		GrossProfit:   dec(amount),
		NetProfit:     dec(amount),
	}
}

func TestGetFinancialSummary_DerivedFromProfitAndLoss(t *testing.T) {
	l := newLedger(t)
	seedActivity(t, l)
	ctx := context.Background()

	summary, err := l.svc.Summary.GetFinancialSummary(ctx, testOrg, nil, day("2025-01-01"), day("2025-03-31"))
	require.NoError(t, err)
	assert.Equal(t, testOrg, summary.OrgID)
	requireDecimal(t, "175.25", summary.Revenue)
	requireDecimal(t, "30", summary.COGS)
	requireDecimal(t, "145.25", summary.GrossMargin)
	requireDecimal(t, "74.75", summary.Expenses)
	requireDecimal(t, "70.50", summary.NetProfit)
}

func TestGetBranchRollup_BranchesAddUpToOrg(t *testing.T) {
	l := newLedger(t)
	seedActivity(t, l)
	ctx := context.Background()

	rollup, err := l.svc.Summary.GetBranchRollup(ctx, testOrg, day("2025-01-01"), day("2025-03-31"))
	require.NoError(t, err)

	got := map[string]string{}
	sum := decimal.Zero
	for _, b := range rollup.Branches {
		got[b.Branch] = b.NetProfit.String()
		sum = sum.Add(b.NetProfit)
	}
	assert.Equal(t, map[string]string{
		"north":                 "70",
		"south":                 "-24.75",
		domain.UnassignedBranch: "25.25",
	}, got)
	assert.True(t, sum.Equal(rollup.Total.NetProfit))
	requireDecimal(t, "70.50", rollup.Total.NetProfit)
}

func TestGetBranchRollup_FailsWhenAnyBranchFails(t *testing.T) {
	reporting := new(MockReportingService)
	repo := new(MockReportingRepository)
	from, to := day("2025-01-01"), day("2025-01-31")

	repo.On("ListBranches", mock.Anything, testOrg, from, to).Return([]string{"north", "south"}, nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("north")).Return(netProfit("10"), nil).Maybe()
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("south")).Return(nil, errors.New("statement timeout"))
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, orgWide()).Return(netProfit("10"), nil).Maybe()

	rollup, err := services.NewSummaryService(reporting, repo).GetBranchRollup(context.Background(), testOrg, from, to)

	assert.Nil(t, rollup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "branch south")
}

func TestGetBranchRollup_RetriesMismatchOnce(t *testing.T) {
	reporting := new(MockReportingService)
	repo := new(MockReportingRepository)
	from, to := day("2025-01-01"), day("2025-01-31")

	repo.On("ListBranches", mock.Anything, testOrg, from, to).Return([]string{"north"}, nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("north")).Return(netProfit("10"), nil)
	// A post lands between the reads of the first attempt.
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, orgWide()).Return(netProfit("12"), nil).Once()
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, orgWide()).Return(netProfit("10"), nil).Once()

	rollup, err := services.NewSummaryService(reporting, repo).GetBranchRollup(context.Background(), testOrg, from, to)

	require.NoError(t, err)
	requireDecimal(t, "10", rollup.Total.NetProfit)
	repo.AssertNumberOfCalls(t, "ListBranches", 2)
}

func TestGetBranchRollup_PersistentMismatchIsConsistencyFault(t *testing.T) {
	reporting := new(MockReportingService)
	repo := new(MockReportingRepository)
	from, to := day("2025-01-01"), day("2025-01-31")

	repo.On("ListBranches", mock.Anything, testOrg, from, to).Return([]string{"north", "south"}, nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("north")).Return(netProfit("10"), nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("south")).Return(netProfit("5"), nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, orgWide()).Return(netProfit("16"), nil)

	_, err := services.NewSummaryService(reporting, repo).GetBranchRollup(context.Background(), testOrg, from, to)

	var ce *apperrors.ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "branch_rollup.revenue", ce.Check)
	repo.AssertNumberOfCalls(t, "ListBranches", 2)
}

func TestGetBranchRollup_ChecksEveryAmountNotJustNetProfit(t *testing.T) {
	reporting := new(MockReportingService)
	repo := new(MockReportingRepository)
	from, to := day("2025-01-01"), day("2025-01-31")

	// The branches agree with the total on revenue and net profit, but an expense
	// booked as cost of goods on one side hides a COGS and margin mismatch.
	branch := &domain.PAndLReport{TotalRevenue: dec("100"), TotalCOGS: dec("30"), GrossProfit: dec("70"), TotalExpenses: dec("20"), NetProfit: dec("50")}
	total := &domain.PAndLReport{TotalRevenue: dec("100"), TotalCOGS: dec("10"), GrossProfit: dec("90"), TotalExpenses: dec("40"), NetProfit: dec("50")}
	repo.On("ListBranches", mock.Anything, testOrg, from, to).Return([]string{"north"}, nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, branchIs("north")).Return(branch, nil)
	reporting.On("ProfitAndLoss", mock.Anything, testOrg, from, to, orgWide()).Return(total, nil)

	_, err := services.NewSummaryService(reporting, repo).GetBranchRollup(context.Background(), testOrg, from, to)

	var ce *apperrors.ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "branch_rollup.cogs", ce.Check)
	requireDecimal(t, "30", ce.Left)
	requireDecimal(t, "10", ce.Right)
	assert.ErrorIs(t, err, apperrors.ErrConsistency)
}
