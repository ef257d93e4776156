package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

func TestCreatePeriod_Validation(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	tests := []struct {
		name string
		req  dto.CreatePeriodRequest
		want error
	}{
		{"overlap", dto.CreatePeriodRequest{Name: "late Jan", StartDate: "2025-01-31", EndDate: "2025-02-28"}, apperrors.ErrConflict},
		{"reversed", dto.CreatePeriodRequest{Name: "backwards", StartDate: "2025-03-31", EndDate: "2025-03-01"}, apperrors.ErrValidation},
		{"bad date", dto.CreatePeriodRequest{Name: "garbled", StartDate: "2025/03/01", EndDate: "2025-03-31"}, apperrors.ErrValidation},
		{"no name", dto.CreatePeriodRequest{Name: "  ", StartDate: "2025-03-01", EndDate: "2025-03-31"}, apperrors.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.svc.Period.CreatePeriod(ctx, testOrg, tc.req, testAccountant)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Adjacent periods do not overlap.
	l.createPeriod(t, "2025-02", "2025-02-01", "2025-02-28")
	periods, err := l.svc.Period.ListPeriods(ctx, testOrg)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "2025-01", periods[0].Name)
}

func TestClosePeriod_MovesResultToRetainedEarnings(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: branchHeader("2025-01-05", "north"), OrderID: "o-1", Amount: dec("100"), PaymentMethod: domain.PaymentCash, CostAmount: dec("40")})
	require.NoError(t, err)
	_, err = l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: branchHeader("2025-01-06", "south"), OrderID: "o-2", Amount: dec("50"), PaymentMethod: domain.PaymentCard})
	require.NoError(t, err)
	_, err = l.svc.Posting.PostServiceProviderExpense(ctx, domain.ServiceProviderBill{EventHeader: branchHeader("2025-01-20", "north"), BillID: "b-1", Category: domain.ExpenseRent, Amount: dec("30")})
	require.NoError(t, err)

	closed, err := l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodClosed, closed.Status)
	assert.Equal(t, testAccountant, closed.ClosedBy)
	require.NotEmpty(t, closed.ClosingEntryID)

	closing, err := l.svc.Journal.GetEntry(ctx, testOrg, closed.ClosingEntryID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourcePeriodClose, closing.Source)
	assert.Equal(t, day("2025-01-31"), closing.EntryDate)
	debits, credits := closing.Totals()
	assert.True(t, debits.Equal(credits))

	end := day("2025-01-31")
	for _, code := range []string{"4000", "5000", "6300"} {
		requireDecimal(t, "0", l.net(t, code, &end))
	}
	requireDecimal(t, "80", l.net(t, "3100", &end))

	// The retained-earnings lines keep their branch tags.
	perBranch := map[string]string{}
	for _, line := range closing.Lines {
		if line.AccountID == l.codes["3100"] {
			perBranch[line.BranchID] = line.Credit.Sub(line.Debit).String()
		}
	}
	assert.Equal(t, map[string]string{"north": "30", "south": "50"}, perBranch)

	// The income statement of the closed period is unchanged by its closing entry.
	pl, err := l.svc.Reporting.ProfitAndLoss(ctx, testOrg, day("2025-01-01"), end, nil)
	require.NoError(t, err)
	requireDecimal(t, "150", pl.TotalRevenue)
	requireDecimal(t, "80", pl.NetProfit)

	bs, err := l.svc.Reporting.BalanceSheet(ctx, testOrg, end)
	require.NoError(t, err)
	requireDecimal(t, "0", bs.CurrentEarnings)
	requireDecimal(t, "80", bs.TotalEquity)
}

func TestClosePeriod_BlocksLatePostings(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	_, err := l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)

	_, err = l.svc.Posting.PostPayroll(ctx, domain.PayrollApproved{EventHeader: header("2025-01-31"), PayRunID: "run-1", Gross: dec("900")})
	var locked *apperrors.PeriodLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, "2025-01", locked.PeriodName)
	assert.ErrorIs(t, l.svc.Period.CheckPostingDate(ctx, testOrg, day("2025-01-15")), apperrors.ErrState)

	// The day after the period is unaffected.
	_, err = l.svc.Posting.PostPayroll(ctx, domain.PayrollApproved{EventHeader: header("2025-02-01"), PayRunID: "run-1", Gross: dec("900")})
	require.NoError(t, err)
}

func TestPeriodLifecycle_OnlyMovesForward(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	var illegal *apperrors.IllegalTransitionError
	_, err := l.svc.Period.LockPeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.ErrorAs(t, err, &illegal, "an open period cannot be locked")

	closed, err := l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)
	assert.Empty(t, closed.ClosingEntryID, "a period without activity needs no closing entry")

	_, err = l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.ErrorAs(t, err, &illegal)
	assert.Contains(t, err.Error(), "already closed")

	locked, err := l.svc.Period.LockPeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodLocked, locked.Status)

	_, err = l.svc.Period.LockPeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.ErrorAs(t, err, &illegal)
	_, err = l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.ErrorAs(t, err, &illegal)

	got, err := l.svc.Period.GetPeriod(ctx, testOrg, p.PeriodID)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodLocked, got.Status)
}

func TestClosePeriod_MissingRetainedEarnings(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	_, err := l.svc.Posting.PostRefund(ctx, domain.RefundIssued{EventHeader: header("2025-01-09"), RefundID: "r-1", Amount: dec("12")})
	require.NoError(t, err)
	_, err = l.svc.Account.DeactivateAccount(ctx, testOrg, l.codes["3100"], testAccountant)
	require.NoError(t, err)

	_, err = l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	var missing *apperrors.MissingAccountError
	require.ErrorAs(t, err, &missing)

	got, err := l.svc.Period.GetPeriod(ctx, testOrg, p.PeriodID)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodOpen, got.Status, "a failed close leaves the period open")
}

func TestRequirePeriodCoverage(t *testing.T) {
	l := newLedger(t, func(c *config.Config) { c.RequirePeriodCoverage = true })
	ctx := context.Background()
	l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	_, err := l.svc.Posting.PostWastage(ctx, domain.WastageRecorded{EventHeader: header("2025-02-03"), AdjustmentID: "adj-1", Cost: dec("3")})
	assert.ErrorIs(t, err, apperrors.ErrState)

	_, err = l.svc.Posting.PostWastage(ctx, domain.WastageRecorded{EventHeader: header("2025-01-03"), AdjustmentID: "adj-1", Cost: dec("3")})
	assert.NoError(t, err)
}

// Posts racing a close either land before it, and are swept into the closing
// entry, or are rejected. None may slip in afterwards.
func TestClosePeriod_RacingPostsAreNeverLost(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	const posters = 40
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)
	start := make(chan struct{})
	for i := 0; i < posters; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{
				EventHeader:   header("2025-01-20"),
				OrderID:       fmt.Sprintf("o-%d", i),
				Amount:        dec("1"),
				PaymentMethod: domain.PaymentCash,
			})
			mu.Lock()
			defer mu.Unlock()
			var locked *apperrors.PeriodLockedError
			switch {
			case err == nil:
				accepted++
			case errors.As(err, &locked):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		_, err := l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
		assert.NoError(t, err)
	}()
	close(start)
	wg.Wait()

	assert.Equal(t, posters, accepted+rejected)
	end := day("2025-01-31")
	requireDecimal(t, "0", l.net(t, "4000", &end))
	requireDecimal(t, fmt.Sprint(accepted), l.net(t, "3100", &end))
	requireDecimal(t, fmt.Sprint(accepted), l.net(t, "1000", &end))
}
