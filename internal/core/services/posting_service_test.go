package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// posted is one expected line: account code, debit, credit, document reference.
type posted struct {
	code, debit, credit, doc string
}

func (l *ledger) requireLines(t *testing.T, entry *domain.JournalEntry, want ...posted) {
	t.Helper()
	byID := make(map[string]string, len(l.codes))
	for code, id := range l.codes {
		byID[id] = code
	}
	require.Len(t, entry.Lines, len(want))
	for i, w := range want {
		got := entry.Lines[i]
		assert.Equal(t, w.code, byID[got.AccountID], "line %d account", i+1)
		requireDecimal(t, w.debit, got.Debit)
		requireDecimal(t, w.credit, got.Credit)
		assert.Equal(t, w.doc, got.DocumentRef, "line %d document ref", i+1)
	}
}

func TestPostingAdapters(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		post   func(l *ledger) (*domain.PostingResult, error)
		source domain.Source
		lines  []posted
	}{
		{
			name: "cash sale",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-1", Amount: dec("10000.00"), PaymentMethod: domain.PaymentCash})
			},
			source: domain.SourceSale,
			lines:  []posted{{"1000", "10000", "0", ""}, {"4000", "0", "10000", ""}},
		},
		{
			name: "card sale",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-2", Amount: dec("20"), PaymentMethod: domain.PaymentCard})
			},
			source: domain.SourceSale,
			lines:  []posted{{"1020", "20", "0", ""}, {"4000", "0", "20", ""}},
		},
		{
			name: "sale on account",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-3", Amount: dec("35.10"), PaymentMethod: domain.PaymentOnAccount})
			},
			source: domain.SourceSale,
			lines:  []posted{{"1100", "35.10", "0", "o-3"}, {"4000", "0", "35.10", ""}},
		},
		{
			name: "customer payment",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostCustomerPayment(ctx, domain.CustomerPaymentReceived{EventHeader: header("2025-01-09"), PaymentID: "pay-1", OrderID: "o-3", Amount: dec("35.10")})
			},
			source: domain.SourceCustomerPayment,
			lines:  []posted{{"1000", "35.10", "0", ""}, {"1100", "0", "35.10", "o-3"}},
		},
		{
			name: "refund",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostRefund(ctx, domain.RefundIssued{EventHeader: header("2025-01-03"), RefundID: "r-1", OrderID: "o-1", Amount: dec("5")})
			},
			source: domain.SourceRefund,
			lines:  []posted{{"4000", "5", "0", ""}, {"1000", "0", "5", ""}},
		},
		{
			name: "drawer to safe",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostCashSafeMovement(ctx, domain.CashSafeMovement{EventHeader: header("2025-01-03"), MovementID: "m-1", Direction: domain.ToSafe, Amount: dec("300")})
			},
			source: domain.SourceCashSafe,
			lines:  []posted{{"1010", "300", "0", ""}, {"1000", "0", "300", ""}},
		},
		{
			name: "safe to drawer",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostCashSafeMovement(ctx, domain.CashSafeMovement{EventHeader: header("2025-01-03"), MovementID: "m-2", Direction: domain.FromSafe, Amount: dec("50")})
			},
			source: domain.SourceCashSafe,
			lines:  []posted{{"1000", "50", "0", ""}, {"1010", "0", "50", ""}},
		},
		{
			name: "safe to bank",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostCashSafeMovement(ctx, domain.CashSafeMovement{EventHeader: header("2025-01-03"), MovementID: "m-3", Direction: domain.ToBank, Amount: dec("250")})
			},
			source: domain.SourceCashSafe,
			lines:  []posted{{"1020", "250", "0", ""}, {"1010", "0", "250", ""}},
		},
		{
			name: "wastage",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostWastage(ctx, domain.WastageRecorded{EventHeader: header("2025-01-04"), AdjustmentID: "adj-1", Cost: dec("8.40"), Reason: "spoiled"})
			},
			source: domain.SourceWastage,
			lines:  []posted{{"6100", "8.40", "0", ""}, {"1200", "0", "8.40", ""}},
		},
		{
			name: "payroll",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostPayroll(ctx, domain.PayrollApproved{EventHeader: header("2025-01-31"), PayRunID: "run-1", Gross: dec("4200")})
			},
			source: domain.SourcePayroll,
			lines:  []posted{{"6200", "4200", "0", ""}, {"2100", "0", "4200", ""}},
		},
		{
			name: "utilities bill",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostServiceProviderExpense(ctx, domain.ServiceProviderBill{EventHeader: header("2025-01-10"), BillID: "b-1", ProviderID: "power-co", Category: domain.ExpenseUtilities, Amount: dec("180")})
			},
			source: domain.SourceServiceProviderBill,
			lines:  []posted{{"6400", "180", "0", ""}, {"2000", "0", "180", "b-1"}},
		},
		{
			name: "bill paid from bank",
			post: func(l *ledger) (*domain.PostingResult, error) {
				return l.svc.Posting.PostServiceProviderPayment(ctx, domain.ServiceProviderPayment{EventHeader: header("2025-01-25"), PaymentID: "sp-1", BillID: "b-1", Amount: dec("100"), FromBank: true})
			},
			source: domain.SourceServiceProviderPayment,
			lines:  []posted{{"2000", "100", "0", "b-1"}, {"1020", "0", "100", ""}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := newLedger(t)

			res, err := tc.post(l)
			require.NoError(t, err)
			assert.True(t, res.Created)
			assert.Equal(t, tc.source, res.Entry.Source)
			assert.Equal(t, domain.Posted, res.Entry.Status)
			l.requireLines(t, res.Entry, tc.lines...)

			replay, err := tc.post(l)
			require.NoError(t, err)
			assert.False(t, replay.Created)
			assert.Equal(t, res.Entry.EntryID, replay.Entry.EntryID)
		})
	}
}

func TestPostSale_WithCostOfGoods(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	ev := domain.SaleClosed{EventHeader: branchHeader("2025-01-02", "north"), OrderID: "o-1", Amount: dec("60"), PaymentMethod: domain.PaymentCash, CostAmount: dec("22.50")}

	res, err := l.svc.Posting.PostSale(ctx, ev)
	require.NoError(t, err)
	require.Len(t, res.Related, 1)
	cogs := res.Related[0]
	assert.True(t, cogs.Created)
	assert.Equal(t, domain.SourceSaleCOGS, cogs.Entry.Source)
	assert.Equal(t, "o-1", cogs.Entry.SourceID)
	l.requireLines(t, cogs.Entry, posted{"5000", "22.50", "0", ""}, posted{"1200", "0", "22.50", ""})
	assert.Equal(t, "north", cogs.Entry.Lines[0].BranchID)

	replay, err := l.svc.Posting.PostSale(ctx, ev)
	require.NoError(t, err)
	require.Len(t, replay.Related, 1)
	assert.False(t, replay.Created)
	assert.False(t, replay.Related[0].Created)
	requireDecimal(t, "22.50", l.net(t, "5000", nil))
}

func TestPostingAdapters_RejectInvalidEvents(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	tests := []struct {
		name string
		post func() error
	}{
		{"zero amount", func() error {
			_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-1", Amount: dec("0"), PaymentMethod: domain.PaymentCash})
			return err
		}},
		{"negative cost", func() error {
			_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-1", Amount: dec("5"), PaymentMethod: domain.PaymentCash, CostAmount: dec("-1")})
			return err
		}},
		{"unknown payment method", func() error {
			_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-02"), OrderID: "o-1", Amount: dec("5"), PaymentMethod: "CHEQUE"})
			return err
		}},
		{"missing order", func() error {
			_, err := l.svc.Posting.PostCustomerPayment(ctx, domain.CustomerPaymentReceived{EventHeader: header("2025-01-02"), PaymentID: "p-1", Amount: dec("5")})
			return err
		}},
		{"missing org", func() error {
			_, err := l.svc.Posting.PostPayroll(ctx, domain.PayrollApproved{EventHeader: domain.EventHeader{Date: day("2025-01-02")}, PayRunID: "run-1", Gross: dec("5")})
			return err
		}},
		{"missing date", func() error {
			_, err := l.svc.Posting.PostWastage(ctx, domain.WastageRecorded{EventHeader: domain.EventHeader{OrgID: testOrg}, AdjustmentID: "adj-1", Cost: dec("5")})
			return err
		}},
		{"unknown category", func() error {
			_, err := l.svc.Posting.PostServiceProviderExpense(ctx, domain.ServiceProviderBill{EventHeader: header("2025-01-02"), BillID: "b-1", Category: "TRAVEL", Amount: dec("5")})
			return err
		}},
		{"sub-cent amount", func() error {
			_, err := l.svc.Posting.PostRefund(ctx, domain.RefundIssued{EventHeader: header("2025-01-02"), RefundID: "r-1", Amount: dec("0.001")})
			return err
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.post(), apperrors.ErrValidation)
		})
	}

	tb, err := l.svc.Reporting.TrialBalance(ctx, testOrg, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tb.Rows)
}

func TestPostSale_ScenarioTrialBalance(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	res, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-03-14"), OrderID: "o-100", Amount: dec("10000.00"), PaymentMethod: domain.PaymentCash})
	require.NoError(t, err)
	require.Len(t, res.Entry.Lines, 2)

	tb, err := l.svc.Reporting.TrialBalance(ctx, testOrg, nil, nil)
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "1000", tb.Rows[0].Code)
	requireDecimal(t, "10000.00", tb.Rows[0].Debit)
	assert.Equal(t, "4000", tb.Rows[1].Code)
	requireDecimal(t, "10000.00", tb.Rows[1].Credit)

	// Reading has no side effects.
	again, err := l.svc.Reporting.TrialBalance(ctx, testOrg, nil, nil)
	require.NoError(t, err)
	assert.Len(t, again.Rows, 2)
	requireDecimal(t, "10000.00", again.TotalDebit)
	requireDecimal(t, "10000.00", again.TotalCredit)
}

func TestPostSale_ScenarioCloseThenLock(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	march := l.createPeriod(t, "2025-03", "2025-03-01", "2025-03-31")
	l.createPeriod(t, "2025-04", "2025-04-01", "2025-04-30")

	_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-03-14"), OrderID: "o-100", Amount: dec("10000.00"), PaymentMethod: domain.PaymentCash})
	require.NoError(t, err)

	closed, err := l.svc.Period.ClosePeriod(ctx, testOrg, march.PeriodID, testAccountant)
	require.NoError(t, err)
	closing, err := l.svc.Journal.GetEntry(ctx, testOrg, closed.ClosingEntryID)
	require.NoError(t, err)
	l.requireLines(t, closing, posted{"4000", "10000", "0", ""}, posted{"3100", "0", "10000", ""})

	_, err = l.svc.Period.LockPeriod(ctx, testOrg, march.PeriodID, testAccountant)
	require.NoError(t, err)

	late := domain.RefundIssued{EventHeader: header("2025-03-20"), RefundID: "r-1", Amount: dec("10")}
	_, err = l.svc.Posting.PostRefund(ctx, late)
	assert.ErrorIs(t, err, apperrors.ErrState)

	late.Date = day("2025-04-02")
	_, err = l.svc.Posting.PostRefund(ctx, late)
	assert.NoError(t, err)
}

func TestCreateManualJournal_ScenarioImbalanced(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.svc.Posting.CreateManualJournal(ctx, domain.ManualJournalRequest{
		OrgID: testOrg,
		Date:  day("2025-01-31"),
		Memo:  "accrue rent",
		Lines: []domain.ManualLine{
			{AccountCode: "6300", Debit: dec("500.00"), Credit: dec("0")},
			{AccountCode: "2000", Debit: dec("0"), Credit: dec("400.00")},
		},
		RequestingIdentity: testAccountant,
	})
	var imbalance *apperrors.ImbalancedEntryError
	require.ErrorAs(t, err, &imbalance)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	tb, err := l.svc.Reporting.TrialBalance(ctx, testOrg, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tb.Rows)
}

func TestCreateManualJournal_UnknownCode(t *testing.T) {
	l := newLedger(t)

	_, err := l.svc.Posting.CreateManualJournal(context.Background(), domain.ManualJournalRequest{
		OrgID: testOrg,
		Date:  day("2025-01-31"),
		Memo:  "typo",
		Lines: []domain.ManualLine{
			{AccountCode: "6300", Debit: dec("5"), Credit: dec("0")},
			{AccountCode: "9999", Debit: dec("0"), Credit: dec("5")},
		},
		RequestingIdentity: testAccountant,
	})
	var unknown *apperrors.UnknownAccountError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "9999", unknown.AccountID)
}

func manualRent(amount string) domain.ManualJournalRequest {
	return domain.ManualJournalRequest{
		OrgID: testOrg,
		Date:  day("2025-01-31"),
		Memo:  "accrue rent",
		Lines: []domain.ManualLine{
			{AccountCode: "6300", BranchID: "north", Debit: dec(amount), Credit: dec("0")},
			{AccountCode: "2000", BranchID: "north", DocumentRef: "lease-jan", Debit: dec("0"), Credit: dec(amount)},
		},
		RequestingIdentity: testAccountant,
	}
}

func TestManualJournal_PostsDirectlyWithoutApproval(t *testing.T) {
	l := newLedger(t)

	res, err := l.svc.Posting.CreateManualJournal(context.Background(), manualRent("750"))
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, res.Entry.Status)
	assert.Equal(t, testAccountant, res.Entry.PostedBy)
	requireDecimal(t, "750", l.net(t, "6300", nil))
}

func TestManualJournal_ApprovalWorkflow(t *testing.T) {
	l := newLedger(t, func(c *config.Config) { c.ManualApprovalRequired = true })
	ctx := context.Background()

	res, err := l.svc.Posting.CreateManualJournal(ctx, manualRent("750"))
	require.NoError(t, err)
	require.Equal(t, domain.PendingApproval, res.Entry.Status)

	// Pending entries are invisible to statements.
	requireDecimal(t, "0", l.net(t, "6300", nil))

	_, err = l.svc.Posting.ApproveManualJournal(ctx, testOrg, res.Entry.EntryID, testAccountant)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	approved, err := l.svc.Posting.ApproveManualJournal(ctx, testOrg, res.Entry.EntryID, testApprover)
	require.NoError(t, err)
	assert.Equal(t, domain.Posted, approved.Status)
	assert.Equal(t, testApprover, approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedAt)
	requireDecimal(t, "750", l.net(t, "6300", nil))

	_, err = l.svc.Posting.ApproveManualJournal(ctx, testOrg, res.Entry.EntryID, testApprover)
	assert.ErrorIs(t, err, apperrors.ErrState, "an entry is approved once")

	rejected, err := l.svc.Posting.CreateManualJournal(ctx, manualRent("10"))
	require.NoError(t, err)
	r, err := l.svc.Posting.RejectManualJournal(ctx, testOrg, rejected.Entry.EntryID, testAccountant)
	require.NoError(t, err)
	assert.Equal(t, domain.Rejected, r.Status)
	requireDecimal(t, "750", l.net(t, "6300", nil))
}

func TestManualJournal_ApprovalRechecksPeriod(t *testing.T) {
	l := newLedger(t, func(c *config.Config) { c.ManualApprovalRequired = true })
	ctx := context.Background()
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")

	res, err := l.svc.Posting.CreateManualJournal(ctx, manualRent("750"))
	require.NoError(t, err)

	_, err = l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)

	_, err = l.svc.Posting.ApproveManualJournal(ctx, testOrg, res.Entry.EntryID, testApprover)
	var locked *apperrors.PeriodLockedError
	assert.ErrorAs(t, err, &locked)
}

func TestApproveManualJournal_RefusesEventEntries(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	res, err := l.svc.Posting.PostPayroll(ctx, domain.PayrollApproved{EventHeader: header("2025-01-31"), PayRunID: "run-1", Gross: dec("10")})
	require.NoError(t, err)

	_, err = l.svc.Posting.ApproveManualJournal(ctx, testOrg, res.Entry.EntryID, testApprover)
	assert.ErrorIs(t, err, apperrors.ErrState)
}
