package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// MockPeriodGuard is a mock type for the PeriodGuardSvc interface
type MockPeriodGuard struct {
	mock.Mock
}

func (m *MockPeriodGuard) CheckPostingDate(ctx context.Context, orgID string, date time.Time) error {
	args := m.Called(ctx, orgID, date)
	return args.Error(0)
}

func (m *MockPeriodGuard) Guard(orgID string, date time.Time) portsrepo.PeriodGuardFunc {
	args := m.Called(orgID, date)
	return args.Get(0).(portsrepo.PeriodGuardFunc)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	ledger    *ledger
	mockGuard *MockPeriodGuard
	service   portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.ledger = newLedger(suite.T())
	suite.mockGuard = new(MockPeriodGuard)
	suite.mockGuard.On("Guard", testOrg, mock.AnythingOfType("time.Time")).
		Return(portsrepo.PeriodGuardFunc(func(*domain.FiscalPeriod) error { return nil })).Maybe()
	suite.service = services.NewJournalService(suite.ledger.store, suite.ledger.store, suite.mockGuard)
}

func (suite *JournalServiceTestSuite) entry(source domain.Source, sourceID string, lines ...domain.JournalLine) domain.JournalEntry {
	return domain.JournalEntry{
		OrgID:     testOrg,
		EntryDate: day("2025-01-10").Add(15 * time.Hour),
		Memo:      "test entry",
		Source:    source,
		SourceID:  sourceID,
		PostedBy:  testAccountant,
		Lines:     lines,
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestAppendEntry_Success() {
	l := suite.ledger
	ctx := context.Background()

	stored, created, err := suite.service.AppendEntry(ctx, suite.entry(domain.SourceSale, "o-1",
		l.line("1000", "120.50", "0"),
		l.line("4000", "0", "120.50")))

	suite.Require().NoError(err)
	suite.True(created)
	suite.NotEmpty(stored.EntryID)
	suite.Equal(domain.Posted, stored.Status)
	suite.Equal(day("2025-01-10"), stored.EntryDate, "entry dates are truncated to the day")
	suite.Require().Len(stored.Lines, 2)
	for i, line := range stored.Lines {
		suite.Equal(i+1, line.LineNo)
		suite.Equal(stored.EntryID, line.EntryID)
		suite.NotEmpty(line.LineID)
	}
	suite.mockGuard.AssertCalled(suite.T(), "Guard", testOrg, day("2025-01-10"))
}

func (suite *JournalServiceTestSuite) TestAppendEntry_Imbalanced() {
	l := suite.ledger

	_, _, err := suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceSale, "o-1",
		l.line("1000", "500", "0"),
		l.line("4000", "0", "400")))

	var imbalance *apperrors.ImbalancedEntryError
	suite.Require().ErrorAs(err, &imbalance)
	suite.True(dec("500").Equal(imbalance.Debits))
	suite.True(dec("400").Equal(imbalance.Credits))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.FindBySource(context.Background(), testOrg, domain.SourceSale, "o-1")
	suite.ErrorIs(err, apperrors.ErrNotFound, "a rejected entry leaves nothing behind")
}

func (suite *JournalServiceTestSuite) TestAppendEntry_MalformedLines() {
	l := suite.ledger
	tests := []struct {
		name  string
		lines []domain.JournalLine
	}{
		{"both sides", []domain.JournalLine{l.line("1000", "10", "10"), l.line("4000", "0", "0")}},
		{"neither side", []domain.JournalLine{l.line("1000", "0", "0"), l.line("4000", "0", "0")}},
		{"negative", []domain.JournalLine{l.line("1000", "-10", "0"), l.line("4000", "0", "-10")}},
		{"sub-cent", []domain.JournalLine{l.line("1000", "10.005", "0"), l.line("4000", "0", "10.005")}},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, _, err := suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceManual, "", tc.lines...))
			var malformed *apperrors.MalformedLineError
			suite.Require().ErrorAs(err, &malformed)
			suite.Equal(1, malformed.LineNo)
		})
	}
}

func (suite *JournalServiceTestSuite) TestAppendEntry_SingleLine() {
	_, _, err := suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceManual, "", suite.ledger.line("1000", "10", "0")))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestAppendEntry_UnknownAccount() {
	l := suite.ledger
	foreign := domain.JournalLine{AccountID: "acct-in-another-org", Credit: dec("10"), Debit: dec("0")}

	_, _, err := suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceManual, "", l.line("1000", "10", "0"), foreign))

	var unknown *apperrors.UnknownAccountError
	suite.Require().ErrorAs(err, &unknown)
	suite.Equal("acct-in-another-org", unknown.AccountID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestAppendEntry_SourceRules() {
	l := suite.ledger
	lines := []domain.JournalLine{l.line("1000", "10", "0"), l.line("4000", "0", "10")}

	_, _, err := suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceSale, "", lines...))
	suite.ErrorIs(err, apperrors.ErrValidation, "deduplicated sources need a source id")

	_, _, err = suite.service.AppendEntry(context.Background(), suite.entry(domain.SourceManual, "m-1", lines...))
	suite.ErrorIs(err, apperrors.ErrValidation, "manual journals carry no source id")

	_, _, err = suite.service.AppendEntry(context.Background(), suite.entry("BARTER", "b-1", lines...))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestAppendEntry_GuardRejection() {
	l := suite.ledger
	guard := new(MockPeriodGuard)
	locked := &apperrors.PeriodLockedError{PeriodName: "2025-01", Status: "CLOSED"}
	guard.On("Guard", testOrg, day("2025-01-10")).Return(portsrepo.PeriodGuardFunc(func(*domain.FiscalPeriod) error { return locked })).Once()
	svc := services.NewJournalService(l.store, l.store, guard)

	_, _, err := svc.AppendEntry(context.Background(), suite.entry(domain.SourceSale, "o-9", l.line("1000", "10", "0"), l.line("4000", "0", "10")))

	suite.ErrorIs(err, apperrors.ErrState)
	guard.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAppendEntry_Idempotent() {
	l := suite.ledger
	ctx := context.Background()

	first, created, err := suite.service.AppendEntry(ctx, suite.entry(domain.SourceSale, "o-1", l.line("1000", "10", "0"), l.line("4000", "0", "10")))
	suite.Require().NoError(err)
	suite.True(created)

	// A replay with a different payload still answers with the original entry.
	second, created, err := suite.service.AppendEntry(ctx, suite.entry(domain.SourceSale, "o-1", l.line("1000", "99", "0"), l.line("4000", "0", "99")))
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(first.EntryID, second.EntryID)
	suite.True(dec("10").Equal(second.Lines[0].Debit))
}

func (suite *JournalServiceTestSuite) TestAppendEntry_ManualIsNotDeduplicated() {
	l := suite.ledger
	ctx := context.Background()
	e := suite.entry(domain.SourceManual, "", l.line("6300", "25", "0"), l.line("1000", "0", "25"))

	a, _, err := suite.service.AppendEntry(ctx, e)
	suite.Require().NoError(err)
	b, created, err := suite.service.AppendEntry(ctx, e)
	suite.Require().NoError(err)

	suite.True(created)
	suite.NotEqual(a.EntryID, b.EntryID)
}

func (suite *JournalServiceTestSuite) TestReverseEntry() {
	l := suite.ledger
	ctx := context.Background()

	original, _, err := suite.service.AppendEntry(ctx, suite.entry(domain.SourceWastage, "adj-1", l.line("6100", "7.25", "0"), l.line("1200", "0", "7.25")))
	suite.Require().NoError(err)

	reversal, created, err := suite.service.ReverseEntry(ctx, testOrg, original.EntryID, nil, testAccountant)
	suite.Require().NoError(err)
	suite.True(created)
	suite.Equal(domain.SourceReversal, reversal.Source)
	suite.Equal(original.EntryID, reversal.ReversesEntryID)
	suite.Equal(original.EntryDate, reversal.EntryDate)
	suite.True(dec("7.25").Equal(reversal.Lines[0].Credit))

	again, created, err := suite.service.ReverseEntry(ctx, testOrg, original.EntryID, nil, testAccountant)
	suite.Require().NoError(err)
	suite.False(created)
	suite.Equal(reversal.EntryID, again.EntryID)

	requireDecimal(suite.T(), "0", l.net(suite.T(), "6100", nil))
	requireDecimal(suite.T(), "0", l.net(suite.T(), "1200", nil))
}

func (suite *JournalServiceTestSuite) TestListEntries_Paginates() {
	l := suite.ledger
	ctx := context.Background()
	for _, id := range []string{"o-1", "o-2", "o-3"} {
		_, _, err := suite.service.AppendEntry(ctx, suite.entry(domain.SourceSale, id, l.line("1000", "1", "0"), l.line("4000", "0", "1")))
		suite.Require().NoError(err)
	}

	seen := map[string]bool{}
	params := dto.ListJournalsParams{Limit: 2}
	page, err := suite.service.ListEntries(ctx, testOrg, params)
	suite.Require().NoError(err)
	suite.Len(page.Entries, 2)
	suite.Require().NotNil(page.NextToken)
	for _, e := range page.Entries {
		seen[e.EntryID] = true
	}

	params.NextToken = page.NextToken
	page, err = suite.service.ListEntries(ctx, testOrg, params)
	suite.Require().NoError(err)
	suite.Len(page.Entries, 1)
	suite.Nil(page.NextToken)
	suite.False(seen[page.Entries[0].EntryID])
}

// TestJournalServiceTestSuite runs the test suite
func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func TestAppendEntry_ConcurrentReplaysCreateOnce(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[string]struct{}{}
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{
				EventHeader:   header("2025-02-01"),
				OrderID:       "o-race",
				Amount:        dec("42"),
				PaymentMethod: domain.PaymentCard,
			})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[res.Entry.EntryID] = struct{}{}
			if res.Created {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)
	requireDecimal(t, "42", l.net(t, "1020", nil))
}

func TestReverseEntry_RefusesClosingEntries(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	_, err := l.svc.Posting.PostSale(ctx, domain.SaleClosed{EventHeader: header("2025-01-15"), OrderID: "o-1", Amount: dec("100"), PaymentMethod: domain.PaymentCash})
	require.NoError(t, err)
	p := l.createPeriod(t, "2025-01", "2025-01-01", "2025-01-31")
	closed, err := l.svc.Period.ClosePeriod(ctx, testOrg, p.PeriodID, testAccountant)
	require.NoError(t, err)
	require.NotEmpty(t, closed.ClosingEntryID)

	_, _, err = l.svc.Journal.ReverseEntry(ctx, testOrg, closed.ClosingEntryID, nil, testAccountant)
	assert.ErrorIs(t, err, apperrors.ErrState)
}
