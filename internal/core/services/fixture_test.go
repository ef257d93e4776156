package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/repositories/memory"
)

const (
	testOrg        = "org-1"
	testAccountant = "alice"
	testApprover   = "bob"
)

// ledger is a seeded org backed by the in-memory store.
type ledger struct {
	store *memory.Store
	svc   *portssvc.ServiceContainer
	codes map[string]string // code -> account id
}

func newLedger(t *testing.T, opts ...func(*config.Config)) *ledger {
	t.Helper()
	cfg := &config.Config{PostingAccounts: domain.DefaultPostingAccounts()}
	for _, opt := range opts {
		opt(cfg)
	}
	store := memory.New()
	svc := services.NewServiceContainer(cfg, store.Repositories(), nil)

	seeded, err := svc.Account.SeedDefaultChart(context.Background(), testOrg, testAccountant)
	require.NoError(t, err)
	codes := make(map[string]string, len(seeded))
	for _, a := range seeded {
		codes[a.Code] = a.AccountID
	}
	return &ledger{store: store, svc: svc, codes: codes}
}

func day(s string) time.Time {
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func header(date string) domain.EventHeader {
	return domain.EventHeader{OrgID: testOrg, Date: day(date), PostedBy: "pos"}
}

func branchHeader(date, branch string) domain.EventHeader {
	h := header(date)
	h.BranchID = branch
	return h
}

// line builds a journal line against a default-chart code.
func (l *ledger) line(code string, debit, credit string) domain.JournalLine {
	return domain.JournalLine{AccountID: l.codes[code], Debit: dec(debit), Credit: dec(credit)}
}

func (l *ledger) createPeriod(t *testing.T, name, start, end string) *domain.FiscalPeriod {
	t.Helper()
	p, err := l.svc.Period.CreatePeriod(context.Background(), testOrg, dto.CreatePeriodRequest{Name: name, StartDate: start, EndDate: end}, testAccountant)
	require.NoError(t, err)
	return p
}

// net returns an account's balance on its normal side from the trial balance.
func (l *ledger) net(t *testing.T, code string, asOf *time.Time) decimal.Decimal {
	t.Helper()
	tb, err := l.svc.Reporting.TrialBalance(context.Background(), testOrg, asOf, nil)
	require.NoError(t, err)
	for _, r := range tb.Rows {
		if r.Code == code {
			return r.Balance
		}
	}
	return decimal.Zero
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}
