package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/handlers"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/repositories/memory"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "ledger-test"
	testOrg    = "org-1"
)

// LedgerAPITestSuite drives the HTTP API end to end over the in-memory store.
type LedgerAPITestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *LedgerAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:              testSecret,
		JWTIssuer:              testIssuer,
		IsProduction:           true,
		ManualApprovalRequired: true,
		PostingAccounts:        domain.DefaultPostingAccounts(),
	}
	svc := services.NewServiceContainer(cfg, memory.New().Repositories(), nil)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, svc, nil, nil)

	w := suite.do("alice", http.MethodPost, "/accounts/seed", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *LedgerAPITestSuite) token(userID string, orgs ...string) string {
	if len(orgs) == 0 {
		orgs = []string{testOrg}
	}
	claims := middleware.LedgerClaims{
		Orgs: orgs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)
	return signed
}

// do sends a request under /api/v1/orgs/org-1 as userID.
func (suite *LedgerAPITestSuite) do(userID, method, path string, body any) *httptest.ResponseRecorder {
	return suite.request(suite.token(userID), method, "/api/v1/orgs/"+testOrg+path, body)
}

func (suite *LedgerAPITestSuite) request(token, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, target, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerAPITestSuite) decode(w *httptest.ResponseRecorder, dst any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func (suite *LedgerAPITestSuite) sale(orderID, date, amount, cost string) *httptest.ResponseRecorder {
	return suite.do("pos", http.MethodPost, "/postings/sales", gin.H{
		"date":          date,
		"orderID":       orderID,
		"amount":        amount,
		"costAmount":    cost,
		"paymentMethod": "CASH",
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (suite *LedgerAPITestSuite) TestHealth() {
	w := suite.request("", http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"ok"`)
}

func (suite *LedgerAPITestSuite) TestAuthorization() {
	w := suite.request("", http.MethodGet, "/api/v1/orgs/"+testOrg+"/accounts", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request(suite.token("alice", "org-2"), http.MethodGet, "/api/v1/orgs/"+testOrg+"/accounts", nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(suite.token("auditor", middleware.AllOrgs), http.MethodGet, "/api/v1/orgs/"+testOrg+"/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *LedgerAPITestSuite) TestAccountLifecycle() {
	w := suite.do("alice", http.MethodPost, "/accounts", gin.H{"code": "6900", "name": "Misc Expense", "accountType": "EXPENSE"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created dto.AccountResponse
	suite.decode(w, &created)
	suite.Equal("6900", created.Code)

	w = suite.do("alice", http.MethodPost, "/accounts", gin.H{"code": "6900", "name": "Again", "accountType": "EXPENSE"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do("alice", http.MethodGet, "/accounts/"+created.AccountID, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("alice", http.MethodGet, "/accounts/does-not-exist", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do("alice", http.MethodGet, "/accounts/tree", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("alice", http.MethodDelete, "/accounts/"+created.AccountID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *LedgerAPITestSuite) TestSalePostingIsIdempotent() {
	w := suite.sale("ord-1", "2025-01-10", "100.00", "40.00")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var first dto.PostingResponse
	suite.decode(w, &first)
	suite.True(first.Created)
	suite.Len(first.Related, 1)
	suite.Equal(domain.SourceSale, first.Entry.Source)

	w = suite.sale("ord-1", "2025-01-10", "100.00", "40.00")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var replay dto.PostingResponse
	suite.decode(w, &replay)
	suite.False(replay.Created)
	suite.Equal(first.Entry.EntryID, replay.Entry.EntryID)

	w = suite.do("alice", http.MethodGet, "/journals?limit=1", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListJournalsResponse
	suite.decode(w, &page)
	suite.Len(page.Entries, 1)
	suite.Require().NotNil(page.NextToken)

	w = suite.do("alice", http.MethodGet, "/journals?limit=1&nextToken="+url.QueryEscape(*page.NextToken), nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var next dto.ListJournalsResponse
	suite.decode(w, &next)
	suite.Len(next.Entries, 1)
	suite.Nil(next.NextToken)
	suite.NotEqual(page.Entries[0].EntryID, next.Entries[0].EntryID)
}

func (suite *LedgerAPITestSuite) TestPostingValidation() {
	w := suite.do("pos", http.MethodPost, "/postings/sales", gin.H{"date": "2025-01-10", "amount": "10", "paymentMethod": "CASH"})
	suite.Equal(http.StatusBadRequest, w.Code, "orderID is required")

	w = suite.sale("ord-2", "2025-13-01", "10.00", "0")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.sale("ord-3", "2025-01-10", "-5.00", "0")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerAPITestSuite) TestManualJournalNeedsSecondApprover() {
	w := suite.do("alice", http.MethodPost, "/journals", gin.H{
		"date": "2025-01-15",
		"memo": "Rent accrual",
		"lines": []gin.H{
			{"accountCode": "6300", "debit": "500.00"},
			{"accountCode": "1020", "credit": "500.00"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var pending dto.PostingResponse
	suite.decode(w, &pending)
	suite.Equal(domain.PendingApproval, pending.Entry.Status)
	path := "/journals/" + pending.Entry.EntryID

	w = suite.do("alice", http.MethodPost, path+"/approve", nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("bob", http.MethodPost, path+"/approve", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var approved dto.JournalEntryResponse
	suite.decode(w, &approved)
	suite.Equal(domain.Posted, approved.Status)
	suite.Equal("bob", approved.ApprovedBy)

	w = suite.do("bob", http.MethodPost, path+"/reject", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerAPITestSuite) TestUnbalancedManualJournal() {
	w := suite.do("alice", http.MethodPost, "/journals", gin.H{
		"date": "2025-01-15",
		"memo": "Typo",
		"lines": []gin.H{
			{"accountCode": "6300", "debit": "500.00"},
			{"accountCode": "1020", "credit": "50.00"},
		},
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "does not balance")
}

func (suite *LedgerAPITestSuite) TestReverseEntry() {
	w := suite.sale("ord-9", "2025-01-10", "30.00", "0")
	suite.Require().Equal(http.StatusCreated, w.Code)
	var sale dto.PostingResponse
	suite.decode(w, &sale)

	path := "/journals/" + sale.Entry.EntryID + "/reverse"
	w = suite.do("alice", http.MethodPost, path, gin.H{"date": "2025-01-12"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.PostingResponse
	suite.decode(w, &reversal)
	suite.Equal(sale.Entry.EntryID, reversal.Entry.ReversesEntryID)
	suite.Equal("2025-01-12", reversal.Entry.EntryDate)

	w = suite.do("alice", http.MethodPost, path, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var again dto.PostingResponse
	suite.decode(w, &again)
	suite.Equal(reversal.Entry.EntryID, again.Entry.EntryID)
}

func (suite *LedgerAPITestSuite) TestPeriodCloseBlocksLatePostings() {
	w := suite.do("alice", http.MethodPost, "/periods", gin.H{"name": "Jan", "startDate": "2025-01-01", "endDate": "2025-01-31"})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var period dto.PeriodResponse
	suite.decode(w, &period)

	w = suite.do("alice", http.MethodPost, "/periods", gin.H{"name": "Overlap", "startDate": "2025-01-15", "endDate": "2025-02-15"})
	suite.Equal(http.StatusConflict, w.Code)

	suite.Require().Equal(http.StatusCreated, suite.sale("ord-1", "2025-01-10", "100.00", "40.00").Code)

	w = suite.do("alice", http.MethodPost, "/periods/"+period.PeriodID+"/close", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var closed dto.PeriodResponse
	suite.decode(w, &closed)
	suite.Equal(domain.PeriodClosed, closed.Status)
	suite.NotEmpty(closed.ClosingEntryID)

	w = suite.sale("ord-late", "2025-01-20", "10.00", "0")
	suite.Equal(http.StatusConflict, w.Code)

	// The replay of an already recorded sale still answers with its entry.
	w = suite.sale("ord-1", "2025-01-10", "100.00", "40.00")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("alice", http.MethodPost, "/periods/"+period.PeriodID+"/lock", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	w = suite.do("alice", http.MethodPost, "/periods/"+period.PeriodID+"/lock", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do("alice", http.MethodGet, "/periods", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var periods []dto.PeriodResponse
	suite.decode(w, &periods)
	suite.Require().Len(periods, 1)
	suite.Equal(domain.PeriodLocked, periods[0].Status)
}

func (suite *LedgerAPITestSuite) TestReports() {
	suite.Require().Equal(http.StatusCreated, suite.sale("ord-1", "2025-01-10", "100.00", "40.00").Code)

	w := suite.do("alice", http.MethodGet, "/reports/profit-and-loss?from=2025-01-01&to=2025-01-31", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var pl dto.ProfitAndLossResponse
	suite.decode(w, &pl)
	suite.True(pl.Summary.TotalRevenue.Equal(dec("100")), pl.Summary.TotalRevenue.String())
	suite.True(pl.Summary.NetProfit.Equal(dec("60")), pl.Summary.NetProfit.String())

	w = suite.do("alice", http.MethodGet, "/reports/balance-sheet?asOf=2025-01-31", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var bs dto.BalanceSheetResponse
	suite.decode(w, &bs)
	suite.True(bs.Summary.TotalAssets.Equal(dec("60")), bs.Summary.TotalAssets.String())
	suite.True(bs.Summary.TotalAssets.Equal(bs.Summary.TotalLiabilities.Add(bs.Summary.TotalEquity)))

	w = suite.do("alice", http.MethodGet, "/reports/trial-balance", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var tb dto.TrialBalanceResponse
	suite.decode(w, &tb)
	suite.True(tb.Totals.Debit.Equal(tb.Totals.Credit))

	w = suite.do("alice", http.MethodGet, "/reports/financial-summary?from=2025-01-01&to=2025-01-31", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var summary domain.FinancialSummary
	suite.decode(w, &summary)
	suite.True(summary.GrossMargin.Equal(dec("60")), summary.GrossMargin.String())

	w = suite.do("alice", http.MethodGet, "/reports/branch-rollup?from=2025-01-01&to=2025-01-31", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do("alice", http.MethodGet, "/reports/ar-aging?asOf=2025-02-01", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do("alice", http.MethodGet, "/reports/profit-and-loss?from=2025-01-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerAPITestSuite) TestAccountLedger() {
	suite.Require().Equal(http.StatusCreated, suite.sale("ord-1", "2025-01-10", "100.00", "0").Code)
	suite.Require().Equal(http.StatusCreated, suite.sale("ord-2", "2025-01-11", "25.00", "0").Code)

	w := suite.do("alice", http.MethodGet, "/accounts?type=ASSET", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var list dto.ListAccountsResponse
	suite.decode(w, &list)
	var cashID string
	for _, a := range list.Accounts {
		if a.Code == "1000" {
			cashID = a.AccountID
		}
	}
	suite.Require().NotEmpty(cashID)

	w = suite.do("alice", http.MethodGet, fmt.Sprintf("/accounts/%s/ledger?from=2025-01-01", cashID), nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var lines []domain.LedgerLine
	suite.decode(w, &lines)
	suite.Require().Len(lines, 2)
	suite.True(lines[1].RunningBalance.Equal(dec("125")), lines[1].RunningBalance.String())
}

func TestLedgerAPI(t *testing.T) {
	suite.Run(t, new(LedgerAPITestSuite))
}

func (suite *LedgerAPITestSuite) TestFindJournalBySource() {
	w := suite.sale("ord-7", "2025-01-10", "42.00", "0")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var posted dto.PostingResponse
	suite.decode(w, &posted)
	w = suite.sale("ord-8", "2025-01-11", "8.00", "0")
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do("alice", http.MethodGet, "/journals?source=SALE&sourceID=ord-7", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var found dto.ListJournalsResponse
	suite.decode(w, &found)
	suite.Require().Len(found.Entries, 1)
	suite.Equal(posted.Entry.EntryID, found.Entries[0].EntryID)
	suite.Nil(found.NextToken)

	w = suite.do("alice", http.MethodGet, "/journals?source=SALE&sourceID=ord-404", nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var missing dto.ListJournalsResponse
	suite.decode(w, &missing)
	suite.Empty(missing.Entries)

	w = suite.do("alice", http.MethodGet, "/journals?sourceID=ord-7", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}
