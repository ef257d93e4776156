package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	summaryService   portssvc.SummaryService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, ss portssvc.SummaryService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		summaryService:   ss,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(org *gin.RouterGroup, rs portssvc.ReportingService, ss portssvc.SummaryService) {
	h := newReportingHandler(rs, ss)

	reports := org.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/ap-aging", h.getAPAging)
		reports.GET("/ar-aging", h.getARAging)
		reports.GET("/financial-summary", h.getFinancialSummary)
		reports.GET("/branch-rollup", h.getBranchRollup)
	}
	org.GET("/accounts/:accountID/ledger", h.getAccountLedger)
}

// asOfOrToday parses the asOf parameter, defaulting to today's date.
func (h *reportingHandler) asOfOrToday(asOf string) (time.Time, error) {
	if asOf == "" {
		return domain.DateOnly(h.now()), nil
	}
	return dto.ParseDate(asOf)
}

func parseRange(p dto.RangeParams) (from, to time.Time, err error) {
	if from, err = dto.ParseDate(p.From); err != nil {
		return
	}
	to, err = dto.ParseDate(p.To)
	return
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Net debit or credit per account through asOf. Without asOf the whole ledger is included.
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param asOf query string false "Report date (YYYY-MM-DD)"
// @Param branch query string false "Branch filter"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	asOf, err := dto.ParseOptionalDate(params.AsOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("orgID"), asOf, dto.BranchPtr(params.Branch))
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Revenue and expenses over [from, to]. Closing entries are excluded.
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param branch query string false "Branch filter"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	var params dto.RangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	from, to, err := parseRange(params)
	if err != nil {
		respondError(c, err, "Failed to generate profit and loss")
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), c.Param("orgID"), from, to, dto.BranchPtr(params.Branch))
	if err != nil {
		respondError(c, err, "Failed to generate profit and loss")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Assets, liabilities and equity as of a date, with current earnings folded into equity
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Report failed or ledger out of balance"
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	asOf, err := h.asOfOrToday(params.AsOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), c.Param("orgID"), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getAPAging godoc
// @Summary Accounts payable aging
// @Description Open payable documents bucketed by age
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.AgingReport
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/ap-aging [get]
func (h *reportingHandler) getAPAging(c *gin.Context) {
	h.aging(c, h.reportingService.APAging, "Failed to generate AP aging")
}

// getARAging godoc
// @Summary Accounts receivable aging
// @Description Open receivable documents bucketed by age
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.AgingReport
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/ar-aging [get]
func (h *reportingHandler) getARAging(c *gin.Context) {
	h.aging(c, h.reportingService.ARAging, "Failed to generate AR aging")
}

type agingFunc func(ctx context.Context, orgID string, asOf time.Time) (*domain.AgingReport, error)

func (h *reportingHandler) aging(c *gin.Context, run agingFunc, fallback string) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	asOf, err := h.asOfOrToday(params.AsOf)
	if err != nil {
		respondError(c, err, fallback)
		return
	}

	report, err := run(c.Request.Context(), c.Param("orgID"), asOf)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getFinancialSummary godoc
// @Summary Financial summary
// @Description Revenue, expenses, net profit and cash position for a period, optionally for one branch
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Param branch query string false "Branch filter"
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/financial-summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	var params dto.RangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	from, to, err := parseRange(params)
	if err != nil {
		respondError(c, err, "Failed to compute financial summary")
		return
	}

	summary, err := h.summaryService.GetFinancialSummary(c.Request.Context(), c.Param("orgID"), dto.BranchPtr(params.Branch), from, to)
	if err != nil {
		respondError(c, err, "Failed to compute financial summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getBranchRollup godoc
// @Summary Branch rollup
// @Description Summaries for every branch plus the org total. Fails when the branches do not add up to the total.
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.BranchRollup
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/reports/branch-rollup [get]
func (h *reportingHandler) getBranchRollup(c *gin.Context) {
	var params dto.RangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	from, to, err := parseRange(params)
	if err != nil {
		respondError(c, err, "Failed to compute branch rollup")
		return
	}

	rollup, err := h.summaryService.GetBranchRollup(c.Request.Context(), c.Param("orgID"), from, to)
	if err != nil {
		respondError(c, err, "Failed to compute branch rollup")
		return
	}
	c.JSON(http.StatusOK, rollup)
}

// getAccountLedger godoc
// @Summary Account ledger
// @Description Lines posted to one account with a running balance on its normal side
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} domain.LedgerLine
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/accounts/{accountID}/ledger [get]
func (h *reportingHandler) getAccountLedger(c *gin.Context) {
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	from, err := dto.ParseOptionalDate(params.From)
	if err != nil {
		respondError(c, err, "Failed to load account ledger")
		return
	}
	to, err := dto.ParseOptionalDate(params.To)
	if err != nil {
		respondError(c, err, "Failed to load account ledger")
		return
	}

	lines, err := h.reportingService.AccountLedger(c.Request.Context(), c.Param("orgID"), c.Param("accountID"), from, to)
	if err != nil {
		respondError(c, err, "Failed to load account ledger")
		return
	}
	c.JSON(http.StatusOK, lines)
}
