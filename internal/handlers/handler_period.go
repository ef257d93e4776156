package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

func newPeriodHandler(ps portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: ps}
}

func registerPeriodRoutes(org *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := org.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.GET("/:periodID", h.getPeriod)
		periods.POST("/:periodID/close", h.closePeriod)
		periods.POST("/:periodID/lock", h.lockPeriod)
	}
}

// createPeriod godoc
// @Summary Open a fiscal period
// @Tags periods
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   period body dto.CreatePeriodRequest true "Period bounds"
// @Success 201 {object} dto.PeriodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Overlaps an existing period"
// @Security BearerAuth
// @Router /orgs/{orgID}/periods [post]
func (h *periodHandler) createPeriod(c *gin.Context) {
	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	actor, ok := identity(c)
	if !ok {
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), c.Param("orgID"), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List fiscal periods
// @Tags periods
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Success 200 {array} dto.PeriodResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	periods, err := h.periodService.ListPeriods(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		respondError(c, err, "Failed to list periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponses(periods))
}

// getPeriod godoc
// @Summary Get a fiscal period
// @Tags periods
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/periods/{periodID} [get]
func (h *periodHandler) getPeriod(c *gin.Context) {
	period, err := h.periodService.GetPeriod(c.Request.Context(), c.Param("orgID"), c.Param("periodID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// closePeriod godoc
// @Summary Close a fiscal period
// @Description Posts the closing entry that zeroes revenue and expense accounts into retained earnings, then marks the period CLOSED
// @Tags periods
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already closed"
// @Security BearerAuth
// @Router /orgs/{orgID}/periods/{periodID}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	period, err := h.periodService.ClosePeriod(c.Request.Context(), c.Param("orgID"), c.Param("periodID"), actor)
	if err != nil {
		respondError(c, err, "Failed to close period")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Period closed",
		slog.String("period_id", period.PeriodID),
		slog.String("closing_entry_id", period.ClosingEntryID))
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// lockPeriod godoc
// @Summary Lock a closed fiscal period
// @Description Irreversible. A locked period never accepts postings again.
// @Tags periods
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Period not closed"
// @Security BearerAuth
// @Router /orgs/{orgID}/periods/{periodID}/lock [post]
func (h *periodHandler) lockPeriod(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	period, err := h.periodService.LockPeriod(c.Request.Context(), c.Param("orgID"), c.Param("periodID"), actor)
	if err != nil {
		respondError(c, err, "Failed to lock period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}
