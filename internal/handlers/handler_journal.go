package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	postingService portssvc.PostingService
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade, ps portssvc.PostingService) *journalHandler {
	return &journalHandler{
		journalService: js,
		postingService: ps,
	}
}

func registerJournalRoutes(org *gin.RouterGroup, js portssvc.JournalSvcFacade, ps portssvc.PostingService) {
	h := newJournalHandler(js, ps)

	journals := org.Group("/journals")
	{
		journals.POST("", h.createManualJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:entryID", h.getJournal)
		journals.POST("/:entryID/reverse", h.reverseJournal)
		journals.POST("/:entryID/approve", h.approveJournal)
		journals.POST("/:entryID/reject", h.rejectJournal)
	}
}

// createManualJournal godoc
// @Summary Record a manual journal
// @Description Records an accountant's entry. Lines reference accounts by code. When approval is required the entry is stored PENDING_APPROVAL.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   journal body dto.CreateManualJournalRequest true "Journal lines"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse "Unbalanced or malformed entry"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Period closed or locked"
// @Failure 500 {object} dto.ErrorResponse "Failed to record journal"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals [post]
func (h *journalHandler) createManualJournal(c *gin.Context) {
	var req dto.CreateManualJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	actor, ok := identity(c)
	if !ok {
		return
	}

	manual, err := req.ToDomain(c.Param("orgID"), actor)
	if err != nil {
		respondError(c, err, "Failed to record journal")
		return
	}
	result, err := h.postingService.CreateManualJournal(c.Request.Context(), manual)
	if err != nil {
		respondError(c, err, "Failed to record journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Manual journal recorded",
		slog.String("entry_id", result.Entry.EntryID),
		slog.String("status", string(result.Entry.Status)))
	c.JSON(http.StatusCreated, dto.ToPostingResponse(result))
}

// listJournals godoc
// @Summary List journal entries
// @Description Lists entries newest first with keyset pagination
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   from query string false "Earliest entry date (YYYY-MM-DD)"
// @Param   to query string false "Latest entry date (YYYY-MM-DD)"
// @Param   source query string false "Source filter"
// @Param   sourceID query string false "Source event ID; with source, returns at most the one entry recorded for that event"
// @Param   status query string false "Status filter"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	if params.SourceID != "" {
		h.findJournalBySource(c, params)
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), c.Param("orgID"), params)
	if err != nil {
		respondError(c, err, "Failed to list journals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// findJournalBySource answers the source lookup form of the list route with zero or one entries.
func (h *journalHandler) findJournalBySource(c *gin.Context, params dto.ListJournalsParams) {
	if params.Source == "" {
		badRequest(c, "query parameters", errors.New("sourceID requires source"))
		return
	}
	resp := dto.ListJournalsResponse{Entries: []dto.JournalEntryResponse{}}
	entry, err := h.journalService.FindBySource(c.Request.Context(), c.Param("orgID"), domain.Source(params.Source), params.SourceID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
	case err != nil:
		respondError(c, err, "Failed to find journal")
		return
	default:
		resp.Entries = append(resp.Entries, dto.ToJournalEntryResponse(entry))
	}
	c.JSON(http.StatusOK, resp)
}

// getJournal godoc
// @Summary Get a journal entry and its lines
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{entryID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("orgID"), c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseJournal godoc
// @Summary Reverse a posted entry
// @Description Posts the mirror entry. Reversing an entry twice returns the first reversal.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Param   reversal body dto.ReverseEntryRequest false "Reversal date"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse "Already reversed"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Entry not reversible or period closed"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{entryID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	var req dto.ReverseEntryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "request format", err)
			return
		}
	}
	actor, ok := identity(c)
	if !ok {
		return
	}
	date, err := dto.ParseOptionalDate(req.Date)
	if err != nil {
		respondError(c, err, "Failed to reverse journal")
		return
	}

	reversal, created, err := h.journalService.ReverseEntry(c.Request.Context(), c.Param("orgID"), c.Param("entryID"), date, actor)
	if err != nil {
		respondError(c, err, "Failed to reverse journal")
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	c.JSON(status, dto.PostingResponse{Entry: dto.ToJournalEntryResponse(reversal), Created: created})
}

// approveJournal godoc
// @Summary Approve a pending manual journal
// @Description Posts the entry. The approver must differ from the requester.
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 403 {object} dto.ErrorResponse "Self approval"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Entry not pending or period closed"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{entryID}/approve [post]
func (h *journalHandler) approveJournal(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entry, err := h.postingService.ApproveManualJournal(c.Request.Context(), c.Param("orgID"), c.Param("entryID"), actor)
	if err != nil {
		respondError(c, err, "Failed to approve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// rejectJournal godoc
// @Summary Reject a pending manual journal
// @Tags journals
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Entry not pending"
// @Security BearerAuth
// @Router /orgs/{orgID}/journals/{entryID}/reject [post]
func (h *journalHandler) rejectJournal(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entry, err := h.postingService.RejectManualJournal(c.Request.Context(), c.Param("orgID"), c.Param("entryID"), actor)
	if err != nil {
		respondError(c, err, "Failed to reject journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
