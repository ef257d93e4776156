package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventRequest is a posting request body that builds its domain event.
type eventRequest[E any] interface {
	ToDomain(orgID, postedBy string) (E, error)
}

// postEvent binds R, converts it to its event and hands it to post. A replayed
// source id answers 200 with the stored entry instead of 201.
func postEvent[E any, R eventRequest[E]](c *gin.Context, post func(context.Context, E) (*domain.PostingResult, error), what string) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	actor, ok := identity(c)
	if !ok {
		return
	}

	ev, err := req.ToDomain(c.Param("orgID"), actor)
	if err != nil {
		respondError(c, err, "Failed to post "+what)
		return
	}

	result, err := post(c.Request.Context(), ev)
	if err != nil {
		respondError(c, err, "Failed to post "+what)
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Posting processed",
		slog.String("kind", what),
		slog.String("entry_id", result.Entry.EntryID),
		slog.Bool("created", result.Created))
	c.JSON(status, dto.ToPostingResponse(result))
}

// postingHandler exposes the operational event adapters.
type postingHandler struct {
	postingService portssvc.PostingService
}

func newPostingHandler(ps portssvc.PostingService) *postingHandler {
	return &postingHandler{postingService: ps}
}

func registerPostingRoutes(org *gin.RouterGroup, postingService portssvc.PostingService) {
	h := newPostingHandler(postingService)

	postings := org.Group("/postings")
	{
		postings.POST("/sales", h.postSale)
		postings.POST("/customer-payments", h.postCustomerPayment)
		postings.POST("/refunds", h.postRefund)
		postings.POST("/cash-safe", h.postCashSafe)
		postings.POST("/wastage", h.postWastage)
		postings.POST("/payroll", h.postPayroll)
		postings.POST("/service-provider-bills", h.postServiceProviderBill)
		postings.POST("/service-provider-payments", h.postServiceProviderPayment)
	}
}

// postSale godoc
// @Summary Post a closed sale
// @Description Books revenue against the payment method's account and, when a cost is given, a SALE_COGS companion entry
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   sale body dto.SaleRequest true "Sale event"
// @Success 201 {object} dto.PostingResponse "Entry created"
// @Success 200 {object} dto.PostingResponse "Order already posted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Period closed or locked"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/sales [post]
func (h *postingHandler) postSale(c *gin.Context) {
	postEvent[domain.SaleClosed, dto.SaleRequest](c, h.postingService.PostSale, "sale")
}

// postCustomerPayment godoc
// @Summary Post a customer payment
// @Description Settles accounts receivable against cash or bank
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   payment body dto.CustomerPaymentRequest true "Payment event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/customer-payments [post]
func (h *postingHandler) postCustomerPayment(c *gin.Context) {
	postEvent[domain.CustomerPaymentReceived, dto.CustomerPaymentRequest](c, h.postingService.PostCustomerPayment, "customer payment")
}

// postRefund godoc
// @Summary Post a refund
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   refund body dto.RefundRequest true "Refund event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/refunds [post]
func (h *postingHandler) postRefund(c *gin.Context) {
	postEvent[domain.RefundIssued, dto.RefundRequest](c, h.postingService.PostRefund, "refund")
}

// postCashSafe godoc
// @Summary Post a cash to safe movement
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   movement body dto.CashSafeRequest true "Movement event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/cash-safe [post]
func (h *postingHandler) postCashSafe(c *gin.Context) {
	postEvent[domain.CashSafeMovement, dto.CashSafeRequest](c, h.postingService.PostCashSafeMovement, "cash safe movement")
}

// postWastage godoc
// @Summary Post recorded wastage
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   wastage body dto.WastageRequest true "Wastage event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/wastage [post]
func (h *postingHandler) postWastage(c *gin.Context) {
	postEvent[domain.WastageRecorded, dto.WastageRequest](c, h.postingService.PostWastage, "wastage")
}

// postPayroll godoc
// @Summary Post an approved payroll
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   payroll body dto.PayrollRequest true "Payroll event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/payroll [post]
func (h *postingHandler) postPayroll(c *gin.Context) {
	postEvent[domain.PayrollApproved, dto.PayrollRequest](c, h.postingService.PostPayroll, "payroll")
}

// postServiceProviderBill godoc
// @Summary Post a service provider bill
// @Description Books the expense against accounts payable under the bill's document reference
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   bill body dto.ServiceProviderBillRequest true "Bill event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/service-provider-bills [post]
func (h *postingHandler) postServiceProviderBill(c *gin.Context) {
	postEvent[domain.ServiceProviderBill, dto.ServiceProviderBillRequest](c, h.postingService.PostServiceProviderExpense, "service provider bill")
}

// postServiceProviderPayment godoc
// @Summary Post a service provider payment
// @Tags postings
// @Accept  json
// @Produce  json
// @Param   orgID path string true "Organization ID"
// @Param   payment body dto.ServiceProviderPaymentRequest true "Payment event"
// @Success 201 {object} dto.PostingResponse
// @Success 200 {object} dto.PostingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /orgs/{orgID}/postings/service-provider-payments [post]
func (h *postingHandler) postServiceProviderPayment(c *gin.Context) {
	postEvent[domain.ServiceProviderPayment, dto.ServiceProviderPaymentRequest](c, h.postingService.PostServiceProviderPayment, "service provider payment")
}
