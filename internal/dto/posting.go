package dto

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EventHeaderRequest holds the fields every posting request shares.
type EventHeaderRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	BranchID string `json:"branchID"`
}

func (h EventHeaderRequest) toDomain(orgID, postedBy string) (domain.EventHeader, error) {
	date, err := ParseDate(h.Date)
	if err != nil {
		return domain.EventHeader{}, err
	}
	return domain.EventHeader{OrgID: orgID, Date: date, BranchID: h.BranchID, PostedBy: postedBy}, nil
}

// SaleRequest is the body of POST /postings/sales.
type SaleRequest struct {
	EventHeaderRequest
	OrderID       string          `json:"orderID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	CostAmount    decimal.Decimal `json:"costAmount"`
}

// ToDomain builds the SaleClosed event.
func (r SaleRequest) ToDomain(orgID, postedBy string) (domain.SaleClosed, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.SaleClosed{
		EventHeader:   h,
		OrderID:       r.OrderID,
		Amount:        r.Amount,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		CostAmount:    r.CostAmount,
	}, err
}

// CustomerPaymentRequest is the body of POST /postings/customer-payments.
type CustomerPaymentRequest struct {
	EventHeaderRequest
	PaymentID string          `json:"paymentID" binding:"required"`
	OrderID   string          `json:"orderID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToDomain builds the CustomerPaymentReceived event.
func (r CustomerPaymentRequest) ToDomain(orgID, postedBy string) (domain.CustomerPaymentReceived, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.CustomerPaymentReceived{EventHeader: h, PaymentID: r.PaymentID, OrderID: r.OrderID, Amount: r.Amount}, err
}

// RefundRequest is the body of POST /postings/refunds.
type RefundRequest struct {
	EventHeaderRequest
	RefundID string          `json:"refundID" binding:"required"`
	OrderID  string          `json:"orderID"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToDomain builds the RefundIssued event.
func (r RefundRequest) ToDomain(orgID, postedBy string) (domain.RefundIssued, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.RefundIssued{EventHeader: h, RefundID: r.RefundID, OrderID: r.OrderID, Amount: r.Amount}, err
}

// CashSafeRequest is the body of POST /postings/cash-safe.
type CashSafeRequest struct {
	EventHeaderRequest
	MovementID string          `json:"movementID" binding:"required"`
	Direction  string          `json:"direction" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToDomain builds the CashSafeMovement event.
func (r CashSafeRequest) ToDomain(orgID, postedBy string) (domain.CashSafeMovement, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.CashSafeMovement{EventHeader: h, MovementID: r.MovementID, Direction: domain.SafeDirection(r.Direction), Amount: r.Amount}, err
}

// WastageRequest is the body of POST /postings/wastage.
type WastageRequest struct {
	EventHeaderRequest
	AdjustmentID string          `json:"adjustmentID" binding:"required"`
	Cost         decimal.Decimal `json:"cost"`
	Reason       string          `json:"reason"`
}

// ToDomain builds the WastageRecorded event.
func (r WastageRequest) ToDomain(orgID, postedBy string) (domain.WastageRecorded, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.WastageRecorded{EventHeader: h, AdjustmentID: r.AdjustmentID, Cost: r.Cost, Reason: r.Reason}, err
}

// PayrollRequest is the body of POST /postings/payroll.
type PayrollRequest struct {
	EventHeaderRequest
	PayRunID string          `json:"payRunID" binding:"required"`
	Gross    decimal.Decimal `json:"gross"`
}

// ToDomain builds the PayrollApproved event.
func (r PayrollRequest) ToDomain(orgID, postedBy string) (domain.PayrollApproved, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.PayrollApproved{EventHeader: h, PayRunID: r.PayRunID, Gross: r.Gross}, err
}

// ServiceProviderBillRequest is the body of POST /postings/service-provider-bills.
type ServiceProviderBillRequest struct {
	EventHeaderRequest
	BillID     string          `json:"billID" binding:"required"`
	ProviderID string          `json:"providerID"`
	Category   string          `json:"category" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToDomain builds the ServiceProviderBill event.
func (r ServiceProviderBillRequest) ToDomain(orgID, postedBy string) (domain.ServiceProviderBill, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.ServiceProviderBill{
		EventHeader: h,
		BillID:      r.BillID,
		ProviderID:  r.ProviderID,
		Category:    domain.ExpenseCategory(r.Category),
		Amount:      r.Amount,
	}, err
}

// ServiceProviderPaymentRequest is the body of POST /postings/service-provider-payments.
type ServiceProviderPaymentRequest struct {
	EventHeaderRequest
	PaymentID string          `json:"paymentID" binding:"required"`
	BillID    string          `json:"billID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	FromBank  bool            `json:"fromBank"`
}

// ToDomain builds the ServiceProviderPayment event.
func (r ServiceProviderPaymentRequest) ToDomain(orgID, postedBy string) (domain.ServiceProviderPayment, error) {
	h, err := r.toDomain(orgID, postedBy)
	return domain.ServiceProviderPayment{EventHeader: h, PaymentID: r.PaymentID, BillID: r.BillID, Amount: r.Amount, FromBank: r.FromBank}, err
}
