package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// PostingService translates domain events into journal entries. Every operation is
// idempotent per source id and returns the created-or-existing entry.
type PostingService interface {
	PostSale(ctx context.Context, ev domain.SaleClosed) (*domain.PostingResult, error)
	PostCustomerPayment(ctx context.Context, ev domain.CustomerPaymentReceived) (*domain.PostingResult, error)
	PostRefund(ctx context.Context, ev domain.RefundIssued) (*domain.PostingResult, error)
	PostCashSafeMovement(ctx context.Context, ev domain.CashSafeMovement) (*domain.PostingResult, error)
	PostWastage(ctx context.Context, ev domain.WastageRecorded) (*domain.PostingResult, error)
	PostPayroll(ctx context.Context, ev domain.PayrollApproved) (*domain.PostingResult, error)
	PostServiceProviderExpense(ctx context.Context, ev domain.ServiceProviderBill) (*domain.PostingResult, error)
	PostServiceProviderPayment(ctx context.Context, ev domain.ServiceProviderPayment) (*domain.PostingResult, error)

	// CreateManualJournal records an accountant's entry. When approval is required the
	// entry is stored PENDING_APPROVAL.
	CreateManualJournal(ctx context.Context, req domain.ManualJournalRequest) (*domain.PostingResult, error)
	// ApproveManualJournal posts a pending manual journal. The approver must differ from the requester.
	ApproveManualJournal(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error)
	RejectManualJournal(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error)
}
