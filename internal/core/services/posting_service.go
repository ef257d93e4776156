package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// postingService turns business events into balanced journal entries using the
// org's posting accounts.
type postingService struct {
	BaseService
	journal                portssvc.JournalSvcFacade
	accounts               portssvc.AccountSvcFacade
	validate               *validator.Validate
	manualApprovalRequired bool
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithManualApprovalRequired stores manual journals as PENDING_APPROVAL until a second identity approves them.
func WithManualApprovalRequired(required bool) PostingServiceOption {
	return func(s *postingService) {
		s.manualApprovalRequired = required
	}
}

// NewPostingService creates a new posting service.
func NewPostingService(journal portssvc.JournalSvcFacade, accounts portssvc.AccountSvcFacade, options ...PostingServiceOption) portssvc.PostingService {
	svc := &postingService{
		journal:  journal,
		accounts: accounts,
		validate: newEventValidator(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingService = (*postingService)(nil)

func newEventValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
	_ = v.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !d.IsNegative()
	})
	return v
}

// validateEvent maps validator failures onto the ledger's validation error.
func (s *postingService) validateEvent(ev any) error {
	err := s.validate.Struct(ev)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationFailedError(err.Error())
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "positive_decimal":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than zero", fe.Field()))
		case "nonnegative_decimal":
			msgs = append(msgs, fmt.Sprintf("%s cannot be negative", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s items", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.NewValidationFailedError(strings.Join(msgs, "; "))
}

// leg is one side of a two-line event posting.
type leg struct {
	role        domain.AccountRole
	debit       bool
	documentRef string
}

// postPair resolves the roles of a two-line posting and appends the entry.
func (s *postingService) postPair(ctx context.Context, h domain.EventHeader, source domain.Source, sourceID, memo string, amount decimal.Decimal, legs ...leg) (*domain.PostingResult, error) {
	lines := make([]domain.JournalLine, 0, len(legs))
	for _, l := range legs {
		account, err := s.accounts.ResolveAccount(ctx, h.OrgID, l.role)
		if err != nil {
			s.LogFailure(ctx, err, "Posting account unavailable",
				slog.String("org_id", h.OrgID),
				slog.String("source", string(source)),
				slog.String("role", string(l.role)))
			return nil, err
		}
		debit, credit := lineAmount(amount, l.debit)
		lines = append(lines, domain.JournalLine{
			AccountID:   account.AccountID,
			BranchID:    h.BranchID,
			DocumentRef: l.documentRef,
			Debit:       debit,
			Credit:      credit,
		})
	}

	entry, created, err := s.journal.AppendEntry(ctx, domain.JournalEntry{
		OrgID:     h.OrgID,
		EntryDate: h.Date,
		Memo:      memo,
		Source:    source,
		SourceID:  sourceID,
		PostedBy:  h.PostedBy,
		Lines:     lines,
	})
	if err != nil {
		return nil, err
	}
	return &domain.PostingResult{Entry: entry, Created: created}, nil
}

func (s *postingService) PostSale(ctx context.Context, ev domain.SaleClosed) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}

	debit := leg{role: domain.RoleCash, debit: true}
	switch ev.PaymentMethod {
	case domain.PaymentCard:
		debit.role = domain.RoleBank
	case domain.PaymentOnAccount:
		debit = leg{role: domain.RoleAccountsReceivable, debit: true, documentRef: ev.OrderID}
	}

	result, err := s.postPair(ctx, ev.EventHeader, domain.SourceSale, ev.OrderID,
		fmt.Sprintf("Sale %s (%s)", ev.OrderID, strings.ToLower(string(ev.PaymentMethod))),
		ev.Amount, debit, leg{role: domain.RoleSalesRevenue})
	if err != nil {
		return nil, err
	}
	if !ev.CostAmount.IsPositive() {
		return result, nil
	}

	cogs, err := s.postPair(ctx, ev.EventHeader, domain.SourceSaleCOGS, ev.OrderID,
		"Cost of goods sold for order "+ev.OrderID,
		ev.CostAmount, leg{role: domain.RoleCOGS, debit: true}, leg{role: domain.RoleInventory})
	if err != nil {
		// The revenue entry stands; a redelivery of the event completes the cost side.
		return nil, fmt.Errorf("sale %s recorded but cost of goods sold failed: %w", ev.OrderID, err)
	}
	result.Related = append(result.Related, *cogs)
	return result, nil
}

func (s *postingService) PostCustomerPayment(ctx context.Context, ev domain.CustomerPaymentReceived) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceCustomerPayment, ev.PaymentID,
		fmt.Sprintf("Customer payment %s for order %s", ev.PaymentID, ev.OrderID),
		ev.Amount,
		leg{role: domain.RoleCash, debit: true},
		leg{role: domain.RoleAccountsReceivable, documentRef: ev.OrderID})
}

func (s *postingService) PostRefund(ctx context.Context, ev domain.RefundIssued) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	memo := "Refund " + ev.RefundID
	if ev.OrderID != "" {
		memo += " for order " + ev.OrderID
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceRefund, ev.RefundID, memo, ev.Amount,
		leg{role: domain.RoleSalesRevenue, debit: true},
		leg{role: domain.RoleCash})
}

func (s *postingService) PostCashSafeMovement(ctx context.Context, ev domain.CashSafeMovement) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}

	var to, from domain.AccountRole
	switch ev.Direction {
	case domain.ToSafe:
		to, from = domain.RoleCashSafe, domain.RoleCash
	case domain.FromSafe:
		to, from = domain.RoleCash, domain.RoleCashSafe
	case domain.ToBank:
		to, from = domain.RoleBank, domain.RoleCashSafe
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceCashSafe, ev.MovementID,
		fmt.Sprintf("Cash movement %s (%s)", ev.MovementID, strings.ToLower(string(ev.Direction))),
		ev.Amount,
		leg{role: to, debit: true},
		leg{role: from})
}

func (s *postingService) PostWastage(ctx context.Context, ev domain.WastageRecorded) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	memo := "Inventory wastage " + ev.AdjustmentID
	if ev.Reason != "" {
		memo += ": " + ev.Reason
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceWastage, ev.AdjustmentID, memo, ev.Cost,
		leg{role: domain.RoleWastageExpense, debit: true},
		leg{role: domain.RoleInventory})
}

func (s *postingService) PostPayroll(ctx context.Context, ev domain.PayrollApproved) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourcePayroll, ev.PayRunID,
		"Payroll accrual for pay run "+ev.PayRunID,
		ev.Gross,
		leg{role: domain.RolePayrollExpense, debit: true},
		leg{role: domain.RolePayrollPayable})
}

var expenseRoles = map[domain.ExpenseCategory]domain.AccountRole{
	domain.ExpenseRent:      domain.RoleRentExpense,
	domain.ExpenseUtilities: domain.RoleUtilitiesExpense,
	domain.ExpenseMarketing: domain.RoleMarketingExpense,
}

func (s *postingService) PostServiceProviderExpense(ctx context.Context, ev domain.ServiceProviderBill) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	memo := fmt.Sprintf("%s bill %s", strings.ToLower(string(ev.Category)), ev.BillID)
	if ev.ProviderID != "" {
		memo += " from " + ev.ProviderID
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceServiceProviderBill, ev.BillID, memo, ev.Amount,
		leg{role: expenseRoles[ev.Category], debit: true},
		leg{role: domain.RoleServiceProviderPayable, documentRef: ev.BillID})
}

func (s *postingService) PostServiceProviderPayment(ctx context.Context, ev domain.ServiceProviderPayment) (*domain.PostingResult, error) {
	if err := s.validateEvent(ev); err != nil {
		return nil, err
	}
	paidFrom := domain.RoleCash
	if ev.FromBank {
		paidFrom = domain.RoleBank
	}
	return s.postPair(ctx, ev.EventHeader, domain.SourceServiceProviderPayment, ev.PaymentID,
		fmt.Sprintf("Payment %s against bill %s", ev.PaymentID, ev.BillID),
		ev.Amount,
		leg{role: domain.RoleServiceProviderPayable, debit: true, documentRef: ev.BillID},
		leg{role: paidFrom})
}

func (s *postingService) CreateManualJournal(ctx context.Context, req domain.ManualJournalRequest) (*domain.PostingResult, error) {
	if err := s.validateEvent(req); err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, 0, len(req.Lines))
	for _, ml := range req.Lines {
		account, err := s.accounts.GetAccountByCode(ctx, req.OrgID, ml.AccountCode)
		if err != nil {
			if isNotFound(err) {
				return nil, &apperrors.UnknownAccountError{OrgID: req.OrgID, AccountID: ml.AccountCode}
			}
			return nil, err
		}
		lines = append(lines, domain.JournalLine{
			AccountID:   account.AccountID,
			BranchID:    ml.BranchID,
			DocumentRef: ml.DocumentRef,
			Debit:       ml.Debit,
			Credit:      ml.Credit,
			Memo:        ml.Memo,
		})
	}

	status := domain.Posted
	if s.manualApprovalRequired {
		status = domain.PendingApproval
	}
	entry, created, err := s.journal.AppendEntry(ctx, domain.JournalEntry{
		OrgID:     req.OrgID,
		EntryDate: req.Date,
		Memo:      req.Memo,
		Source:    domain.SourceManual,
		PostedBy:  req.RequestingIdentity,
		Status:    status,
		Lines:     lines,
	})
	if err != nil {
		return nil, err
	}
	return &domain.PostingResult{Entry: entry, Created: created}, nil
}

// pendingManual loads a manual journal awaiting a decision.
func (s *postingService) pendingManual(ctx context.Context, orgID, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journal.GetEntry(ctx, orgID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Source != domain.SourceManual {
		return nil, apperrors.NewStateError(fmt.Sprintf("journal entry %s is not a manual journal", entryID))
	}
	return entry, nil
}

func (s *postingService) ApproveManualJournal(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error) {
	entry, err := s.pendingManual(ctx, orgID, entryID)
	if err != nil {
		return nil, err
	}
	if approver == "" || approver == entry.PostedBy {
		err := apperrors.NewForbiddenError("a manual journal must be approved by someone other than its requester")
		s.LogWarn(ctx, err, "Self-approval refused",
			slog.String("entry_id", entryID),
			slog.String("approver", approver))
		return nil, err
	}
	return s.journal.ApproveEntry(ctx, orgID, entryID, approver)
}

func (s *postingService) RejectManualJournal(ctx context.Context, orgID, entryID, approver string) (*domain.JournalEntry, error) {
	if _, err := s.pendingManual(ctx, orgID, entryID); err != nil {
		return nil, err
	}
	return s.journal.RejectEntry(ctx, orgID, entryID, approver)
}
