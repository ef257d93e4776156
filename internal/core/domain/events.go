package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Domain events handed to the posting adapters by collaborating modules.
// Decimal amounts use the positive_decimal and nonnegative_decimal rules registered by the posting service.

// EventHeader carries the fields every posting event shares.
type EventHeader struct {
	OrgID    string    `json:"orgID" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	BranchID string    `json:"branchID,omitempty"`
	PostedBy string    `json:"postedBy,omitempty"`
}

// PaymentMethod selects the debit side of a sale.
type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "CASH"
	PaymentCard      PaymentMethod = "CARD"
	PaymentOnAccount PaymentMethod = "ON_ACCOUNT"
)

// SaleClosed is emitted when an order is closed and paid or charged to account.
type SaleClosed struct {
	EventHeader
	OrderID       string          `json:"orderID" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"positive_decimal"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,oneof=CASH CARD ON_ACCOUNT"`
	// CostAmount, when positive, also recognizes cost of goods sold for the order.
	CostAmount decimal.Decimal `json:"costAmount" validate:"nonnegative_decimal"`
}

// CustomerPaymentReceived settles an on-account sale.
type CustomerPaymentReceived struct {
	EventHeader
	PaymentID string          `json:"paymentID" validate:"required"`
	OrderID   string          `json:"orderID" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"positive_decimal"`
}

// RefundIssued is emitted when cash is returned to a customer.
type RefundIssued struct {
	EventHeader
	RefundID string          `json:"refundID" validate:"required"`
	OrderID  string          `json:"orderID"`
	Amount   decimal.Decimal `json:"amount" validate:"positive_decimal"`
}

// SafeDirection is the direction of a cash-safe movement.
type SafeDirection string

const (
	ToSafe   SafeDirection = "TO_SAFE"
	FromSafe SafeDirection = "FROM_SAFE"
	ToBank   SafeDirection = "TO_BANK"
)

// CashSafeMovement moves cash between the drawer, the safe and the bank.
type CashSafeMovement struct {
	EventHeader
	MovementID string          `json:"movementID" validate:"required"`
	Direction  SafeDirection   `json:"direction" validate:"required,oneof=TO_SAFE FROM_SAFE TO_BANK"`
	Amount     decimal.Decimal `json:"amount" validate:"positive_decimal"`
}

// WastageRecorded writes inventory off at cost.
type WastageRecorded struct {
	EventHeader
	AdjustmentID string          `json:"adjustmentID" validate:"required"`
	Cost         decimal.Decimal `json:"cost" validate:"positive_decimal"`
	Reason       string          `json:"reason"`
}

// PayrollApproved accrues an approved pay run.
type PayrollApproved struct {
	EventHeader
	PayRunID string          `json:"payRunID" validate:"required"`
	Gross    decimal.Decimal `json:"gross" validate:"positive_decimal"`
}

// ExpenseCategory selects the expense account of a service-provider bill.
type ExpenseCategory string

const (
	ExpenseRent      ExpenseCategory = "RENT"
	ExpenseUtilities ExpenseCategory = "UTILITIES"
	ExpenseMarketing ExpenseCategory = "MARKETING"
)

// ServiceProviderBill accrues a vendor bill into the payable.
type ServiceProviderBill struct {
	EventHeader
	BillID     string          `json:"billID" validate:"required"`
	ProviderID string          `json:"providerID"`
	Category   ExpenseCategory `json:"category" validate:"required,oneof=RENT UTILITIES MARKETING"`
	Amount     decimal.Decimal `json:"amount" validate:"positive_decimal"`
}

// ServiceProviderPayment settles (part of) a bill.
type ServiceProviderPayment struct {
	EventHeader
	PaymentID string          `json:"paymentID" validate:"required"`
	BillID    string          `json:"billID" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"positive_decimal"`
	FromBank  bool            `json:"fromBank"`
}

// ManualLine is one accountant-specified line, addressed by account code.
type ManualLine struct {
	AccountCode string          `json:"accountCode" validate:"required"`
	BranchID    string          `json:"branchID,omitempty"`
	DocumentRef string          `json:"documentRef,omitempty"`
	Debit       decimal.Decimal `json:"debit" validate:"nonnegative_decimal"`
	Credit      decimal.Decimal `json:"credit" validate:"nonnegative_decimal"`
	Memo        string          `json:"memo,omitempty"`
}

// ManualJournalRequest is an accountant's adjusting entry.
type ManualJournalRequest struct {
	OrgID              string       `json:"orgID" validate:"required"`
	Date               time.Time    `json:"date" validate:"required"`
	Memo               string       `json:"memo" validate:"required"`
	Lines              []ManualLine `json:"lines" validate:"min=2,dive"`
	RequestingIdentity string       `json:"requestingIdentity" validate:"required"`
}
