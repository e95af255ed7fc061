package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

// InstallmentStatus is the live status of an installment. It is derived from
// the payment date, due date and cancellation flag on every read; the
// persisted status column is only a historical hint.
type InstallmentStatus string

const (
	StatusPaid     InstallmentStatus = "PAID"
	StatusCanceled InstallmentStatus = "CANCELED"
	StatusDueToday InstallmentStatus = "DUE_TODAY"
	StatusOverdue  InstallmentStatus = "OVERDUE"
	StatusPending  InstallmentStatus = "PENDING"
)

// Installment is one scheduled piece of a transaction's net amount, with its
// own due, payment and settlement dates.
type Installment struct {
	InstallmentID string `json:"installmentID"` // Primary key (UUID)
	TransactionID string `json:"transactionID"` // FK -> Transaction (Not Null)
	Sequence      int    `json:"sequence"`      // 1..Count, contiguous per transaction
	Count         int    `json:"count"`         // Denormalized sibling count

	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	PaymentDate    *time.Time      `json:"paymentDate,omitempty"` // nil means unpaid
	SettlementDate time.Time       `json:"settlementDate"`        // Expected money movement date

	LateFee      decimal.Decimal `json:"lateFee"`
	LateInterest decimal.Decimal `json:"lateInterest"`
	Discount     decimal.Decimal `json:"discount"` // Early-payment discount
	DaysLate     int             `json:"daysLate"` // payment - due, in days; set on payment

	Canceled bool `json:"canceled"`

	// Status as last persisted. Kept only as an initial/manual hint; all
	// read paths go through DeriveStatus.
	Status InstallmentStatus `json:"status"`

	Notes string `json:"notes"`
	AuditFields
}

// IsPaid reports whether the installment carries a payment date.
func (i *Installment) IsPaid() bool {
	return i.PaymentDate != nil
}

// CorrectedAmount is the amount actually owed after late fee, late interest
// and early-payment discount.
func (i *Installment) CorrectedAmount() decimal.Decimal {
	return i.Amount.Add(i.LateFee).Add(i.LateInterest).Sub(i.Discount)
}

// DeriveStatus computes the authoritative status for the given date.
//
// Order matters: a cancellation marker is only honored while unpaid, and a
// paid installment stays paid no matter what "today" is.
func (i *Installment) DeriveStatus(today time.Time) InstallmentStatus {
	if i.Canceled && !i.IsPaid() {
		return StatusCanceled
	}
	if i.IsPaid() {
		return StatusPaid
	}

	due := dateutil.DateOnly(i.DueDate)
	today = dateutil.DateOnly(today)
	switch {
	case due.Before(today):
		return StatusOverdue
	case due.Equal(today):
		return StatusDueToday
	default:
		return StatusPending
	}
}

// InstallmentPayment carries the user-supplied values of a payment.
type InstallmentPayment struct {
	PaymentDate  time.Time
	LateFee      decimal.Decimal
	LateInterest decimal.Decimal
	Discount     decimal.Decimal
	PaidBy       string // UserID reference
}

// ScheduleDiff is the outcome of reconciling an existing installment set
// against a newly requested plan. Paid installments never appear in ToUpdate
// or ToDelete; paid rows that the new plan has no position for are reported
// in Conflicts instead.
type ScheduleDiff struct {
	ToUpdate  []Installment
	ToInsert  []Installment
	ToDelete  []Installment
	Conflicts []Installment
}

// Empty reports whether applying the diff would change nothing.
func (d ScheduleDiff) Empty() bool {
	return len(d.ToUpdate) == 0 && len(d.ToInsert) == 0 && len(d.ToDelete) == 0
}
