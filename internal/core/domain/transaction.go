package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction is money coming into the clinic
// (a receivable, "receita") or leaving it (a payable, "despesa").
type Direction string

const (
	Receita Direction = "RECEITA" // inflow / receivable
	Despesa Direction = "DESPESA" // outflow / payable
)

// IsInflow reports whether the direction represents money received.
func (d Direction) IsInflow() bool {
	return d == Receita
}

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == Receita || d == Despesa
}

// Transaction is a single receivable or payable registered by the clinic.
// Its amount is split into one or more installments owned by the transaction;
// an installment never outlives its parent.
//
// NetAmount is direction dependent: for a receivable the clinic collects
// gross minus fee, for a payable it disburses gross plus fee.
type Transaction struct {
	TransactionID    string          `json:"transactionID"` // Primary key (UUID)
	TenantID         string          `json:"tenantID"`      // Owning clinic
	Direction        Direction       `json:"direction"`
	Description      string          `json:"description"`
	CategoryID       *string         `json:"categoryID,omitempty"`     // FK -> category (optional)
	GrossAmount      decimal.Decimal `json:"grossAmount"`              // Billed/invoiced value, >= 0
	FeeAmount        decimal.Decimal `json:"feeAmount"`                // Method fee, >= 0
	NetAmount        decimal.Decimal `json:"netAmount"`                // Gross adjusted by fee per direction
	CounterpartyID   *string         `json:"counterpartyID,omitempty"` // Patient or supplier (optional)
	PaymentMethodID  *string         `json:"paymentMethodID,omitempty"`
	DueDate          time.Time       `json:"dueDate"` // Anchor due date of the first installment
	InstallmentCount int             `json:"installmentCount"`
	Notes            string          `json:"notes"`
	AuditFields

	// Installments is the ordered (by sequence) schedule. Loaded alongside
	// the transaction by the repository read paths.
	Installments []Installment `json:"installments,omitempty"`
}

// AggregateStatus derives the transaction-level status from its installments
// for the given date. It is recomputed on every read and never trusted from
// storage.
//
// Paid when every installment is paid; Canceled when every installment is
// canceled; Overdue when any installment is overdue; DueToday when any is due
// today and none overdue; Pending otherwise.
func (t *Transaction) AggregateStatus(today time.Time) InstallmentStatus {
	if len(t.Installments) == 0 {
		return StatusPending
	}

	allPaid, allCanceled := true, true
	anyOverdue, anyDueToday := false, false
	for i := range t.Installments {
		switch t.Installments[i].DeriveStatus(today) {
		case StatusPaid:
			allCanceled = false
		case StatusCanceled:
			allPaid = false
		case StatusOverdue:
			allPaid, allCanceled = false, false
			anyOverdue = true
		case StatusDueToday:
			allPaid, allCanceled = false, false
			anyDueToday = true
		default:
			allPaid, allCanceled = false, false
		}
	}

	switch {
	case allPaid:
		return StatusPaid
	case allCanceled:
		return StatusCanceled
	case anyOverdue:
		return StatusOverdue
	case anyDueToday:
		return StatusDueToday
	default:
		return StatusPending
	}
}

// HasPaidInstallments reports whether any installment carries a payment date.
func (t *Transaction) HasPaidInstallments() bool {
	for i := range t.Installments {
		if t.Installments[i].IsPaid() {
			return true
		}
	}
	return false
}
