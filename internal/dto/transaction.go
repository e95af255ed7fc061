package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// CreateTransactionRequest defines the payload to register a receivable or
// payable. Dates travel as plain calendar dates (YYYY-MM-DD).
type CreateTransactionRequest struct {
	Direction        domain.Direction `json:"direction" binding:"required,oneof=RECEITA DESPESA"`
	Description      string           `json:"description" binding:"required"`
	CategoryID       *string          `json:"categoryID"`
	GrossAmount      decimal.Decimal  `json:"grossAmount" binding:"required,gte=0"`
	CounterpartyID   *string          `json:"counterpartyID"`
	PaymentMethodID  *string          `json:"paymentMethodID"`
	DueDate          string           `json:"dueDate" binding:"required,datetime=2006-01-02"`
	InstallmentCount int              `json:"installmentCount" binding:"required,min=1"`
	Notes            string           `json:"notes"`
}

// UpdateTransactionRequest defines the payload to edit a transaction. The
// direction is immutable; everything that shapes the installment schedule
// can change and triggers a reconciliation.
type UpdateTransactionRequest struct {
	Description      string          `json:"description" binding:"required"`
	CategoryID       *string         `json:"categoryID"`
	GrossAmount      decimal.Decimal `json:"grossAmount" binding:"required,gte=0"`
	CounterpartyID   *string         `json:"counterpartyID"`
	PaymentMethodID  *string         `json:"paymentMethodID"`
	DueDate          string          `json:"dueDate" binding:"required,datetime=2006-01-02"`
	InstallmentCount int             `json:"installmentCount" binding:"required,min=1"`
	Notes            string          `json:"notes"`
}

// ListTransactionsFilter carries the listing filters parsed by the handler.
type ListTransactionsFilter struct {
	Direction *domain.Direction
	From      *time.Time
	To        *time.Time
	Query     string // Free text, fuzzy-matched against description and notes
}

// TransactionResponse defines the data returned for a transaction, with its
// installments and the status derived for "today".
type TransactionResponse struct {
	TransactionID    string                  `json:"transactionID"`
	Direction        domain.Direction        `json:"direction"`
	Description      string                  `json:"description"`
	CategoryID       *string                 `json:"categoryID,omitempty"`
	GrossAmount      decimal.Decimal         `json:"grossAmount"`
	FeeAmount        decimal.Decimal         `json:"feeAmount"`
	NetAmount        decimal.Decimal         `json:"netAmount"`
	CounterpartyID   *string                 `json:"counterpartyID,omitempty"`
	PaymentMethodID  *string                 `json:"paymentMethodID,omitempty"`
	DueDate          string                  `json:"dueDate"`
	InstallmentCount int                     `json:"installmentCount"`
	Notes            string                  `json:"notes"`
	Status           domain.InstallmentStatus `json:"status"`
	Installments     []InstallmentResponse   `json:"installments"`
	CreatedAt        time.Time               `json:"createdAt"`
	CreatedBy        string                  `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO, deriving
// the aggregate and per-installment statuses for the supplied date.
func ToTransactionResponse(txn *domain.Transaction, today time.Time) TransactionResponse {
	return TransactionResponse{
		TransactionID:    txn.TransactionID,
		Direction:        txn.Direction,
		Description:      txn.Description,
		CategoryID:       txn.CategoryID,
		GrossAmount:      txn.GrossAmount,
		FeeAmount:        txn.FeeAmount,
		NetAmount:        txn.NetAmount,
		CounterpartyID:   txn.CounterpartyID,
		PaymentMethodID:  txn.PaymentMethodID,
		DueDate:          txn.DueDate.Format("2006-01-02"),
		InstallmentCount: txn.InstallmentCount,
		Notes:            txn.Notes,
		Status:           txn.AggregateStatus(today),
		Installments:     ToInstallmentResponses(txn.Installments, today),
		CreatedAt:        txn.CreatedAt,
		CreatedBy:        txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction, today time.Time) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i], today)
	}
	return responses
}
