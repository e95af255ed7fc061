package services

import (
	"context"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
)

// TransactionSvcFacade defines the ledger-core operations over transactions
// and their installment schedules.
type TransactionSvcFacade interface {
	// CreateTransaction computes fees and the installment plan for the
	// request and persists everything atomically.
	CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction regenerates the plan from the edited values,
	// reconciles it against the persisted schedule without touching paid
	// installments, and applies the diff atomically.
	UpdateTransaction(ctx context.Context, tenantID, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error)

	// GetTransaction retrieves a transaction with its installments.
	GetTransaction(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions filtered by direction, due
	// date range and free-text query.
	ListTransactions(ctx context.Context, tenantID string, filter dto.ListTransactionsFilter) ([]domain.Transaction, error)

	// DeleteTransaction removes a transaction and its schedule; refused
	// while any installment is paid.
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) error

	// CancelTransaction flags the unpaid installments as canceled.
	CancelTransaction(ctx context.Context, tenantID, transactionID, updaterUserID string) error

	// PayInstallment marks a single installment paid; fails with
	// apperrors.ErrAlreadyPaid when it already carries a payment date.
	PayInstallment(ctx context.Context, tenantID, installmentID string, req dto.PayInstallmentRequest, payerUserID string) (*domain.Installment, error)
}
