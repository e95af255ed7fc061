package repositories

import (
	"context"
	"time"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// TransactionReader defines read operations for transactions and their
// installment schedules.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its ordered
	// installment list attached.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions (installments attached,
	// ordered by sequence) for a tenant, optionally filtered by direction
	// and by anchor due date range.
	ListTransactions(ctx context.Context, tenantID string, direction *domain.Direction, from, to *time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions and their
// installment schedules.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and its full installment
	// schedule atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, installments []domain.Installment) error

	// ApplyScheduleDiff updates the transaction row and applies the
	// reconciliation diff (updates, inserts, deletes) as a single database
	// transaction; partial installment sets must never become visible.
	ApplyScheduleDiff(ctx context.Context, txn domain.Transaction, diff domain.ScheduleDiff) error

	// DeleteTransaction removes a transaction and its installments. Callers
	// must ensure no installment is paid before invoking it.
	DeleteTransaction(ctx context.Context, tenantID, transactionID string) error

	// CancelUnpaidInstallments flags every unpaid installment of the
	// transaction as canceled. Paid siblings keep their history.
	CancelUnpaidInstallments(ctx context.Context, tenantID, transactionID, updatedByUserID string, updatedAt time.Time) error
}

// InstallmentWriter defines single-installment write operations.
type InstallmentWriter interface {
	// MarkInstallmentPaid conditionally sets the payment date of a single
	// installment (only while it is still null) together with late fee,
	// late interest, discount and the recomputed days-late. Returns
	// apperrors.ErrAlreadyPaid when the installment already carries a
	// payment date.
	MarkInstallmentPaid(ctx context.Context, tenantID, installmentID string, payment domain.InstallmentPayment) (*domain.Installment, error)
}

// TransactionRepositoryFacade combines all transaction-related repository
// interfaces for clients that need access to every operation.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	InstallmentWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
