package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
)

const installmentColumns = `installment_id, transaction_id, sequence, count, amount, due_date, payment_date, settlement_date, late_fee, late_interest, discount, days_late, canceled, status, notes, created_at, created_by, last_updated_at, last_updated_by`

const transactionColumns = `transaction_id, tenant_id, direction, description, category_id, gross_amount, fee_amount, net_amount, counterparty_id, payment_method_id, due_date, installment_count, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction and
// installment data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// Begin starts a new database transaction.
func (r *PgxTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// Commit commits a transaction.
func (r *PgxTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return tx.Commit(ctx)
}

// Rollback rolls back a transaction.
func (r *PgxTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return tx.Rollback(ctx)
}

// SaveTransaction persists a transaction and its full installment schedule
// within a single DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, installments []domain.Installment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		txn.TenantID,
		txn.Direction,
		txn.Description,
		txn.CategoryID,
		txn.GrossAmount,
		txn.FeeAmount,
		txn.NetAmount,
		txn.CounterpartyID,
		txn.PaymentMethodID,
		txn.DueDate,
		txn.InstallmentCount,
		txn.Notes,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.TransactionID, err)
	}

	batch := &pgx.Batch{}
	instQuery := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	for _, inst := range installments {
		batch.Queue(instQuery,
			inst.InstallmentID,
			inst.TransactionID,
			inst.Sequence,
			inst.Count,
			inst.Amount,
			inst.DueDate,
			inst.PaymentDate,
			inst.SettlementDate,
			inst.LateFee,
			inst.LateInterest,
			inst.Discount,
			inst.DaysLate,
			inst.Canceled,
			inst.Status,
			inst.Notes,
			inst.CreatedAt,
			inst.CreatedBy,
			inst.LastUpdatedAt,
			inst.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute installment batch for transaction %s: %w", txn.TransactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction %s: %w", txn.TransactionID, err)
	}

	return nil
}

// FindTransactionByID retrieves a transaction with its installments ordered by
// sequence.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND tenant_id = $2;
	`
	txn, err := scanTransactionRow(r.pool.QueryRow(ctx, query, transactionID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	installments, err := r.findInstallments(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn.Installments = installments[transactionID]
	return txn, nil
}

// ListTransactions retrieves transactions for a tenant, optionally filtered by
// direction and anchor due date range, each with its installments attached.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, tenantID string, direction *domain.Direction, from, to *time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE tenant_id = $1`
	args := []any{tenantID}
	if direction != nil {
		args = append(args, *direction)
		query += fmt.Sprintf(" AND direction = $%d", len(args))
	}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND due_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND due_date <= $%d", len(args))
	}
	query += " ORDER BY due_date, transaction_id;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	ids := []string{}
	for rows.Next() {
		txn, err := scanTransactionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for tenant %s: %w", tenantID, err)
		}
		transactions = append(transactions, *txn)
		ids = append(ids, txn.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for tenant %s: %w", tenantID, err)
	}

	if len(ids) == 0 {
		return transactions, nil
	}
	installments, err := r.findInstallments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		transactions[i].Installments = installments[transactions[i].TransactionID]
	}
	return transactions, nil
}

// ApplyScheduleDiff updates the transaction row and applies the reconciliation
// diff within a single DB transaction; partial schedules never become visible.
func (r *PgxTransactionRepository) ApplyScheduleDiff(ctx context.Context, txn domain.Transaction, diff domain.ScheduleDiff) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txnQuery := `
		UPDATE transactions
		SET description = $1, category_id = $2, gross_amount = $3, fee_amount = $4, net_amount = $5,
			counterparty_id = $6, payment_method_id = $7, due_date = $8, installment_count = $9,
			notes = $10, last_updated_at = $11, last_updated_by = $12
		WHERE transaction_id = $13 AND tenant_id = $14;
	`
	tag, err := tx.Exec(ctx, txnQuery,
		txn.Description,
		txn.CategoryID,
		txn.GrossAmount,
		txn.FeeAmount,
		txn.NetAmount,
		txn.CounterpartyID,
		txn.PaymentMethodID,
		txn.DueDate,
		txn.InstallmentCount,
		txn.Notes,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
		txn.TransactionID,
		txn.TenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	batch := &pgx.Batch{}
	updateQuery := `
		UPDATE installments
		SET sequence = $1, count = $2, amount = $3, due_date = $4, settlement_date = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE installment_id = $8 AND payment_date IS NULL;
	`
	for _, inst := range diff.ToUpdate {
		batch.Queue(updateQuery,
			inst.Sequence,
			inst.Count,
			inst.Amount,
			inst.DueDate,
			inst.SettlementDate,
			inst.LastUpdatedAt,
			inst.LastUpdatedBy,
			inst.InstallmentID,
		)
	}
	insertQuery := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	for _, inst := range diff.ToInsert {
		batch.Queue(insertQuery,
			inst.InstallmentID,
			inst.TransactionID,
			inst.Sequence,
			inst.Count,
			inst.Amount,
			inst.DueDate,
			inst.PaymentDate,
			inst.SettlementDate,
			inst.LateFee,
			inst.LateInterest,
			inst.Discount,
			inst.DaysLate,
			inst.Canceled,
			inst.Status,
			inst.Notes,
			inst.CreatedAt,
			inst.CreatedBy,
			inst.LastUpdatedAt,
			inst.LastUpdatedBy,
		)
	}
	deleteQuery := `DELETE FROM installments WHERE installment_id = $1 AND payment_date IS NULL;`
	for _, inst := range diff.ToDelete {
		batch.Queue(deleteQuery, inst.InstallmentID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute schedule diff batch for transaction %s: %w", txn.TransactionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule diff for transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// DeleteTransaction removes a transaction; its installments go with it via
// the FK cascade.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM transactions WHERE transaction_id = $1 AND tenant_id = $2;`,
		transactionID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CancelUnpaidInstallments flags every unpaid installment of the transaction
// as canceled. Paid siblings are left alone.
func (r *PgxTransactionRepository) CancelUnpaidInstallments(ctx context.Context, tenantID, transactionID, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE installments i
		SET canceled = TRUE, status = $1, last_updated_at = $2, last_updated_by = $3
		FROM transactions t
		WHERE i.transaction_id = t.transaction_id
		  AND t.transaction_id = $4 AND t.tenant_id = $5
		  AND i.payment_date IS NULL;
	`
	_, err := r.pool.Exec(ctx, query, domain.StatusCanceled, updatedAt, updatedByUserID, transactionID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to cancel installments of transaction %s: %w", transactionID, err)
	}
	return nil
}

// MarkInstallmentPaid conditionally records the payment of a single
// installment. The payment date guard in the WHERE clause makes the operation
// safe against concurrent double payment.
func (r *PgxTransactionRepository) MarkInstallmentPaid(ctx context.Context, tenantID, installmentID string, payment domain.InstallmentPayment) (*domain.Installment, error) {
	query := `
		UPDATE installments i
		SET payment_date = $1, late_fee = $2, late_interest = $3, discount = $4,
			days_late = $1::date - i.due_date::date,
			status = $5, last_updated_at = NOW(), last_updated_by = $6
		FROM transactions t
		WHERE i.installment_id = $7
		  AND i.transaction_id = t.transaction_id AND t.tenant_id = $8
		  AND i.payment_date IS NULL
		RETURNING i.installment_id, i.transaction_id, i.sequence, i.count, i.amount, i.due_date,
			i.payment_date, i.settlement_date, i.late_fee, i.late_interest, i.discount, i.days_late,
			i.canceled, i.status, i.notes, i.created_at, i.created_by, i.last_updated_at, i.last_updated_by;
	`
	inst, err := scanInstallmentRow(r.pool.QueryRow(ctx, query,
		payment.PaymentDate,
		payment.LateFee,
		payment.LateInterest,
		payment.Discount,
		domain.StatusPaid,
		payment.PaidBy,
		installmentID,
		tenantID,
	))
	if err == nil {
		return inst, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to mark installment %s paid: %w", installmentID, err)
	}

	// No row updated: either the installment is unknown for this tenant or it
	// already carries a payment date.
	var exists bool
	checkQuery := `
		SELECT EXISTS (
			SELECT 1 FROM installments i
			JOIN transactions t ON t.transaction_id = i.transaction_id
			WHERE i.installment_id = $1 AND t.tenant_id = $2
		);
	`
	if err := r.pool.QueryRow(ctx, checkQuery, installmentID, tenantID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check installment %s: %w", installmentID, err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyPaid
	}
	return nil, apperrors.ErrNotFound
}

// findInstallments loads the schedules of the given transactions in one
// query, keyed by transaction ID and ordered by sequence.
func (r *PgxTransactionRepository) findInstallments(ctx context.Context, transactionIDs []string) (map[string][]domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, sequence;
	`
	rows, err := r.pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	byTxn := map[string][]domain.Installment{}
	for rows.Next() {
		inst, err := scanInstallmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		byTxn[inst.TransactionID] = append(byTxn[inst.TransactionID], *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}
	return byTxn, nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.TenantID,
		&txn.Direction,
		&txn.Description,
		&txn.CategoryID,
		&txn.GrossAmount,
		&txn.FeeAmount,
		&txn.NetAmount,
		&txn.CounterpartyID,
		&txn.PaymentMethodID,
		&txn.DueDate,
		&txn.InstallmentCount,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func scanInstallmentRow(row pgx.Row) (*domain.Installment, error) {
	var inst domain.Installment
	err := row.Scan(
		&inst.InstallmentID,
		&inst.TransactionID,
		&inst.Sequence,
		&inst.Count,
		&inst.Amount,
		&inst.DueDate,
		&inst.PaymentDate,
		&inst.SettlementDate,
		&inst.LateFee,
		&inst.LateInterest,
		&inst.Discount,
		&inst.DaysLate,
		&inst.Canceled,
		&inst.Status,
		&inst.Notes,
		&inst.CreatedAt,
		&inst.CreatedBy,
		&inst.LastUpdatedAt,
		&inst.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}
