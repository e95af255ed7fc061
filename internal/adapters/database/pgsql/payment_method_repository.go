package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
)

const paymentMethodColumns = `method_id, tenant_id, name, kind, percent_fee, fixed_fee, settlement_lag_days, bank_account_id, card_id, card_closing_day, card_due_day, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentMethodRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPaymentMethodRepository creates a new repository for payment method
// reference data.
func NewPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{pool: pool}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

// SavePaymentMethod persists a new method descriptor. The card cycle lives in
// nullable columns on the same row and is written only when linked.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	var cardID *string
	var closingDay, dueDay *int
	if method.Card != nil {
		cardID = &method.Card.CardID
		closingDay = &method.Card.ClosingDay
		dueDay = &method.Card.DueDay
	}
	_, err := r.pool.Exec(ctx, query,
		method.MethodID,
		method.TenantID,
		method.Name,
		method.Kind,
		method.PercentFee,
		method.FixedFee,
		method.SettlementLagDays,
		method.BankAccountID,
		cardID,
		closingDay,
		dueDay,
		method.CreatedAt,
		method.CreatedBy,
		method.LastUpdatedAt,
		method.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment method %s: %w", method.MethodID, err)
	}
	return nil
}

// FindPaymentMethodByID retrieves a method by its ID.
func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, tenantID, methodID string) (*domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE method_id = $1 AND tenant_id = $2;
	`
	method, err := scanPaymentMethodRow(r.pool.QueryRow(ctx, query, methodID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment method by ID %s: %w", methodID, err)
	}
	return method, nil
}

// ListPaymentMethods retrieves every method configured for a tenant.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	query := `
		SELECT ` + paymentMethodColumns + `
		FROM payment_methods
		WHERE tenant_id = $1
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment methods for tenant %s: %w", tenantID, err)
	}
	defer rows.Close()

	methods := []domain.PaymentMethod{}
	for rows.Next() {
		method, err := scanPaymentMethodRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment method row for tenant %s: %w", tenantID, err)
		}
		methods = append(methods, *method)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment method rows for tenant %s: %w", tenantID, err)
	}
	return methods, nil
}

func scanPaymentMethodRow(row pgx.Row) (*domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	var cardID *string
	var closingDay, dueDay *int
	err := row.Scan(
		&method.MethodID,
		&method.TenantID,
		&method.Name,
		&method.Kind,
		&method.PercentFee,
		&method.FixedFee,
		&method.SettlementLagDays,
		&method.BankAccountID,
		&cardID,
		&closingDay,
		&dueDay,
		&method.CreatedAt,
		&method.CreatedBy,
		&method.LastUpdatedAt,
		&method.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if closingDay != nil && dueDay != nil {
		method.Card = &domain.CardConfig{
			ClosingDay: *closingDay,
			DueDay:     *dueDay,
		}
		if cardID != nil {
			method.Card.CardID = *cardID
		}
	}
	return &method, nil
}
