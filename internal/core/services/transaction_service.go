package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
	"github.com/vhrodriguesv/clinicfin/internal/utils/textmatch"
)

// transactionService orchestrates the ledger core: fee computation, plan
// generation, schedule reconciliation and their atomic persistence.
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	methodRepo portsrepo.PaymentMethodReader
	nowFn      func() time.Time
}

// TransactionServiceOption is a functional option for configuring the service.
type TransactionServiceOption func(*transactionService)

// WithClock overrides the clock, letting tests pin "now".
func WithClock(nowFn func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.nowFn = nowFn
	}
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, methodRepo portsrepo.PaymentMethodReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:    txnRepo,
		methodRepo: methodRepo,
		nowFn:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveMethod loads the referenced payment method, or returns nil for the
// cash-equivalent case of a transaction without one.
func (s *transactionService) resolveMethod(ctx context.Context, tenantID string, methodID *string) (*domain.PaymentMethod, error) {
	if methodID == nil || *methodID == "" {
		return nil, nil
	}
	method, err := s.methodRepo.FindPaymentMethodByID(ctx, tenantID, *methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMethodNotFound, *methodID)
		}
		return nil, fmt.Errorf("failed to load payment method %s: %w", *methodID, err)
	}
	return method, nil
}

// CreateTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	if !req.Direction.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, req.Direction)
	}
	anchor, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	method, err := s.resolveMethod(ctx, tenantID, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	fees, err := ComputeFee(req.GrossAmount, req.Direction, method, anchor)
	if err != nil {
		return nil, err
	}

	now := s.nowFn().UTC()
	txn := domain.Transaction{
		TransactionID:    uuid.NewString(),
		TenantID:         tenantID,
		Direction:        req.Direction,
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		GrossAmount:      req.GrossAmount,
		FeeAmount:        fees.FeeAmount,
		NetAmount:        fees.NetAmount,
		CounterpartyID:   req.CounterpartyID,
		PaymentMethodID:  req.PaymentMethodID,
		DueDate:          dateutil.DateOnly(anchor),
		InstallmentCount: req.InstallmentCount,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	installments, err := GeneratePlan(PlanSpec{
		TransactionID: txn.TransactionID,
		NetAmount:     txn.NetAmount,
		Count:         req.InstallmentCount,
		AnchorDueDate: anchor,
		Method:        method,
	})
	if err != nil {
		return nil, err
	}
	for i := range installments {
		installments[i].AuditFields = txn.AuditFields
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, installments); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	txn.Installments = installments
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("direction", string(txn.Direction)),
		slog.Int("installments", len(installments)))
	return &txn, nil
}

// UpdateTransaction implements portssvc.TransactionSvcFacade.
//
// The edited values produce a fresh plan which is reconciled against the
// persisted schedule; paid installments are never modified or deleted, and
// the resulting diff is applied in a single database transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, tenantID, transactionID string, req dto.UpdateTransactionRequest, updaterUserID string) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}
	anchor, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
	}

	method, err := s.resolveMethod(ctx, tenantID, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	fees, err := ComputeFee(req.GrossAmount, existing.Direction, method, anchor)
	if err != nil {
		return nil, err
	}

	plan, err := GeneratePlan(PlanSpec{
		TransactionID: existing.TransactionID,
		NetAmount:     fees.NetAmount,
		Count:         req.InstallmentCount,
		AnchorDueDate: anchor,
		Method:        method,
	})
	if err != nil {
		return nil, err
	}

	diff, err := Reconcile(existing.Installments, plan)
	if err != nil {
		s.LogInfo(ctx, "Schedule reconciliation refused",
			slog.String("transaction_id", transactionID),
			slog.Int("requested_count", req.InstallmentCount),
			slog.Int("conflicts", len(diff.Conflicts)))
		return nil, err
	}

	now := s.nowFn().UTC()
	updated := *existing
	updated.Description = req.Description
	updated.CategoryID = req.CategoryID
	updated.GrossAmount = req.GrossAmount
	updated.FeeAmount = fees.FeeAmount
	updated.NetAmount = fees.NetAmount
	updated.CounterpartyID = req.CounterpartyID
	updated.PaymentMethodID = req.PaymentMethodID
	updated.DueDate = dateutil.DateOnly(anchor)
	updated.InstallmentCount = req.InstallmentCount
	updated.Notes = req.Notes
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = updaterUserID
	updated.Installments = nil

	for i := range diff.ToUpdate {
		diff.ToUpdate[i].LastUpdatedAt = now
		diff.ToUpdate[i].LastUpdatedBy = updaterUserID
	}
	for i := range diff.ToInsert {
		diff.ToInsert[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		}
	}

	if err := s.txnRepo.ApplyScheduleDiff(ctx, updated, diff); err != nil {
		s.LogError(ctx, err, "Failed to apply schedule diff", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to apply schedule diff: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.Int("updated", len(diff.ToUpdate)),
		slog.Int("inserted", len(diff.ToInsert)),
		slog.Int("deleted", len(diff.ToDelete)))

	return s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID)
}

// GetTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) GetTransaction(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID)
}

// ListTransactions implements portssvc.TransactionSvcFacade.
//
// Direction and date range are pushed to the repository; the free-text query
// is applied in memory over the fetched rows.
func (s *transactionService) ListTransactions(ctx context.Context, tenantID string, filter dto.ListTransactionsFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, tenantID, filter.Direction, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if filter.Query == "" {
		return txns, nil
	}

	filtered := txns[:0]
	for i := range txns {
		if textmatch.Matches(txns[i].Description+" "+txns[i].Notes, filter.Query) {
			filtered = append(filtered, txns[i])
		}
	}
	return filtered, nil
}

// DeleteTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) DeleteTransaction(ctx context.Context, tenantID, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return err
	}
	if txn.HasPaidInstallments() {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrHasPaidInstallments, transactionID)
	}
	if err := s.txnRepo.DeleteTransaction(ctx, tenantID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// CancelTransaction implements portssvc.TransactionSvcFacade.
func (s *transactionService) CancelTransaction(ctx context.Context, tenantID, transactionID, updaterUserID string) error {
	if _, err := s.txnRepo.FindTransactionByID(ctx, tenantID, transactionID); err != nil {
		return err
	}
	if err := s.txnRepo.CancelUnpaidInstallments(ctx, tenantID, transactionID, updaterUserID, s.nowFn().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to cancel transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to cancel transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction canceled", slog.String("transaction_id", transactionID))
	return nil
}

// PayInstallment implements portssvc.TransactionSvcFacade.
func (s *transactionService) PayInstallment(ctx context.Context, tenantID, installmentID string, req dto.PayInstallmentRequest, payerUserID string) (*domain.Installment, error) {
	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment date %q", apperrors.ErrValidation, req.PaymentDate)
	}
	if req.LateFee.IsNegative() || req.LateInterest.IsNegative() || req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: late fee, interest and discount must not be negative", apperrors.ErrValidation)
	}

	inst, err := s.txnRepo.MarkInstallmentPaid(ctx, tenantID, installmentID, domain.InstallmentPayment{
		PaymentDate:  dateutil.DateOnly(paymentDate),
		LateFee:      req.LateFee,
		LateInterest: req.LateInterest,
		Discount:     req.Discount,
		PaidBy:       payerUserID,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Installment paid",
		slog.String("installment_id", installmentID),
		slog.Int("days_late", inst.DaysLate))
	return inst, nil
}
