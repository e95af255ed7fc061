package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
)

// paymentMethodService manages the payment/billing method reference data
// consumed by the fee calculator and plan generator.
type paymentMethodService struct {
	BaseService
	methodRepo portsrepo.PaymentMethodRepositoryFacade
	nowFn      func() time.Time
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{
		methodRepo: methodRepo,
		nowFn:      time.Now,
	}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

// CreatePaymentMethod implements portssvc.PaymentMethodSvcFacade.
func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, tenantID string, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	now := s.nowFn().UTC()
	method := domain.PaymentMethod{
		MethodID:          uuid.NewString(),
		TenantID:          tenantID,
		Name:              req.Name,
		Kind:              req.Kind,
		PercentFee:        req.PercentFee,
		FixedFee:          req.FixedFee,
		SettlementLagDays: req.SettlementLagDays,
		BankAccountID:     req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Card != nil {
		method.Card = &domain.CardConfig{
			CardID:     uuid.NewString(),
			ClosingDay: req.Card.ClosingDay,
			DueDay:     req.Card.DueDay,
		}
	}

	if err := method.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.methodRepo.SavePaymentMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to persist payment method", slog.String("method_id", method.MethodID))
		return nil, fmt.Errorf("failed to persist payment method: %w", err)
	}

	s.LogInfo(ctx, "Payment method created",
		slog.String("method_id", method.MethodID),
		slog.String("kind", string(method.Kind)))
	return &method, nil
}

// GetPaymentMethod implements portssvc.PaymentMethodSvcFacade.
func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, tenantID, methodID string) (*domain.PaymentMethod, error) {
	return s.methodRepo.FindPaymentMethodByID(ctx, tenantID, methodID)
}

// ListPaymentMethods implements portssvc.PaymentMethodSvcFacade.
func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	return s.methodRepo.ListPaymentMethods(ctx, tenantID)
}
