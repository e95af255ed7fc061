package services

import (
	"context"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
)

// PaymentMethodSvcFacade defines operations over payment/billing method
// reference data.
type PaymentMethodSvcFacade interface {
	// CreatePaymentMethod validates and persists a method descriptor.
	CreatePaymentMethod(ctx context.Context, tenantID string, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)

	// GetPaymentMethod retrieves a single method descriptor.
	GetPaymentMethod(ctx context.Context, tenantID, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves every method configured for the tenant.
	ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)
}
