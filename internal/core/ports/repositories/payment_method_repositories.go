package repositories

import (
	"context"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// PaymentMethodReader defines read operations for payment method reference data
type PaymentMethodReader interface {
	// FindPaymentMethodByID retrieves a method descriptor, including its
	// linked card configuration when present.
	FindPaymentMethodByID(ctx context.Context, tenantID, methodID string) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves every method configured for a tenant.
	ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment method reference data
type PaymentMethodWriter interface {
	// SavePaymentMethod persists a new method descriptor.
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
}

// PaymentMethodRepositoryFacade combines all payment-method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
