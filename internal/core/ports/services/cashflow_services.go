package services

import (
	"context"
	"time"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// CashFlowSvcFacade defines the cash-flow reporting operations.
type CashFlowSvcFacade interface {
	// Aggregate buckets the tenant's installments into a zero-filled
	// time series between from and to at the requested resolution.
	Aggregate(ctx context.Context, tenantID string, from, to time.Time, resolution domain.CashFlowResolution) ([]domain.CashFlowBucket, error)

	// Summarize computes the headline figures; from/to restrict only the
	// period inflow/outflow and may be nil for all-time.
	Summarize(ctx context.Context, tenantID string, from, to *time.Time) (*domain.CashFlowSummary, error)
}
