package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

// PlanSpec carries everything the generator needs to lay out a schedule.
type PlanSpec struct {
	TransactionID string
	NetAmount     decimal.Decimal
	Count         int
	AnchorDueDate time.Time
	Method        *domain.PaymentMethod
}

// GeneratePlan produces the ordered installment schedule for a transaction:
// Count installments of NetAmount/Count each, due on a monthly cadence from
// the anchor date, with per-installment settlement projections.
//
// Each installment receives NetAmount/Count rounded to 2 decimals on its
// own; the rounding residue is deliberately not redistributed onto the last
// installment, so sibling amounts always agree and downstream report totals
// stay stable across count edits. The sum may therefore drift from
// NetAmount by sub-cent noise.
//
// Due dates advance by calendar months with the day of month preserved and
// clamped to shorter months. Settlement dates are computed against each
// installment's own due date, so later credit-card installments can cross
// into later billing cycles independently.
func GeneratePlan(spec PlanSpec) ([]domain.Installment, error) {
	if spec.Count < 1 {
		return nil, fmt.Errorf("%w: %d", apperrors.ErrInvalidInstallmentCount, spec.Count)
	}
	if spec.NetAmount.IsNegative() {
		return nil, fmt.Errorf("%w: net amount %s is negative", apperrors.ErrInvalidAmount, spec.NetAmount.String())
	}

	amount := spec.NetAmount.Div(decimal.NewFromInt(int64(spec.Count))).Round(2)
	anchor := dateutil.DateOnly(spec.AnchorDueDate)

	installments := make([]domain.Installment, spec.Count)
	for i := 0; i < spec.Count; i++ {
		due := dateutil.AddMonths(anchor, i)
		installments[i] = domain.Installment{
			InstallmentID:  uuid.NewString(),
			TransactionID:  spec.TransactionID,
			Sequence:       i + 1,
			Count:          spec.Count,
			Amount:         amount,
			DueDate:        due,
			SettlementDate: SettlementDate(spec.Method, due),
			Status:         domain.StatusPending,
		}
	}
	return installments, nil
}
