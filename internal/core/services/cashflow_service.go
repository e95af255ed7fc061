package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	portsrepo "github.com/vhrodriguesv/clinicfin/internal/core/ports/repositories"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

// cashFlowService serves the cash-flow reports from a read snapshot of the
// tenant's transactions.
type cashFlowService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewCashFlowService creates a new cash-flow reporting service.
func NewCashFlowService(txnRepo portsrepo.TransactionReader) portssvc.CashFlowSvcFacade {
	return &cashFlowService{txnRepo: txnRepo}
}

var _ portssvc.CashFlowSvcFacade = (*cashFlowService)(nil)

// Aggregate implements portssvc.CashFlowSvcFacade.
func (s *cashFlowService) Aggregate(ctx context.Context, tenantID string, from, to time.Time, resolution domain.CashFlowResolution) ([]domain.CashFlowBucket, error) {
	if !resolution.Valid() {
		return nil, fmt.Errorf("%w: unknown resolution %q", apperrors.ErrValidation, resolution)
	}
	if dateutil.DateOnly(to).Before(dateutil.DateOnly(from)) {
		return nil, fmt.Errorf("%w: range end before range start", apperrors.ErrValidation)
	}

	// The full transaction set is needed: an installment due far outside
	// the range may still have been paid inside it, and vice versa.
	txns, err := s.txnRepo.ListTransactions(ctx, tenantID, nil, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for cash flow aggregation", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load transactions for aggregation: %w", err)
	}

	buckets := AggregateCashFlow(txns, from, to, resolution)
	s.LogInfo(ctx, "Cash flow report generated",
		slog.String("tenant_id", tenantID),
		slog.String("resolution", string(resolution)),
		slog.Int("bucket_count", len(buckets)))
	return buckets, nil
}

// Summarize implements portssvc.CashFlowSvcFacade.
func (s *cashFlowService) Summarize(ctx context.Context, tenantID string, from, to *time.Time) (*domain.CashFlowSummary, error) {
	txns, err := s.txnRepo.ListTransactions(ctx, tenantID, nil, nil, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for cash flow summary", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary := SummarizeCashFlow(txns, from, to)
	return &summary, nil
}

// AggregateCashFlow buckets installments into a zero-filled series between
// from and to. Paid installments contribute their amount to the actual
// figures of the bucket containing the payment date; unpaid non-canceled
// installments contribute to the projected figures of the bucket containing
// the due date. For the day resolution a running balance of actual inflow
// minus actual outflow is carried across the range.
func AggregateCashFlow(txns []domain.Transaction, from, to time.Time, resolution domain.CashFlowResolution) []domain.CashFlowBucket {
	from, to = dateutil.DateOnly(from), dateutil.DateOnly(to)

	buckets := emptyBuckets(from, to, resolution)
	index := make(map[string]int, len(buckets))
	for i := range buckets {
		index[buckets[i].Label] = i
	}

	for t := range txns {
		txn := &txns[t]
		inflow := txn.Direction.IsInflow()
		for i := range txn.Installments {
			inst := &txn.Installments[i]
			switch {
			case inst.IsPaid():
				paidOn := dateutil.DateOnly(*inst.PaymentDate)
				if paidOn.Before(from) || paidOn.After(to) {
					continue
				}
				b := &buckets[index[bucketLabel(paidOn, resolution)]]
				if inflow {
					b.ActualInflow = b.ActualInflow.Add(inst.Amount)
				} else {
					b.ActualOutflow = b.ActualOutflow.Add(inst.Amount)
				}
			case inst.Canceled:
				// Canceled installments project nothing.
			default:
				due := dateutil.DateOnly(inst.DueDate)
				if due.Before(from) || due.After(to) {
					continue
				}
				b := &buckets[index[bucketLabel(due, resolution)]]
				if inflow {
					b.ProjectedInflow = b.ProjectedInflow.Add(inst.Amount)
				} else {
					b.ProjectedOutflow = b.ProjectedOutflow.Add(inst.Amount)
				}
			}
		}
	}

	accumulated := decimal.Zero
	for i := range buckets {
		b := &buckets[i]
		b.NetBalance = b.ActualInflow.Add(b.ProjectedInflow).Sub(b.ActualOutflow).Sub(b.ProjectedOutflow)
		if resolution == domain.ResolutionDay {
			accumulated = accumulated.Add(b.ActualInflow).Sub(b.ActualOutflow)
			b.AccumulatedBalance = accumulated
		}
	}
	return buckets
}

// SummarizeCashFlow computes the headline figures over the full transaction
// set. Only the period inflow/outflow honor the optional range; balance and
// the receivable/payable totals are always all-time.
func SummarizeCashFlow(txns []domain.Transaction, from, to *time.Time) domain.CashFlowSummary {
	summary := domain.CashFlowSummary{
		Balance:         decimal.Zero,
		PeriodInflow:    decimal.Zero,
		PeriodOutflow:   decimal.Zero,
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
	}

	for t := range txns {
		txn := &txns[t]
		inflow := txn.Direction.IsInflow()
		for i := range txn.Installments {
			inst := &txn.Installments[i]
			if inst.IsPaid() {
				if inflow {
					summary.Balance = summary.Balance.Add(inst.Amount)
				} else {
					summary.Balance = summary.Balance.Sub(inst.Amount)
				}
				if inPeriod(*inst.PaymentDate, from, to) {
					if inflow {
						summary.PeriodInflow = summary.PeriodInflow.Add(inst.Amount)
					} else {
						summary.PeriodOutflow = summary.PeriodOutflow.Add(inst.Amount)
					}
				}
				continue
			}
			if inst.Canceled {
				continue
			}
			if inflow {
				summary.TotalReceivable = summary.TotalReceivable.Add(inst.Amount)
			} else {
				summary.TotalPayable = summary.TotalPayable.Add(inst.Amount)
			}
		}
	}
	return summary
}

func inPeriod(d time.Time, from, to *time.Time) bool {
	d = dateutil.DateOnly(d)
	if from != nil && d.Before(dateutil.DateOnly(*from)) {
		return false
	}
	if to != nil && d.After(dateutil.DateOnly(*to)) {
		return false
	}
	return true
}

// emptyBuckets pre-populates one zero bucket per calendar unit in [from, to]
// so charts downstream never see gaps.
func emptyBuckets(from, to time.Time, resolution domain.CashFlowResolution) []domain.CashFlowBucket {
	var buckets []domain.CashFlowBucket

	var cursor time.Time
	switch resolution {
	case domain.ResolutionDay:
		cursor = from
	case domain.ResolutionMonth:
		cursor = dateutil.Date(from.Year(), from.Month(), 1)
	case domain.ResolutionYear:
		cursor = dateutil.Date(from.Year(), time.January, 1)
	}

	for !cursor.After(to) {
		buckets = append(buckets, domain.CashFlowBucket{
			Label:              bucketLabel(cursor, resolution),
			Start:              cursor,
			ActualInflow:       decimal.Zero,
			ActualOutflow:      decimal.Zero,
			ProjectedInflow:    decimal.Zero,
			ProjectedOutflow:   decimal.Zero,
			NetBalance:         decimal.Zero,
			AccumulatedBalance: decimal.Zero,
		})
		switch resolution {
		case domain.ResolutionDay:
			cursor = cursor.AddDate(0, 0, 1)
		case domain.ResolutionMonth:
			cursor = cursor.AddDate(0, 1, 0)
		case domain.ResolutionYear:
			cursor = cursor.AddDate(1, 0, 0)
		}
	}
	return buckets
}

func bucketLabel(d time.Time, resolution domain.CashFlowResolution) string {
	switch resolution {
	case domain.ResolutionMonth:
		return d.Format("2006-01")
	case domain.ResolutionYear:
		return d.Format("2006")
	default:
		return d.Format("2006-01-02")
	}
}
