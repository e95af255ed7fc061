package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowResolution selects the bucket size of a cash-flow series.
type CashFlowResolution string

const (
	ResolutionDay   CashFlowResolution = "DAY"
	ResolutionMonth CashFlowResolution = "MONTH"
	ResolutionYear  CashFlowResolution = "YEAR"
)

// Valid reports whether the resolution is one of the known values.
func (r CashFlowResolution) Valid() bool {
	return r == ResolutionDay || r == ResolutionMonth || r == ResolutionYear
}

// CashFlowBucket is one time slot of a cash-flow report. Actual figures come
// from paid installments bucketed by payment date; projected figures from
// unpaid, non-canceled installments bucketed by due date. Buckets exist for
// every calendar unit of the requested range, zero-filled when empty.
type CashFlowBucket struct {
	Label string    `json:"label"` // "2006-01-02", "2006-01" or "2006"
	Start time.Time `json:"start"` // First day covered by the bucket

	ActualInflow     decimal.Decimal `json:"actualInflow"`
	ActualOutflow    decimal.Decimal `json:"actualOutflow"`
	ProjectedInflow  decimal.Decimal `json:"projectedInflow"`
	ProjectedOutflow decimal.Decimal `json:"projectedOutflow"`

	// NetBalance is the bucket's expected position: actual plus projected
	// inflows minus actual plus projected outflows.
	NetBalance decimal.Decimal `json:"netBalance"`

	// AccumulatedBalance carries the running sum of actual inflow minus
	// actual outflow across the whole range. Only produced for the day
	// resolution; projected amounts never feed it.
	AccumulatedBalance decimal.Decimal `json:"accumulatedBalance"`
}

// CashFlowSummary is the headline-figures variant of the report.
type CashFlowSummary struct {
	// Balance is all-time paid inflows minus all-time paid outflows,
	// regardless of any requested period.
	Balance decimal.Decimal `json:"balance"`

	// PeriodInflow/PeriodOutflow are paid amounts whose payment date falls
	// in the requested period, or all-time when no period was given.
	PeriodInflow  decimal.Decimal `json:"periodInflow"`
	PeriodOutflow decimal.Decimal `json:"periodOutflow"`

	// TotalReceivable/TotalPayable sum unpaid, non-canceled installments by
	// direction, unfiltered by period.
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
}
