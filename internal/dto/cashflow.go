package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// CashFlowBucketResponse is one slot of the cash-flow series.
type CashFlowBucketResponse struct {
	Label              string          `json:"label"`
	ActualInflow       decimal.Decimal `json:"actualInflow"`
	ActualOutflow      decimal.Decimal `json:"actualOutflow"`
	ProjectedInflow    decimal.Decimal `json:"projectedInflow"`
	ProjectedOutflow   decimal.Decimal `json:"projectedOutflow"`
	NetBalance         decimal.Decimal `json:"netBalance"`
	AccumulatedBalance decimal.Decimal `json:"accumulatedBalance"`
}

// CashFlowReportResponse is the full aggregation response.
type CashFlowReportResponse struct {
	From       string                   `json:"from"`
	To         string                   `json:"to"`
	Resolution domain.CashFlowResolution `json:"resolution"`
	Buckets    []CashFlowBucketResponse `json:"buckets"`
}

// CashFlowSummaryResponse carries the headline figures.
type CashFlowSummaryResponse struct {
	Balance         decimal.Decimal `json:"balance"`
	PeriodInflow    decimal.Decimal `json:"periodInflow"`
	PeriodOutflow   decimal.Decimal `json:"periodOutflow"`
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
}

// ToCashFlowReportResponse converts domain buckets to the report DTO.
func ToCashFlowReportResponse(buckets []domain.CashFlowBucket, from, to string, resolution domain.CashFlowResolution) CashFlowReportResponse {
	resp := CashFlowReportResponse{
		From:       from,
		To:         to,
		Resolution: resolution,
		Buckets:    make([]CashFlowBucketResponse, len(buckets)),
	}
	for i, b := range buckets {
		resp.Buckets[i] = CashFlowBucketResponse{
			Label:              b.Label,
			ActualInflow:       b.ActualInflow,
			ActualOutflow:      b.ActualOutflow,
			ProjectedInflow:    b.ProjectedInflow,
			ProjectedOutflow:   b.ProjectedOutflow,
			NetBalance:         b.NetBalance,
			AccumulatedBalance: b.AccumulatedBalance,
		}
	}
	return resp
}

// ToCashFlowSummaryResponse converts a domain summary to its DTO.
func ToCashFlowSummaryResponse(s *domain.CashFlowSummary) CashFlowSummaryResponse {
	return CashFlowSummaryResponse{
		Balance:         s.Balance,
		PeriodInflow:    s.PeriodInflow,
		PeriodOutflow:   s.PeriodOutflow,
		TotalReceivable: s.TotalReceivable,
		TotalPayable:    s.TotalPayable,
	}
}
