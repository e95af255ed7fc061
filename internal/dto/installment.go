package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// PayInstallmentRequest defines the payload to mark an installment paid.
// Late fee, late interest and early-payment discount default to zero.
type PayInstallmentRequest struct {
	PaymentDate  string          `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	LateFee      decimal.Decimal `json:"lateFee" binding:"gte=0"`
	LateInterest decimal.Decimal `json:"lateInterest" binding:"gte=0"`
	Discount     decimal.Decimal `json:"discount" binding:"gte=0"`
}

// InstallmentResponse defines the data returned for an installment, with its
// status derived for "today".
type InstallmentResponse struct {
	InstallmentID   string                   `json:"installmentID"`
	TransactionID   string                   `json:"transactionID"`
	Sequence        int                      `json:"sequence"`
	Count           int                      `json:"count"`
	Amount          decimal.Decimal          `json:"amount"`
	CorrectedAmount decimal.Decimal          `json:"correctedAmount"`
	DueDate         string                   `json:"dueDate"`
	PaymentDate     *string                  `json:"paymentDate,omitempty"`
	SettlementDate  string                   `json:"settlementDate"`
	LateFee         decimal.Decimal          `json:"lateFee"`
	LateInterest    decimal.Decimal          `json:"lateInterest"`
	Discount        decimal.Decimal          `json:"discount"`
	DaysLate        int                      `json:"daysLate"`
	Canceled        bool                     `json:"canceled"`
	Status          domain.InstallmentStatus `json:"status"`
	Notes           string                   `json:"notes"`
}

// ToInstallmentResponse converts a domain.Installment to its DTO.
func ToInstallmentResponse(inst *domain.Installment, today time.Time) InstallmentResponse {
	resp := InstallmentResponse{
		InstallmentID:   inst.InstallmentID,
		TransactionID:   inst.TransactionID,
		Sequence:        inst.Sequence,
		Count:           inst.Count,
		Amount:          inst.Amount,
		CorrectedAmount: inst.CorrectedAmount(),
		DueDate:         inst.DueDate.Format("2006-01-02"),
		SettlementDate:  inst.SettlementDate.Format("2006-01-02"),
		LateFee:         inst.LateFee,
		LateInterest:    inst.LateInterest,
		Discount:        inst.Discount,
		DaysLate:        inst.DaysLate,
		Canceled:        inst.Canceled,
		Status:          inst.DeriveStatus(today),
		Notes:           inst.Notes,
	}
	if inst.PaymentDate != nil {
		paid := inst.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &paid
	}
	return resp
}

// ToInstallmentResponses converts a slice of installments.
func ToInstallmentResponses(insts []domain.Installment, today time.Time) []InstallmentResponse {
	responses := make([]InstallmentResponse, len(insts))
	for i := range insts {
		responses[i] = ToInstallmentResponse(&insts[i], today)
	}
	return responses
}
