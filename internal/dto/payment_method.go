package dto

import (
	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// CardConfigPayload carries the billing cycle of a linked credit card.
type CardConfigPayload struct {
	ClosingDay int `json:"closingDay" binding:"required,min=1,max=31"`
	DueDay     int `json:"dueDay" binding:"required,min=1,max=31"`
}

// CreatePaymentMethodRequest defines the payload to register a payment or
// billing method. Card must be present exactly when kind is CREDIT_CARD;
// domain validation enforces the pairing.
type CreatePaymentMethodRequest struct {
	Name              string             `json:"name" binding:"required"`
	Kind              domain.MethodKind  `json:"kind" binding:"required,oneof=PIX TRANSFER BANK_DEBIT CASH CREDIT_CARD DEBIT_CARD BOLETO"`
	PercentFee        decimal.Decimal    `json:"percentFee" binding:"gte=0"`
	FixedFee          decimal.Decimal    `json:"fixedFee" binding:"gte=0"`
	SettlementLagDays int                `json:"settlementLagDays" binding:"min=0"`
	BankAccountID     *string            `json:"bankAccountID"`
	Card              *CardConfigPayload `json:"card"`
}

// PaymentMethodResponse defines the data returned for a payment method.
type PaymentMethodResponse struct {
	MethodID          string             `json:"methodID"`
	Name              string             `json:"name"`
	Kind              domain.MethodKind  `json:"kind"`
	PercentFee        decimal.Decimal    `json:"percentFee"`
	FixedFee          decimal.Decimal    `json:"fixedFee"`
	SettlementLagDays int                `json:"settlementLagDays"`
	BankAccountID     *string            `json:"bankAccountID,omitempty"`
	Card              *CardConfigPayload `json:"card,omitempty"`
}

// ToPaymentMethodResponse converts a domain.PaymentMethod to its DTO.
func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	resp := PaymentMethodResponse{
		MethodID:          m.MethodID,
		Name:              m.Name,
		Kind:              m.Kind,
		PercentFee:        m.PercentFee,
		FixedFee:          m.FixedFee,
		SettlementLagDays: m.SettlementLagDays,
		BankAccountID:     m.BankAccountID,
	}
	if m.Card != nil {
		resp.Card = &CardConfigPayload{ClosingDay: m.Card.ClosingDay, DueDay: m.Card.DueDay}
	}
	return resp
}

// ToPaymentMethodResponses converts a slice of payment methods.
func ToPaymentMethodResponses(methods []domain.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToPaymentMethodResponse(&methods[i])
	}
	return responses
}
