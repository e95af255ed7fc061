package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MethodKind tags the behavior of a payment/billing method. Settlement-lag
// kinds (everything but credit card) settle a fixed number of days after the
// due date; credit cards follow the card's closing/due-day cycle.
type MethodKind string

const (
	MethodPix        MethodKind = "PIX"
	MethodTransfer   MethodKind = "TRANSFER"
	MethodBankDebit  MethodKind = "BANK_DEBIT"
	MethodCash       MethodKind = "CASH"
	MethodCreditCard MethodKind = "CREDIT_CARD"
	MethodDebitCard  MethodKind = "DEBIT_CARD"
	MethodBoleto     MethodKind = "BOLETO"
)

// Valid reports whether the kind is one of the known tags.
func (k MethodKind) Valid() bool {
	switch k {
	case MethodPix, MethodTransfer, MethodBankDebit, MethodCash,
		MethodCreditCard, MethodDebitCard, MethodBoleto:
		return true
	}
	return false
}

// CardConfig is the billing cycle of a linked credit card: the statement
// closes on ClosingDay and is payable on DueDay (both 1-31, day of month).
type CardConfig struct {
	CardID     string `json:"cardID"`
	ClosingDay int    `json:"closingDay"`
	DueDay     int    `json:"dueDay"`
}

// Configured reports whether both cycle days are set to usable values.
func (c *CardConfig) Configured() bool {
	return c != nil &&
		c.ClosingDay >= 1 && c.ClosingDay <= 31 &&
		c.DueDay >= 1 && c.DueDay <= 31
}

// PaymentMethod describes how a transaction is collected or paid: its fee
// and how the settlement date is projected. Card is set only for the
// credit-card kind; SettlementLagDays drives every other kind.
type PaymentMethod struct {
	MethodID          string          `json:"methodID"` // Primary key (UUID)
	TenantID          string          `json:"tenantID"`
	Name              string          `json:"name"`
	Kind              MethodKind      `json:"kind"`
	PercentFee        decimal.Decimal `json:"percentFee"` // Percentage points, e.g. 3 = 3%
	FixedFee          decimal.Decimal `json:"fixedFee"`
	SettlementLagDays int             `json:"settlementLagDays"`
	BankAccountID     *string         `json:"bankAccountID,omitempty"`
	Card              *CardConfig     `json:"card,omitempty"`
	AuditFields
}

// Validate rejects descriptors whose kind-specific payload is inconsistent:
// a credit-card method without a linked card, or a card linked to any other
// kind.
func (m *PaymentMethod) Validate() error {
	if !m.Kind.Valid() {
		return fmt.Errorf("unknown payment method kind %q", m.Kind)
	}
	if m.Kind == MethodCreditCard && m.Card == nil {
		return fmt.Errorf("credit card method %q requires a linked card", m.Name)
	}
	if m.Kind != MethodCreditCard && m.Card != nil {
		return fmt.Errorf("method %q of kind %s must not carry a linked card", m.Name, m.Kind)
	}
	if m.PercentFee.IsNegative() || m.FixedFee.IsNegative() {
		return fmt.Errorf("method %q has negative fee configuration", m.Name)
	}
	if m.SettlementLagDays < 0 {
		return fmt.Errorf("method %q has negative settlement lag", m.Name)
	}
	return nil
}
