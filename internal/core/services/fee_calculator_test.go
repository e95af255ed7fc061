package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/core/services"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

func TestComputeFee_Asymmetry(t *testing.T) {
	method := &domain.PaymentMethod{
		Name:       "Maquininha",
		Kind:       domain.MethodDebitCard,
		PercentFee: decimal.NewFromInt(3),
		FixedFee:   decimal.NewFromFloat(0.50),
	}
	gross := decimal.NewFromInt(100)
	anchor := dateutil.Date(2024, time.January, 15)

	// Receivable: the clinic collects less than billed.
	in, err := services.ComputeFee(gross, domain.Receita, method, anchor)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(3.50).Equal(in.FeeAmount), "fee was %s", in.FeeAmount)
	assert.True(t, decimal.NewFromFloat(96.50).Equal(in.NetAmount), "net was %s", in.NetAmount)

	// Payable: the clinic disburses more than invoiced.
	out, err := services.ComputeFee(gross, domain.Despesa, method, anchor)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(3.50).Equal(out.FeeAmount))
	assert.True(t, decimal.NewFromFloat(103.50).Equal(out.NetAmount), "net was %s", out.NetAmount)
}

func TestComputeFee_RoundsHalfUp(t *testing.T) {
	method := &domain.PaymentMethod{
		Kind:       domain.MethodPix,
		PercentFee: decimal.NewFromFloat(1.99),
	}
	// 33.33 * 1.99% = 0.663267 -> 0.66
	res, err := services.ComputeFee(decimal.NewFromFloat(33.33), domain.Receita, method, dateutil.Date(2024, time.June, 1))
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.66).Equal(res.FeeAmount), "fee was %s", res.FeeAmount)

	// 12.50 * 2% = 0.25 exactly; 12.55 * 2% = 0.251 -> 0.25; 12.75 * 2% = 0.255 -> 0.26 (half up)
	method.PercentFee = decimal.NewFromInt(2)
	res, err = services.ComputeFee(decimal.NewFromFloat(12.75), domain.Receita, method, dateutil.Date(2024, time.June, 1))
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(0.26).Equal(res.FeeAmount), "fee was %s", res.FeeAmount)
}

func TestComputeFee_NoMethodIsCashEquivalent(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	res, err := services.ComputeFee(decimal.NewFromInt(250), domain.Despesa, nil, anchor)
	assert.NoError(t, err)
	assert.True(t, res.FeeAmount.IsZero())
	assert.True(t, decimal.NewFromInt(250).Equal(res.NetAmount))
	assert.True(t, anchor.Equal(res.SettlementDate))
}

func TestComputeFee_RejectsNegativeGross(t *testing.T) {
	_, err := services.ComputeFee(decimal.NewFromInt(-1), domain.Receita, nil, dateutil.Date(2024, time.January, 15))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestSettlementDate_CardCycleRule(t *testing.T) {
	card := &domain.PaymentMethod{
		Kind: domain.MethodCreditCard,
		Card: &domain.CardConfig{ClosingDay: 25, DueDay: 10},
	}

	tests := []struct {
		name   string
		anchor time.Time
		want   time.Time
	}{
		{
			name:   "before closing day settles same month",
			anchor: dateutil.Date(2024, time.March, 20),
			want:   dateutil.Date(2024, time.March, 10),
		},
		{
			name:   "on closing day settles same month",
			anchor: dateutil.Date(2024, time.March, 25),
			want:   dateutil.Date(2024, time.March, 10),
		},
		{
			name:   "after closing day rolls to next month",
			anchor: dateutil.Date(2024, time.March, 27),
			want:   dateutil.Date(2024, time.April, 10),
		},
		{
			name:   "rollover crosses year boundary",
			anchor: dateutil.Date(2024, time.December, 28),
			want:   dateutil.Date(2025, time.January, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.SettlementDate(card, tt.anchor)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestSettlementDate_CardDueDayClamped(t *testing.T) {
	card := &domain.PaymentMethod{
		Kind: domain.MethodCreditCard,
		Card: &domain.CardConfig{ClosingDay: 28, DueDay: 31},
	}
	// Due day 31 in February clamps to the last valid day.
	got := services.SettlementDate(card, dateutil.Date(2024, time.February, 5))
	assert.True(t, dateutil.Date(2024, time.February, 29).Equal(got), "got %s", got)
}

func TestSettlementDate_UnconfiguredCardFallsBackToLag(t *testing.T) {
	card := &domain.PaymentMethod{
		Kind:              domain.MethodCreditCard,
		Card:              &domain.CardConfig{ClosingDay: 0, DueDay: 10},
		SettlementLagDays: 30,
	}
	got := services.SettlementDate(card, dateutil.Date(2024, time.March, 20))
	assert.True(t, dateutil.Date(2024, time.April, 19).Equal(got), "got %s", got)
}

func TestSettlementDate_LagKinds(t *testing.T) {
	boleto := &domain.PaymentMethod{Kind: domain.MethodBoleto, SettlementLagDays: 2}
	got := services.SettlementDate(boleto, dateutil.Date(2024, time.January, 31))
	assert.True(t, dateutil.Date(2024, time.February, 2).Equal(got), "got %s", got)

	// Debit card uses the lag rule, not the card cycle.
	debit := &domain.PaymentMethod{Kind: domain.MethodDebitCard, SettlementLagDays: 1}
	got = services.SettlementDate(debit, dateutil.Date(2024, time.March, 27))
	assert.True(t, dateutil.Date(2024, time.March, 28).Equal(got))
}
