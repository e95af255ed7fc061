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

func TestGeneratePlan_RejectsBadInput(t *testing.T) {
	_, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromInt(100),
		Count:         0,
		AnchorDueDate: dateutil.Date(2024, time.January, 15),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInstallmentCount)

	_, err = services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromInt(-10),
		Count:         2,
		AnchorDueDate: dateutil.Date(2024, time.January, 15),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestGeneratePlan_SequencesAndCadence(t *testing.T) {
	plan, err := services.GeneratePlan(services.PlanSpec{
		TransactionID: "txn-1",
		NetAmount:     decimal.NewFromInt(300),
		Count:         3,
		AnchorDueDate: dateutil.Date(2024, time.January, 15),
	})
	assert.NoError(t, err)
	assert.Len(t, plan, 3)

	for i, inst := range plan {
		assert.Equal(t, i+1, inst.Sequence)
		assert.Equal(t, 3, inst.Count)
		assert.Equal(t, "txn-1", inst.TransactionID)
		assert.NotEmpty(t, inst.InstallmentID)
		assert.True(t, decimal.NewFromInt(100).Equal(inst.Amount))
		assert.Equal(t, domain.StatusPending, inst.Status)
	}
	assert.True(t, dateutil.Date(2024, time.January, 15).Equal(plan[0].DueDate))
	assert.True(t, dateutil.Date(2024, time.February, 15).Equal(plan[1].DueDate))
	assert.True(t, dateutil.Date(2024, time.March, 15).Equal(plan[2].DueDate))
}

func TestGeneratePlan_EndOfMonthAnchorsClamp(t *testing.T) {
	plan, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromInt(90),
		Count:         3,
		AnchorDueDate: dateutil.Date(2024, time.January, 31),
	})
	assert.NoError(t, err)
	assert.True(t, dateutil.Date(2024, time.January, 31).Equal(plan[0].DueDate))
	assert.True(t, dateutil.Date(2024, time.February, 29).Equal(plan[1].DueDate))
	// The third month clamps independently of the shorter second one.
	assert.True(t, dateutil.Date(2024, time.March, 31).Equal(plan[2].DueDate))
}

// The generator divides per installment and does not push the rounding
// residue onto the last one; the sum drifts from the net by sub-cent noise.
func TestGeneratePlan_RoundingResidueNotRedistributed(t *testing.T) {
	net := decimal.NewFromInt(100)
	plan, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     net,
		Count:         3,
		AnchorDueDate: dateutil.Date(2024, time.January, 15),
	})
	assert.NoError(t, err)

	sum := decimal.Zero
	for _, inst := range plan {
		assert.True(t, decimal.NewFromFloat(33.33).Equal(inst.Amount), "amount was %s", inst.Amount)
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, decimal.NewFromFloat(99.99).Equal(sum))

	// Within the documented tolerance of count * 0.005.
	tolerance := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(3))
	assert.True(t, net.Sub(sum).Abs().LessThanOrEqual(tolerance))
}

func TestGeneratePlan_SettlementPerInstallment(t *testing.T) {
	transfer := &domain.PaymentMethod{Kind: domain.MethodTransfer, SettlementLagDays: 2}
	plan, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromInt(300),
		Count:         3,
		AnchorDueDate: dateutil.Date(2024, time.January, 15),
		Method:        transfer,
	})
	assert.NoError(t, err)
	assert.True(t, dateutil.Date(2024, time.January, 17).Equal(plan[0].SettlementDate))
	assert.True(t, dateutil.Date(2024, time.February, 17).Equal(plan[1].SettlementDate))
	assert.True(t, dateutil.Date(2024, time.March, 17).Equal(plan[2].SettlementDate))
}

// Later installments of a credit-card plan cross billing cycles on their own.
func TestGeneratePlan_CardCyclePerInstallment(t *testing.T) {
	card := &domain.PaymentMethod{
		Kind: domain.MethodCreditCard,
		Card: &domain.CardConfig{ClosingDay: 25, DueDay: 10},
	}
	plan, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromInt(200),
		Count:         2,
		AnchorDueDate: dateutil.Date(2024, time.January, 27),
		Method:        card,
	})
	assert.NoError(t, err)
	// Due Jan 27 (> closing 25) settles Feb 10; due Feb 27 settles Mar 10.
	assert.True(t, dateutil.Date(2024, time.February, 10).Equal(plan[0].SettlementDate))
	assert.True(t, dateutil.Date(2024, time.March, 10).Equal(plan[1].SettlementDate))
}

func TestGeneratePlan_SingleInstallment(t *testing.T) {
	plan, err := services.GeneratePlan(services.PlanSpec{
		NetAmount:     decimal.NewFromFloat(96.50),
		Count:         1,
		AnchorDueDate: dateutil.Date(2024, time.May, 10),
	})
	assert.NoError(t, err)
	assert.Len(t, plan, 1)
	assert.True(t, decimal.NewFromFloat(96.50).Equal(plan[0].Amount))
	assert.Equal(t, 1, plan[0].Sequence)
}
