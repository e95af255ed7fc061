package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/core/services"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

func receivable(installments ...domain.Installment) domain.Transaction {
	return domain.Transaction{Direction: domain.Receita, Installments: installments}
}

func payable(installments ...domain.Installment) domain.Transaction {
	return domain.Transaction{Direction: domain.Despesa, Installments: installments}
}

func inst(amount float64, due time.Time) domain.Installment {
	return domain.Installment{Amount: decimal.NewFromFloat(amount), DueDate: due}
}

func paidInst(amount float64, due, paid time.Time) domain.Installment {
	i := inst(amount, due)
	i.PaymentDate = &paid
	return i
}

func TestAggregateCashFlow_ZeroFill(t *testing.T) {
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 5)

	buckets := services.AggregateCashFlow(nil, from, to, domain.ResolutionDay)
	assert.Len(t, buckets, 5)
	for i, b := range buckets {
		assert.Equal(t, from.AddDate(0, 0, i).Format("2006-01-02"), b.Label)
		assert.True(t, b.ActualInflow.IsZero())
		assert.True(t, b.ActualOutflow.IsZero())
		assert.True(t, b.ProjectedInflow.IsZero())
		assert.True(t, b.ProjectedOutflow.IsZero())
		assert.True(t, b.NetBalance.IsZero())
		assert.True(t, b.AccumulatedBalance.IsZero())
	}
}

func TestAggregateCashFlow_ActualVsProjected(t *testing.T) {
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 31)

	txns := []domain.Transaction{
		receivable(
			// Paid late: buckets by payment date, not due date.
			paidInst(100, dateutil.Date(2024, time.March, 1), dateutil.Date(2024, time.March, 3)),
			inst(100, dateutil.Date(2024, time.March, 10)),
		),
		payable(
			paidInst(40, dateutil.Date(2024, time.March, 3), dateutil.Date(2024, time.March, 3)),
			inst(40, dateutil.Date(2024, time.March, 10)),
		),
	}

	buckets := services.AggregateCashFlow(txns, from, to, domain.ResolutionDay)
	assert.Len(t, buckets, 31)

	day3 := buckets[2]
	assert.True(t, decimal.NewFromInt(100).Equal(day3.ActualInflow))
	assert.True(t, decimal.NewFromInt(40).Equal(day3.ActualOutflow))
	assert.True(t, day3.ProjectedInflow.IsZero())

	day10 := buckets[9]
	assert.True(t, day10.ActualInflow.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(day10.ProjectedInflow))
	assert.True(t, decimal.NewFromInt(40).Equal(day10.ProjectedOutflow))

	// Due date of the paid row contributes nothing on day 1.
	assert.True(t, buckets[0].ActualInflow.IsZero())
	assert.True(t, buckets[0].ProjectedInflow.IsZero())
}

func TestAggregateCashFlow_AccumulatedBalanceIsActualOnly(t *testing.T) {
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 4)

	txns := []domain.Transaction{
		receivable(paidInst(100, from, dateutil.Date(2024, time.March, 1))),
		payable(paidInst(30, from, dateutil.Date(2024, time.March, 2))),
		receivable(inst(500, dateutil.Date(2024, time.March, 3))), // projected only
	}

	buckets := services.AggregateCashFlow(txns, from, to, domain.ResolutionDay)
	assert.True(t, decimal.NewFromInt(100).Equal(buckets[0].AccumulatedBalance))
	assert.True(t, decimal.NewFromInt(70).Equal(buckets[1].AccumulatedBalance))
	// The projected 500 does not move the running actual balance.
	assert.True(t, decimal.NewFromInt(70).Equal(buckets[2].AccumulatedBalance))
	assert.True(t, decimal.NewFromInt(70).Equal(buckets[3].AccumulatedBalance))
	// But it shows in the bucket's own net position.
	assert.True(t, decimal.NewFromInt(500).Equal(buckets[2].NetBalance))
}

func TestAggregateCashFlow_CanceledInstallmentsProjectNothing(t *testing.T) {
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 10)

	canceled := inst(100, dateutil.Date(2024, time.March, 5))
	canceled.Canceled = true
	buckets := services.AggregateCashFlow([]domain.Transaction{receivable(canceled)}, from, to, domain.ResolutionDay)
	for _, b := range buckets {
		assert.True(t, b.ProjectedInflow.IsZero())
	}
}

func TestAggregateCashFlow_MonthAndYearResolutions(t *testing.T) {
	txns := []domain.Transaction{
		receivable(
			paidInst(100, dateutil.Date(2024, time.January, 15), dateutil.Date(2024, time.January, 20)),
			paidInst(100, dateutil.Date(2024, time.February, 15), dateutil.Date(2024, time.February, 16)),
			inst(100, dateutil.Date(2024, time.March, 15)),
		),
	}

	months := services.AggregateCashFlow(txns,
		dateutil.Date(2024, time.January, 1), dateutil.Date(2024, time.April, 30), domain.ResolutionMonth)
	assert.Len(t, months, 4)
	assert.Equal(t, "2024-01", months[0].Label)
	assert.True(t, decimal.NewFromInt(100).Equal(months[0].ActualInflow))
	assert.True(t, decimal.NewFromInt(100).Equal(months[1].ActualInflow))
	assert.True(t, decimal.NewFromInt(100).Equal(months[2].ProjectedInflow))
	assert.True(t, months[3].NetBalance.IsZero())

	years := services.AggregateCashFlow(txns,
		dateutil.Date(2023, time.June, 1), dateutil.Date(2024, time.June, 1), domain.ResolutionYear)
	assert.Len(t, years, 2)
	assert.Equal(t, "2023", years[0].Label)
	assert.Equal(t, "2024", years[1].Label)
	assert.True(t, decimal.NewFromInt(200).Equal(years[1].ActualInflow))
}

func TestAggregateCashFlow_OutOfRangeIgnored(t *testing.T) {
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 31)

	txns := []domain.Transaction{
		receivable(
			paidInst(100, dateutil.Date(2024, time.February, 1), dateutil.Date(2024, time.February, 2)),
			inst(100, dateutil.Date(2024, time.May, 1)),
		),
	}
	buckets := services.AggregateCashFlow(txns, from, to, domain.ResolutionDay)
	for _, b := range buckets {
		assert.True(t, b.ActualInflow.IsZero())
		assert.True(t, b.ProjectedInflow.IsZero())
	}
}

func TestSummarizeCashFlow(t *testing.T) {
	canceled := inst(999, dateutil.Date(2024, time.April, 1))
	canceled.Canceled = true

	txns := []domain.Transaction{
		receivable(
			paidInst(100, dateutil.Date(2024, time.January, 15), dateutil.Date(2024, time.January, 15)),
			paidInst(100, dateutil.Date(2024, time.February, 15), dateutil.Date(2024, time.March, 2)),
			inst(100, dateutil.Date(2024, time.April, 15)),
			canceled,
		),
		payable(
			paidInst(50, dateutil.Date(2024, time.February, 1), dateutil.Date(2024, time.February, 1)),
			inst(50, dateutil.Date(2024, time.March, 1)),
		),
	}

	// All-time, no range.
	all := services.SummarizeCashFlow(txns, nil, nil)
	assert.True(t, decimal.NewFromInt(150).Equal(all.Balance), "balance was %s", all.Balance)
	assert.True(t, decimal.NewFromInt(200).Equal(all.PeriodInflow))
	assert.True(t, decimal.NewFromInt(50).Equal(all.PeriodOutflow))
	assert.True(t, decimal.NewFromInt(100).Equal(all.TotalReceivable))
	assert.True(t, decimal.NewFromInt(50).Equal(all.TotalPayable))

	// March only: period figures narrow, the rest stays all-time.
	from := dateutil.Date(2024, time.March, 1)
	to := dateutil.Date(2024, time.March, 31)
	march := services.SummarizeCashFlow(txns, &from, &to)
	assert.True(t, decimal.NewFromInt(150).Equal(march.Balance))
	assert.True(t, decimal.NewFromInt(100).Equal(march.PeriodInflow))
	assert.True(t, march.PeriodOutflow.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(march.TotalReceivable))
	assert.True(t, decimal.NewFromInt(50).Equal(march.TotalPayable))
}

func TestSummarizeCashFlow_EmptyInput(t *testing.T) {
	summary := services.SummarizeCashFlow(nil, nil, nil)
	assert.True(t, summary.Balance.IsZero())
	assert.True(t, summary.TotalReceivable.IsZero())
	assert.True(t, summary.TotalPayable.IsZero())
}
