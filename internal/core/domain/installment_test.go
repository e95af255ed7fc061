package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

func TestInstallment_DeriveStatus(t *testing.T) {
	today := dateutil.Date(2024, time.March, 15)

	tests := []struct {
		name        string
		installment domain.Installment
		want        domain.InstallmentStatus
	}{
		{
			name:        "unpaid with future due date is pending",
			installment: domain.Installment{DueDate: dateutil.Date(2024, time.April, 1)},
			want:        domain.StatusPending,
		},
		{
			name:        "unpaid due today",
			installment: domain.Installment{DueDate: dateutil.Date(2024, time.March, 15)},
			want:        domain.StatusDueToday,
		},
		{
			name:        "unpaid past due is overdue",
			installment: domain.Installment{DueDate: dateutil.Date(2024, time.March, 1)},
			want:        domain.StatusOverdue,
		},
		{
			name: "paid wins over overdue",
			installment: domain.Installment{
				DueDate:     dateutil.Date(2024, time.February, 1),
				PaymentDate: timePtr(dateutil.Date(2024, time.February, 20)),
			},
			want: domain.StatusPaid,
		},
		{
			name: "canceled and unpaid",
			installment: domain.Installment{
				DueDate:  dateutil.Date(2024, time.March, 1),
				Canceled: true,
			},
			want: domain.StatusCanceled,
		},
		{
			name: "cancel marker ignored once paid",
			installment: domain.Installment{
				DueDate:     dateutil.Date(2024, time.March, 1),
				Canceled:    true,
				PaymentDate: timePtr(dateutil.Date(2024, time.March, 2)),
			},
			want: domain.StatusPaid,
		},
		{
			name: "persisted status hint is ignored",
			installment: domain.Installment{
				DueDate: dateutil.Date(2024, time.April, 1),
				Status:  domain.StatusOverdue,
			},
			want: domain.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.installment.DeriveStatus(today)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Once paid, no choice of "today" may revert the status.
func TestInstallment_PaidStatusIsMonotonic(t *testing.T) {
	inst := domain.Installment{
		DueDate:     dateutil.Date(2024, time.March, 10),
		PaymentDate: timePtr(dateutil.Date(2024, time.March, 12)),
	}

	days := []time.Time{
		dateutil.Date(2020, time.January, 1),
		dateutil.Date(2024, time.March, 10),
		dateutil.Date(2024, time.March, 12),
		dateutil.Date(2030, time.December, 31),
	}
	for _, today := range days {
		assert.Equal(t, domain.StatusPaid, inst.DeriveStatus(today))
	}
}

func TestInstallment_CorrectedAmount(t *testing.T) {
	inst := domain.Installment{
		Amount:       decimal.NewFromFloat(100.00),
		LateFee:      decimal.NewFromFloat(2.00),
		LateInterest: decimal.NewFromFloat(0.33),
		Discount:     decimal.NewFromFloat(5.00),
	}
	assert.True(t, decimal.NewFromFloat(97.33).Equal(inst.CorrectedAmount()))
}

func TestTransaction_AggregateStatus(t *testing.T) {
	today := dateutil.Date(2024, time.March, 15)
	paid := domain.Installment{
		DueDate:     dateutil.Date(2024, time.February, 15),
		PaymentDate: timePtr(dateutil.Date(2024, time.February, 15)),
	}
	pending := domain.Installment{DueDate: dateutil.Date(2024, time.April, 15)}
	overdue := domain.Installment{DueDate: dateutil.Date(2024, time.March, 1)}
	dueToday := domain.Installment{DueDate: today}
	canceled := domain.Installment{DueDate: dateutil.Date(2024, time.April, 15), Canceled: true}

	tests := []struct {
		name         string
		installments []domain.Installment
		want         domain.InstallmentStatus
	}{
		{"all paid", []domain.Installment{paid, paid}, domain.StatusPaid},
		{"all canceled", []domain.Installment{canceled, canceled}, domain.StatusCanceled},
		{"any overdue dominates", []domain.Installment{paid, overdue, dueToday}, domain.StatusOverdue},
		{"due today without overdue", []domain.Installment{paid, dueToday, pending}, domain.StatusDueToday},
		{"paid plus pending is pending", []domain.Installment{paid, pending}, domain.StatusPending},
		{"canceled plus paid is not canceled", []domain.Installment{canceled, paid}, domain.StatusPending},
		{"no installments default to pending", nil, domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Installments: tt.installments}
			assert.Equal(t, tt.want, txn.AggregateStatus(today))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
