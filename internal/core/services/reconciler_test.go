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

func mustPlan(t *testing.T, net float64, count int, anchor time.Time) []domain.Installment {
	t.Helper()
	plan, err := services.GeneratePlan(services.PlanSpec{
		TransactionID: "txn-1",
		NetAmount:     decimal.NewFromFloat(net),
		Count:         count,
		AnchorDueDate: anchor,
	})
	assert.NoError(t, err)
	return plan
}

func paidOn(inst domain.Installment, d time.Time) domain.Installment {
	inst.PaymentDate = &d
	return inst
}

func TestReconcile_UnpaidRowsFollowThePlan(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 300, 3, anchor)

	newPlan := mustPlan(t, 600, 3, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.NoError(t, err)

	assert.Len(t, diff.ToUpdate, 3)
	assert.Empty(t, diff.ToInsert)
	assert.Empty(t, diff.ToDelete)
	assert.Empty(t, diff.Conflicts)
	for i, upd := range diff.ToUpdate {
		// Identity of the persisted row is kept, values come from the plan.
		assert.Equal(t, existing[i].InstallmentID, upd.InstallmentID)
		assert.True(t, decimal.NewFromInt(200).Equal(upd.Amount))
	}
}

func TestReconcile_PaidRowsAreUntouched(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 300, 3, anchor)
	existing[0] = paidOn(existing[0], dateutil.Date(2024, time.January, 17))

	newPlan := mustPlan(t, 600, 3, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.NoError(t, err)

	assert.Len(t, diff.ToUpdate, 2)
	for _, upd := range diff.ToUpdate {
		assert.NotEqual(t, existing[0].InstallmentID, upd.InstallmentID)
	}
	assert.Empty(t, diff.ToDelete)
}

func TestReconcile_CountIncreaseInserts(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 200, 2, anchor)

	newPlan := mustPlan(t, 400, 4, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.NoError(t, err)

	assert.Len(t, diff.ToUpdate, 2)
	assert.Len(t, diff.ToInsert, 2)
	assert.Equal(t, 3, diff.ToInsert[0].Sequence)
	assert.Equal(t, 4, diff.ToInsert[1].Sequence)
	// Kept rows adopt the new denormalized count.
	assert.Equal(t, 4, diff.ToUpdate[0].Count)
}

func TestReconcile_CountDecreaseDeletesUnpaidTail(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 400, 4, anchor)

	newPlan := mustPlan(t, 400, 2, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.NoError(t, err)

	assert.Len(t, diff.ToUpdate, 2)
	assert.Len(t, diff.ToDelete, 2)
	assert.Equal(t, existing[2].InstallmentID, diff.ToDelete[0].InstallmentID)
	assert.Equal(t, existing[3].InstallmentID, diff.ToDelete[1].InstallmentID)
}

func TestReconcile_PaidTailIsAConflict(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 300, 3, anchor)
	existing[2] = paidOn(existing[2], dateutil.Date(2024, time.March, 15))

	newPlan := mustPlan(t, 300, 2, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
	assert.Len(t, diff.Conflicts, 1)
	assert.Equal(t, existing[2].InstallmentID, diff.Conflicts[0].InstallmentID)
	// The paid row is never staged for deletion.
	assert.Empty(t, diff.ToDelete)
}

// Property from the reconciliation contract: for any k paid installments and
// any requested count >= k, no paid row lands in ToUpdate or ToDelete.
func TestReconcile_NeverTouchesPaidHistory(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	paidDate := dateutil.Date(2024, time.February, 1)

	for k := 0; k <= 4; k++ {
		existing := mustPlan(t, 400, 4, anchor)
		paidIDs := map[string]bool{}
		for i := 0; i < k; i++ {
			existing[i] = paidOn(existing[i], paidDate)
			paidIDs[existing[i].InstallmentID] = true
		}

		for _, newCount := range []int{4, 5, 7} {
			newPlan := mustPlan(t, 500, newCount, anchor)
			diff, err := services.Reconcile(existing, newPlan)
			assert.NoError(t, err)
			for _, inst := range append(diff.ToUpdate, diff.ToDelete...) {
				assert.False(t, paidIDs[inst.InstallmentID],
					"paid installment staged for mutation with k=%d count=%d", k, newCount)
			}
		}
	}
}

func TestReconcile_UnsortedExistingInput(t *testing.T) {
	anchor := dateutil.Date(2024, time.January, 15)
	existing := mustPlan(t, 300, 3, anchor)
	// Simulate an unordered fetch.
	existing[0], existing[2] = existing[2], existing[0]

	newPlan := mustPlan(t, 300, 3, anchor)
	diff, err := services.Reconcile(existing, newPlan)
	assert.NoError(t, err)
	assert.Len(t, diff.ToUpdate, 3)
	assert.Equal(t, 1, diff.ToUpdate[0].Sequence)
	assert.Equal(t, 3, diff.ToUpdate[2].Sequence)
}
