package services

import (
	"fmt"
	"sort"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
)

// Reconcile diffs a persisted installment set against a freshly generated
// plan, matching positionally by sequence number.
//
// Paid installments are immutable: an overlapping paid row is left untouched
// and an unpaid one takes the plan's amount, due date and settlement date
// while keeping its identity. Plan positions beyond the existing set become
// inserts; existing unpaid rows beyond the plan become deletes.
//
// A paid row beyond the plan's count cannot be honored: the diff's Conflicts
// slice names every such row and ErrScheduleConflict is returned, leaving
// the caller to surface the condition instead of losing paid history.
func Reconcile(existing []domain.Installment, plan []domain.Installment) (domain.ScheduleDiff, error) {
	ordered := make([]domain.Installment, len(existing))
	copy(ordered, existing)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Sequence < ordered[j].Sequence })

	var diff domain.ScheduleDiff

	overlap := len(ordered)
	if len(plan) < overlap {
		overlap = len(plan)
	}

	for i := 0; i < overlap; i++ {
		current := ordered[i]
		if current.IsPaid() {
			// Paid history is immutable; the row keeps its dates and amount.
			continue
		}
		updated := current
		updated.Sequence = plan[i].Sequence
		updated.Count = len(plan)
		updated.Amount = plan[i].Amount
		updated.DueDate = plan[i].DueDate
		updated.SettlementDate = plan[i].SettlementDate
		diff.ToUpdate = append(diff.ToUpdate, updated)
	}

	for i := overlap; i < len(plan); i++ {
		diff.ToInsert = append(diff.ToInsert, plan[i])
	}

	for i := overlap; i < len(ordered); i++ {
		if ordered[i].IsPaid() {
			diff.Conflicts = append(diff.Conflicts, ordered[i])
			continue
		}
		diff.ToDelete = append(diff.ToDelete, ordered[i])
	}

	if len(diff.Conflicts) > 0 {
		return diff, fmt.Errorf("%w: %d paid installment(s) beyond the requested count of %d",
			apperrors.ErrScheduleConflict, len(diff.Conflicts), len(plan))
	}
	return diff, nil
}
