package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	"github.com/vhrodriguesv/clinicfin/internal/core/domain"
	"github.com/vhrodriguesv/clinicfin/internal/utils/dateutil"
)

var oneHundred = decimal.NewFromInt(100)

// FeeResult is the outcome of applying a payment method to a gross amount.
type FeeResult struct {
	FeeAmount      decimal.Decimal
	NetAmount      decimal.Decimal
	SettlementDate time.Time
}

// ComputeFee calculates the method fee, the direction-dependent net amount
// and the projected settlement date for the given anchor due date.
//
// Fees cut both ways: a receivable nets less than billed (net = gross - fee)
// while a payable costs more than invoiced (net = gross + fee).
//
// A nil method means a cash-equivalent: zero fee, settlement on the anchor
// date itself.
func ComputeFee(gross decimal.Decimal, direction domain.Direction, method *domain.PaymentMethod, anchor time.Time) (FeeResult, error) {
	if gross.IsNegative() {
		return FeeResult{}, fmt.Errorf("%w: gross amount %s is negative", apperrors.ErrInvalidAmount, gross.String())
	}

	anchor = dateutil.DateOnly(anchor)
	if method == nil {
		return FeeResult{
			FeeAmount:      decimal.Zero,
			NetAmount:      gross,
			SettlementDate: anchor,
		}, nil
	}

	fee := gross.Mul(method.PercentFee).Div(oneHundred).Add(method.FixedFee).Round(2)

	var net decimal.Decimal
	if direction.IsInflow() {
		net = gross.Sub(fee)
	} else {
		net = gross.Add(fee)
	}

	return FeeResult{
		FeeAmount:      fee,
		NetAmount:      net,
		SettlementDate: SettlementDate(method, anchor),
	}, nil
}

// SettlementDate projects when the money of an installment due on anchor
// actually moves.
//
// Credit cards follow the card cycle rule: a due date on or before the
// card's closing day settles on the card's due day of the same month; past
// the closing day it rolls to the due day of the following month. Cards
// without a configured cycle, and every other method kind, settle a fixed
// number of days after the due date.
func SettlementDate(method *domain.PaymentMethod, anchor time.Time) time.Time {
	anchor = dateutil.DateOnly(anchor)
	if method == nil {
		return anchor
	}

	if method.Kind == domain.MethodCreditCard && method.Card.Configured() {
		if anchor.Day() <= method.Card.ClosingDay {
			return dateutil.WithDayClamped(anchor.Year(), anchor.Month(), method.Card.DueDay)
		}
		return dateutil.WithDayClamped(anchor.Year(), anchor.Month()+1, method.Card.DueDay)
	}

	return anchor.AddDate(0, 0, method.SettlementLagDays)
}
