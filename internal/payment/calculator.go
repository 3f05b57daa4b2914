package payment

import (
	"github.com/and161185/marketplace/internal/model"
	"github.com/shopspring/decimal"
)

// defaultDepositFraction is the deposit share used when the service has no
// explicit split amount configured.
var defaultDepositFraction = decimal.New(5, -1) // 0.5

// Tolerance absorbs upstream floating-point currency rounding when deciding
// whether the deposit has already been paid.
var Tolerance = decimal.New(1, -2) // 0.01

type Amounts struct {
	Deposit      decimal.Decimal
	Remaining    decimal.Decimal
	DueNow       decimal.Decimal
	FirstPayment bool
}

// ComputeAmounts derives deposit, remaining and due-now amounts for an order.
// It is total: a non-positive price or an option outside the known set is
// treated as free and yields all-zero amounts. All results are rounded to two
// decimal places, half up.
func ComputeAmounts(price decimal.Decimal, option model.PaymentOption, depositHint, remainingHint *decimal.Decimal, amountPaid decimal.Decimal) Amounts {
	if price.LessThanOrEqual(decimal.Zero) {
		return Amounts{}
	}

	switch option {
	case model.PaymentUpfront, model.PaymentLater:
		// single payment point, no split
		return Amounts{DueNow: price.Round(2)}

	case model.SplitPayment:
		deposit := price.Mul(defaultDepositFraction).Round(2)
		if depositHint != nil {
			deposit = depositHint.Round(2)
		}

		remaining := price.Sub(deposit).Round(2)
		if remainingHint != nil {
			remaining = remainingHint.Round(2)
		}

		first := amountPaid.LessThan(deposit.Sub(Tolerance))

		dueNow := remaining
		if first {
			dueNow = deposit
		}

		return Amounts{
			Deposit:      deposit,
			Remaining:    remaining,
			DueNow:       dueNow,
			FirstPayment: first,
		}

	default:
		// model.Free and anything unrecognized
		return Amounts{}
	}
}
