package model

import "github.com/shopspring/decimal"

// NormalizePaymentOption maps the booking-service payment option onto the
// closed PaymentOption set. A zero (or negative) price always wins: the order
// is free no matter what the backend field says.
func NormalizePaymentOption(raw string, price decimal.Decimal) PaymentOption {
	if price.LessThanOrEqual(decimal.Zero) {
		return Free
	}

	switch raw {
	case "upfront":
		return PaymentUpfront
	case "split":
		return SplitPayment
	default:
		return PaymentLater
	}
}

// NormalizeStatus maps a backend lifecycle tag onto the UI status set.
// Unknown tags fall back to StatusPlaced so a new backend state never
// breaks rendering.
func NormalizeStatus(raw string) OrderStatus {
	switch raw {
	case "pending":
		return StatusPlaced
	case "payment_required":
		return StatusPaymentRequired
	case "in_progress":
		return StatusInProgress
	case "locked":
		return StatusLocked
	case "delivered":
		return StatusDownload
	case "completed":
		return StatusCompleted
	case "cancelled":
		return StatusCanceled
	default:
		return StatusPlaced
	}
}
