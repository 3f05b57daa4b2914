package model

import "github.com/shopspring/decimal"

type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type DashboardStats struct {
	ActionNeeded     int             `json:"action_needed"`
	InProgress       int             `json:"in_progress"`
	Completed        int             `json:"completed"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}
