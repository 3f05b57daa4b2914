package orders

import "github.com/and161185/marketplace/internal/model"

// DeriveStats aggregates transformed orders into the dashboard summary.
// Canceled orders are excluded entirely; outstanding amounts only count
// orders that are not finished yet.
func DeriveStats(views []model.OrderView) model.DashboardStats {
	var stats model.DashboardStats

	for _, v := range views {
		switch v.Status {
		case model.StatusCanceled:
			continue
		case model.StatusPaymentRequired, model.StatusLocked, model.StatusDownload:
			stats.ActionNeeded++
		case model.StatusPlaced, model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}

		stats.TotalPaid = stats.TotalPaid.Add(v.AmountPaid)
		if v.Status != model.StatusCompleted {
			stats.TotalOutstanding = stats.TotalOutstanding.Add(v.AmountRemaining)
		}
	}

	stats.TotalPaid = stats.TotalPaid.Round(2)
	stats.TotalOutstanding = stats.TotalOutstanding.Round(2)
	return stats
}
