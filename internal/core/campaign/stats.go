package campaign

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// ComputeStats summarizes the owner's campaigns and the donations the owner made.
// Non-finite amounts count as zero.
func ComputeStats(campaigns []domain.Campaign, donations []domain.Donation) domain.DashboardStats {
	raised := decimal.Zero
	for _, c := range campaigns {
		raised = raised.Add(amount(c.AmountRaised))
	}

	donated := decimal.Zero
	for _, d := range donations {
		donated = donated.Add(amount(d.Amount))
	}

	stats := domain.DashboardStats{
		TotalRaised:      raised.InexactFloat64(),
		CampaignsCreated: len(campaigns),
		DonationsMade:    len(donations),
		TotalDonated:     donated.InexactFloat64(),
	}
	if stats.DonationsMade > 0 {
		stats.AverageDonation = donated.Div(decimal.NewFromInt(int64(stats.DonationsMade))).InexactFloat64()
	}
	return stats
}

func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
