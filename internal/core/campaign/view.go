package campaign

import (
	"time"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// View computes the display state of a campaign at now.
func View(c domain.Campaign, now time.Time) domain.CampaignView {
	s := SignalsFor(c, now)
	return domain.CampaignView{
		Campaign:        c,
		ProgressPercent: s.ProgressPercent,
		DaysRemaining:   s.DaysRemaining,
		TimeRemaining:   TimeRemainingLabel(c.EndDate, now),
		Action:          Classify(s),
	}
}

// Views computes display state for every campaign, preserving order.
func Views(campaigns []domain.Campaign, now time.Time) []domain.CampaignView {
	views := make([]domain.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, View(c, now))
	}
	return views
}
