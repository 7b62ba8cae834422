package campaign

import (
	"cmp"
	"math"
	"slices"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// DefaultFeaturedCount is the number of featured campaigns on the home page.
const DefaultFeaturedCount = 3

// SelectFeatured returns up to k campaigns with a non-zero amount raised and
// goal, ordered by raised/goal descending. Ties keep their input order. The
// result is a new slice; the input is not modified.
func SelectFeatured(campaigns []domain.Campaign, k int) []domain.Campaign {
	if k <= 0 {
		return []domain.Campaign{}
	}

	eligible := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.AmountRaised == 0 || c.GoalAmount == 0 || math.IsNaN(fundedRatio(c)) {
			continue
		}
		eligible = append(eligible, c)
	}

	slices.SortStableFunc(eligible, func(a, b domain.Campaign) int {
		return cmp.Compare(fundedRatio(b), fundedRatio(a))
	})

	if len(eligible) > k {
		eligible = eligible[:k]
	}
	return slices.Clip(eligible)
}

func fundedRatio(c domain.Campaign) float64 {
	return c.AmountRaised / c.GoalAmount
}
