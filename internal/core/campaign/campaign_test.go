package campaign

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

var now = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func date(offsetDays int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+offsetDays, 0, 0, 0, 0, time.UTC)
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name   string
		raised float64
		goal   float64
		want   int
	}{
		{"zero goal", 50, 0, 0},
		{"negative goal", 50, -100, 0},
		{"nan goal", 50, math.NaN(), 0},
		{"nothing raised", 0, 100, 0},
		{"negative raised", -20, 100, 0},
		{"rounds down", 24.4, 100, 24},
		{"rounds half up", 24.5, 100, 25},
		{"exact goal", 100, 100, 100},
		{"over goal clamps", 250, 100, 100},
		{"infinite raised clamps", math.Inf(1), 100, 100},
		{"almost there rounds to 100", 99.6, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProgress(tt.raised, tt.goal))
		})
	}
}

func TestComputeProgressNonPositiveGoalAlwaysZero(t *testing.T) {
	for _, goal := range []float64{0, -0.01, -1, -1e9} {
		for _, raised := range []float64{-10, 0, 10, 1e12} {
			assert.Equal(t, 0, ComputeProgress(raised, goal), "raised=%v goal=%v", raised, goal)
		}
	}
}

func TestComputeProgressClampsAtGoal(t *testing.T) {
	for _, goal := range []float64{0.5, 1, 100, 12345.67} {
		for _, factor := range []float64{1, 1.01, 2, 1000} {
			assert.Equal(t, 100, ComputeProgress(goal*factor, goal), "goal=%v factor=%v", goal, factor)
		}
	}
}

func TestTimeRemainingLabel(t *testing.T) {
	assert.Equal(t, "Last day", TimeRemainingLabel(date(0), now))
	assert.Equal(t, "1 day left", TimeRemainingLabel(date(1), now))
	assert.Equal(t, "Ended", TimeRemainingLabel(date(-1), now))
	assert.Equal(t, "5 days left", TimeRemainingLabel(date(5), now))
	assert.Equal(t, "Ended", TimeRemainingLabel(time.Time{}, now))
}

func TestDaysRemaining(t *testing.T) {
	assert.Equal(t, 0, DaysRemaining(date(0), now))
	assert.Equal(t, 10, DaysRemaining(date(10), now))
	assert.Equal(t, -1, DaysRemaining(date(-1), now))
	assert.Equal(t, -5, DaysRemaining(date(-5), now))

	justAfterMidnight := date(0).Add(time.Nanosecond)
	assert.Equal(t, 0, DaysRemaining(date(0), justAfterMidnight))
	assert.Equal(t, 1, DaysRemaining(date(1), justAfterMidnight))
	assert.Equal(t, -1, DaysRemaining(time.Time{}, now))
}

func TestRulesEachFire(t *testing.T) {
	tests := []struct {
		rule    domain.ActionType
		signals Signals
	}{
		{domain.ActionEnded, Signals{DaysRemaining: -1, ProgressPercent: 100, DonationCount: 3}},
		{domain.ActionUrgent, Signals{DaysRemaining: 2, ProgressPercent: 0, DonationCount: 0}},
		{domain.ActionPromote, Signals{DaysRemaining: 6, ProgressPercent: 24, DonationCount: 0}},
		{domain.ActionSuccess, Signals{DaysRemaining: 6, ProgressPercent: 100, DonationCount: 0}},
		{domain.ActionNew, Signals{DaysRemaining: 10, ProgressPercent: 50, DonationCount: 0}},
		{domain.ActionActive, Signals{DaysRemaining: 10, ProgressPercent: 50, DonationCount: 5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			assert.Equal(t, tt.rule, Classify(tt.signals).Type)
		})
	}
}

func TestRulesOrderAndFallback(t *testing.T) {
	require.Len(t, Rules, 6)
	want := []domain.ActionType{
		domain.ActionEnded, domain.ActionUrgent, domain.ActionPromote,
		domain.ActionSuccess, domain.ActionNew, domain.ActionActive,
	}
	for i, r := range Rules {
		assert.Equal(t, want[i], r.Action)
	}
	assert.True(t, Rules[len(Rules)-1].Matches(Signals{}), "last rule must always match")
}

// classifyNested is the decision order written as plain conditionals.
func classifyNested(days, progress, donations int) domain.ActionType {
	if days < 0 {
		return domain.ActionEnded
	}
	if days < 3 {
		return domain.ActionUrgent
	}
	if progress < 25 && days < 7 {
		return domain.ActionPromote
	}
	if progress >= 100 {
		return domain.ActionSuccess
	}
	if donations == 0 {
		return domain.ActionNew
	}
	return domain.ActionActive
}

func TestClassifyGrid(t *testing.T) {
	for _, days := range []int{-5, 0, 2, 6, 10} {
		for _, progress := range []int{0, 24, 50, 100} {
			for _, donations := range []int{0, 5} {
				name := fmt.Sprintf("days=%d/progress=%d/donations=%d", days, progress, donations)
				t.Run(name, func(t *testing.T) {
					got := Classify(Signals{DaysRemaining: days, ProgressPercent: progress, DonationCount: donations})
					assert.Equal(t, classifyNested(days, progress, donations), got.Type)
					assert.NotEmpty(t, got.Message)
					assert.NotEmpty(t, got.Color)
				})
			}
		}
	}
}

func TestDescribeColors(t *testing.T) {
	assert.Equal(t, domain.ColorNeutral, Describe(domain.ActionEnded).Color)
	assert.Equal(t, domain.ColorRed, Describe(domain.ActionUrgent).Color)
	assert.Equal(t, domain.ColorOrange, Describe(domain.ActionPromote).Color)
	assert.Equal(t, domain.ColorGreen, Describe(domain.ActionSuccess).Color)
	assert.Equal(t, domain.ColorBlue, Describe(domain.ActionNew).Color)
	assert.Equal(t, domain.ColorGreen, Describe(domain.ActionActive).Color)
}

func TestClassifyActionFromCampaign(t *testing.T) {
	c := domain.Campaign{GoalAmount: 1000, AmountRaised: 100, EndDate: date(5), DonationCount: 2}
	assert.Equal(t, domain.ActionPromote, ClassifyAction(c, now).Type)

	c.GoalAmount = 0
	assert.Equal(t, domain.ActionPromote, ClassifyAction(c, now).Type, "zero goal counts as no progress")

	c = domain.Campaign{GoalAmount: 100, AmountRaised: 150, EndDate: date(30), DonationCount: 9}
	assert.Equal(t, domain.ActionSuccess, ClassifyAction(c, now).Type)
}

func TestSelectFeatured(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", AmountRaised: 50, GoalAmount: 100},
		{ID: "b", AmountRaised: 90, GoalAmount: 100},
		{ID: "c", AmountRaised: 10, GoalAmount: 100},
	}
	got := SelectFeatured(campaigns, DefaultFeaturedCount)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
	assert.Equal(t, "a", campaigns[0].ID, "input must not be reordered")
}

func TestSelectFeaturedFiltersAndTruncates(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "no-raise", AmountRaised: 0, GoalAmount: 100},
		{ID: "no-goal", AmountRaised: 40, GoalAmount: 0},
		{ID: "half", AmountRaised: 50, GoalAmount: 100},
		{ID: "tie", AmountRaised: 5, GoalAmount: 10},
		{ID: "full", AmountRaised: 200, GoalAmount: 200},
		{ID: "low", AmountRaised: 1, GoalAmount: 100},
	}
	assert.Equal(t, []string{"full", "half", "tie"}, ids(SelectFeatured(campaigns, 3)))
	assert.Equal(t, []string{"full", "half", "tie", "low"}, ids(SelectFeatured(campaigns, 10)))
	assert.Empty(t, SelectFeatured(campaigns, 0))
}

func TestSelectFeaturedFewerThanK(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "x", AmountRaised: 10, GoalAmount: 100},
		{ID: "y", AmountRaised: 0, GoalAmount: 100},
	}
	got := SelectFeatured(campaigns, 3)
	assert.Equal(t, []string{"x"}, ids(got))
	assert.Empty(t, SelectFeatured(nil, 3))
}

func TestComputeStats(t *testing.T) {
	campaigns := []domain.Campaign{{AmountRaised: 120.5}, {AmountRaised: 0}, {AmountRaised: 79.5}}
	donations := []domain.Donation{{Amount: 10}, {Amount: 25}, {Amount: 40}}

	stats := ComputeStats(campaigns, donations)
	assert.Equal(t, 200.0, stats.TotalRaised)
	assert.Equal(t, 3, stats.CampaignsCreated)
	assert.Equal(t, 3, stats.DonationsMade)
	assert.Equal(t, 75.0, stats.TotalDonated)
	assert.Equal(t, 25.0, stats.AverageDonation)
}

func TestComputeStatsWithoutDonations(t *testing.T) {
	stats := ComputeStats([]domain.Campaign{{AmountRaised: 10}}, nil)
	assert.Equal(t, 0, stats.DonationsMade)
	assert.Equal(t, 0.0, stats.AverageDonation)
	assert.False(t, math.IsNaN(stats.AverageDonation))
}

func TestComputeStatsIgnoresNonFinite(t *testing.T) {
	stats := ComputeStats([]domain.Campaign{{AmountRaised: math.NaN()}, {AmountRaised: 5}}, []domain.Donation{{Amount: math.Inf(1)}})
	assert.Equal(t, 5.0, stats.TotalRaised)
	assert.Equal(t, 0.0, stats.TotalDonated)
	assert.Equal(t, 1, stats.DonationsMade)
}

func TestViews(t *testing.T) {
	views := Views([]domain.Campaign{
		{ID: "1", GoalAmount: 100, AmountRaised: 30, EndDate: date(1), DonationCount: 1},
		{ID: "2", GoalAmount: 100, AmountRaised: 30, EndDate: date(-3)},
	}, now)
	require.Len(t, views, 2)

	assert.Equal(t, 30, views[0].ProgressPercent)
	assert.Equal(t, "1 day left", views[0].TimeRemaining)
	assert.Equal(t, domain.ActionUrgent, views[0].Action.Type)

	assert.Equal(t, "Ended", views[1].TimeRemaining)
	assert.Equal(t, domain.ActionEnded, views[1].Action.Type)
}

func ids(cs []domain.Campaign) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}
