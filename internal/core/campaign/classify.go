package campaign

import (
	"time"

	"github.com/campusfund/campusfund-api/internal/core/domain"
)

// Signals are the inputs of action classification.
type Signals struct {
	DaysRemaining   int
	ProgressPercent int
	DonationCount   int
}

// Rule maps a predicate over Signals to an action.
type Rule struct {
	Action  domain.ActionType
	Matches func(Signals) bool
}

// Rules is evaluated in order and the first match wins. The categories
// overlap, so the order is part of the contract. The last rule always matches.
var Rules = []Rule{
	{Action: domain.ActionEnded, Matches: func(s Signals) bool { return s.DaysRemaining < 0 }},
	{Action: domain.ActionUrgent, Matches: func(s Signals) bool { return s.DaysRemaining < 3 }},
	{Action: domain.ActionPromote, Matches: func(s Signals) bool { return s.ProgressPercent < 25 && s.DaysRemaining < 7 }},
	{Action: domain.ActionSuccess, Matches: func(s Signals) bool { return s.ProgressPercent >= 100 }},
	{Action: domain.ActionNew, Matches: func(s Signals) bool { return s.DonationCount == 0 }},
	{Action: domain.ActionActive, Matches: func(Signals) bool { return true }},
}

var actions = map[domain.ActionType]domain.Action{
	domain.ActionEnded:   {Type: domain.ActionEnded, Message: "Campaign ended", Color: domain.ColorNeutral},
	domain.ActionUrgent:  {Type: domain.ActionUrgent, Message: "Ending soon", Color: domain.ColorRed},
	domain.ActionPromote: {Type: domain.ActionPromote, Message: "Needs promotion", Color: domain.ColorOrange},
	domain.ActionSuccess: {Type: domain.ActionSuccess, Message: "Goal reached!", Color: domain.ColorGreen},
	domain.ActionNew:     {Type: domain.ActionNew, Message: "Share campaign", Color: domain.ColorBlue},
	domain.ActionActive:  {Type: domain.ActionActive, Message: "Active", Color: domain.ColorGreen},
}

// Describe returns the static message and color for an action type.
func Describe(t domain.ActionType) domain.Action {
	return actions[t]
}

// Classify returns the action of the first matching rule.
func Classify(s Signals) domain.Action {
	for _, r := range Rules {
		if r.Matches(s) {
			return Describe(r.Action)
		}
	}
	return Describe(domain.ActionActive)
}

// SignalsFor derives classification signals from a campaign at now.
func SignalsFor(c domain.Campaign, now time.Time) Signals {
	return Signals{
		DaysRemaining:   DaysRemaining(c.EndDate, now),
		ProgressPercent: ComputeProgress(c.AmountRaised, c.GoalAmount),
		DonationCount:   c.DonationCount,
	}
}

// ClassifyAction returns the recommended owner action for a campaign at now.
func ClassifyAction(c domain.Campaign, now time.Time) domain.Action {
	return Classify(SignalsFor(c, now))
}
