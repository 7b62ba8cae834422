package domain

// ActionType is the recommended next step for a campaign owner.
type ActionType string

const (
	ActionEnded   ActionType = "ended"
	ActionUrgent  ActionType = "urgent"
	ActionPromote ActionType = "promote"
	ActionSuccess ActionType = "success"
	ActionNew     ActionType = "new"
	ActionActive  ActionType = "active"
)

// ActionColor is the display tag attached to an action.
type ActionColor string

const (
	ColorNeutral ActionColor = "gray"
	ColorRed     ActionColor = "red"
	ColorOrange  ActionColor = "orange"
	ColorGreen   ActionColor = "green"
	ColorBlue    ActionColor = "blue"
)

// Action is an action label with its static message and color.
type Action struct {
	Type    ActionType  `json:"type"`
	Message string      `json:"message"`
	Color   ActionColor `json:"color"`
}

// CampaignView is a campaign plus its derived, never persisted display state.
type CampaignView struct {
	Campaign
	ProgressPercent int    `json:"progress_percent"`
	DaysRemaining   int    `json:"days_remaining"`
	TimeRemaining   string `json:"time_remaining"`
	Action          Action `json:"action"`
}

// DashboardStats summarizes a user's fundraising activity.
type DashboardStats struct {
	TotalRaised      float64 `json:"total_raised"`
	CampaignsCreated int     `json:"campaigns_created"`
	DonationsMade    int     `json:"donations_made"`
	TotalDonated     float64 `json:"total_donated"`
	AverageDonation  float64 `json:"average_donation"`
}

// Dashboard is the owner's overview.
type Dashboard struct {
	Profile         *Profile       `json:"profile,omitempty"`
	Active          []CampaignView `json:"active"`
	Past            []CampaignView `json:"past"`
	RecentDonations []Donation     `json:"recent_donations"`
	Stats           DashboardStats `json:"stats"`
}
