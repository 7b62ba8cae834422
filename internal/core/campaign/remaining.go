package campaign

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// Deadline is the instant a campaign stops accepting donations: the end of
// its end date, in the end date's location.
func Deadline(endDate time.Time) time.Time {
	y, m, d := endDate.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, endDate.Location())
}

// DaysRemaining returns the number of whole days between now and the
// campaign deadline, rounded down. Negative values mean the campaign has
// ended. A missing end date counts as ended.
func DaysRemaining(endDate, now time.Time) int {
	if endDate.IsZero() {
		return -1
	}
	left := Deadline(endDate).Sub(now)
	return int(math.Floor(float64(left) / float64(day)))
}

// TimeRemainingLabel renders the remaining time for display.
func TimeRemainingLabel(endDate, now time.Time) string {
	days := DaysRemaining(endDate, now)
	switch {
	case days < 0:
		return "Ended"
	case days == 0:
		return "Last day"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
