// Package campaign computes the display state of fundraising campaigns:
// funding progress, time remaining, the recommended owner action, the
// featured subset and the owner's statistics.
//
// Every function here is pure and safe for concurrent use. Malformed input
// degrades to documented defaults instead of failing.
package campaign

import "math"

// ComputeProgress returns the funded percentage rounded to the nearest
// integer and clamped to [0, 100]. It returns 0 when goalAmount is zero,
// negative or not a number.
func ComputeProgress(amountRaised, goalAmount float64) int {
	if !(goalAmount > 0) {
		return 0
	}

	pct := amountRaised * 100 / goalAmount
	switch {
	case math.IsNaN(pct), pct <= 0:
		return 0
	case pct >= 100:
		return 100
	}
	return int(math.Round(pct))
}
