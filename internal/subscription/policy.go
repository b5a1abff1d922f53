package subscription

import (
	"math"
	"time"
)

// StateOf derives the billing state from the latest subscription of a gym.
// The end date wins over the stored status: a row still marked active or
// cancelled whose end date has passed is expired.
func StateOf(sub *Subscription, now time.Time) State {
	if sub == nil {
		return StateUnpaid
	}
	if sub.Status == StatusExpired || now.After(sub.EndDate) {
		return StateExpired
	}
	if sub.Status == StatusCancelled {
		return StateCancelledPendingExpiry
	}
	return StateActive
}

// DaysRemaining rounds up, so the last partial day still counts.
func DaysRemaining(sub *Subscription, now time.Time) int {
	if sub == nil || !now.Before(sub.EndDate) {
		return 0
	}
	return int(math.Ceil(sub.EndDate.Sub(now).Hours() / 24))
}
