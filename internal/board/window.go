// Package board holds the pure scheduling-board core: calendar window
// generation, order bucketing by planned date, and the pending-move state
// machine. Everything here is deterministic and side-effect free; persistence
// and reloads live in the service layer.
package board

import (
	"time"

	"github.com/dkozlov/orderboard/internal/dates"
	"github.com/dkozlov/orderboard/internal/domain"
)

// windowLookback is how many days before today the window always covers.
const windowLookback = 5

// Window computes the ordered sequence of visible workdays for the given
// order set. The window spans from today-5 through one day past the latest
// planned date (at least today+1), excluding Sundays. The end is advanced
// past Sundays so the window never terminates on an excluded day.
//
// Orders whose planned date is empty or unparsable do not contribute to the
// end of the window. The result is a pure function of its inputs and is safe
// to recompute on every change.
func Window(today time.Time, orders []domain.Order) []time.Time {
	today = dates.Midnight(today)
	start := today.AddDate(0, 0, -windowLookback)

	maxPlanned := today
	for _, o := range orders {
		planned, err := dates.ParseKey(o.PlannedDate)
		if err != nil {
			continue
		}
		if planned.After(maxPlanned) {
			maxPlanned = planned
		}
	}

	end := maxPlanned.AddDate(0, 0, 1)
	for end.Weekday() == time.Sunday {
		end = end.AddDate(0, 0, 1)
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
