// internal/domain/prediction/status.go
package prediction

import (
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
)

// predictedPeriodSpanDays is the fixed length (in days past the predicted
// start, inclusive) of the predicted-period highlight. Not wired to the
// user's averagePeriodLength preference.
const predictedPeriodSpanDays = 5

// Status classifies a single calendar date against history and forecast.
// The flags are independent: a date can be both in a logged period and on
// the forecast ovulation day. Which flag wins visually is up to the caller.
type Status struct {
	IsPeriod          bool
	IsFertile         bool
	IsOvulation       bool
	IsPredictedPeriod bool
}

// Classify computes the status of date given logged periods and the
// predicted next period start. hasPrediction=false leaves all predictive
// flags unset.
func Classify(date time.Time, periods []cycle.PeriodEntry, nextPeriod time.Time, hasPrediction bool) Status {
	var s Status

	for _, p := range periods {
		if IsWithinInclusive(date, p.StartDate, p.EndDate) {
			s.IsPeriod = true
			break
		}
	}

	if !hasPrediction {
		return s
	}

	w := FertilityWindow(nextPeriod, DefaultCycleLength)
	s.IsFertile = IsWithinInclusive(date, w.Start, w.End)
	s.IsOvulation = IsSameDay(date, w.Ovulation)
	s.IsPredictedPeriod = IsWithinInclusive(date, nextPeriod, AddDays(nextPeriod, predictedPeriodSpanDays))

	return s
}
