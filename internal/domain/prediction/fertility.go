// internal/domain/prediction/fertility.go
package prediction

import "time"

const (
	// LutealPhaseDays is the assumed fixed length of the luteal phase:
	// ovulation is placed this many days before the predicted period.
	LutealPhaseDays = 14

	// fertilityWindowLeadDays is how many days before ovulation the
	// fertility window opens. The window closes on ovulation day itself,
	// giving an inclusive six-day span.
	fertilityWindowLeadDays = 5
)

// Window is a derived fertility forecast. Start and End are inclusive;
// End always equals Ovulation.
type Window struct {
	Start     time.Time
	End       time.Time
	Ovulation time.Time
}

// FertilityWindow derives the fertility window and ovulation day from a
// predicted period start date.
//
// avgCycleLength is accepted for interface compatibility with the settings
// surface but does not participate in the offset: the luteal-phase constant
// alone positions ovulation. Do not "fix" this silently; the calendar and
// reminder features depend on the current behavior.
func FertilityWindow(nextPeriod time.Time, avgCycleLength int) Window {
	_ = avgCycleLength

	ovulation := SubDays(nextPeriod, LutealPhaseDays)
	return Window{
		Start:     SubDays(ovulation, fertilityWindowLeadDays),
		End:       ovulation,
		Ovulation: ovulation,
	}
}
