// internal/domain/notification/planner.go
package notification

import (
	"fmt"
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
	"cycle_tracker_bot/internal/domain/prediction"
)

// The planner turns a forecast into reminder batteries as plain data.
// It performs no I/O and assigns no identity: IDs and CreatedAt are
// stamped by the scheduling service when a record is persisted.

const displayDateLayout = "Jan 2, 2006"

// pmsLeadDays is how many days before the predicted period the PMS
// heads-up fires.
const pmsLeadDays = 7

// insightDelayDays is how long after the most recent period's end the
// cycle-insight notification fires.
const insightDelayDays = 7

// Deviation thresholds for the cycle-consistency insight. An average
// deviation at or below regularMaxDeviation reads as "very regular",
// at or below moderateMaxDeviation as "moderate variability", anything
// larger as significant.
const (
	regularMaxDeviation  = 2.0
	moderateMaxDeviation = 5.0
)

// PlanPeriodReminders builds the five-entry battery around a predicted
// period start: two precautions (-5d, -1d), two start reminders (-3d, 0d)
// and an end-of-period check-in at +(periodLength-1)d.
func PlanPeriodReminders(predictedDate time.Time, periodLength int) []Notification {
	display := predictedDate.Format(displayDateLayout)

	return []Notification{
		{
			Title:         "Period Coming Soon",
			Body:          fmt.Sprintf("Your next period is expected to begin in 5 days, on %s. Consider stocking up on supplies.", display),
			ScheduledDate: prediction.SubDays(predictedDate, 5),
			Type:          TypePrecaution,
		},
		{
			Title:         "Period Reminder",
			Body:          fmt.Sprintf("Your next period is expected to start in 3 days, on %s. Prepare your essentials.", display),
			ScheduledDate: prediction.SubDays(predictedDate, 3),
			Type:          TypePeriod,
		},
		{
			Title:         "Period Starting Tomorrow",
			Body:          "Your period is expected to start tomorrow. Here are some self-care tips: rest well, stay hydrated, and have pain relief on hand if needed.",
			ScheduledDate: prediction.SubDays(predictedDate, 1),
			Type:          TypePrecaution,
		},
		{
			Title:         "Period Expected Today",
			Body:          "Your period is expected to start today. Remember to track your symptoms for better future predictions.",
			ScheduledDate: prediction.StartOfDay(predictedDate),
			Type:          TypePeriod,
		},
		{
			Title:         "Period Expected to End",
			Body:          "Based on your cycle history, your period is expected to end today. How are you feeling?",
			ScheduledDate: prediction.AddDays(predictedDate, periodLength-1),
			Type:          TypePeriod,
		},
	}
}

// PlanOvulationReminders builds the four-entry fertility battery: window
// opening, approaching peak (-2d), ovulation eve (-1d) and ovulation day.
func PlanOvulationReminders(ovulationDate, fertilityWindowStart time.Time) []Notification {
	return []Notification{
		{
			Title:         "Fertility Window Beginning",
			Body:          "Your fertility window is beginning. If you're trying to conceive, this is a good time to plan.",
			ScheduledDate: prediction.StartOfDay(fertilityWindowStart),
			Type:          TypeFertility,
		},
		{
			Title:         "Approaching Peak Fertility",
			Body:          "You're approaching your most fertile day. Track any changes in cervical mucus which may become clearer and more stretchy.",
			ScheduledDate: prediction.SubDays(ovulationDate, 2),
			Type:          TypeFertility,
		},
		{
			Title:         "Ovulation Reminder",
			Body:          fmt.Sprintf("You are expected to ovulate tomorrow, on %s. This is your peak fertility day if you're trying to conceive.", ovulationDate.Format(displayDateLayout)),
			ScheduledDate: prediction.SubDays(ovulationDate, 1),
			Type:          TypeOvulation,
		},
		{
			Title:         "Ovulation Day",
			Body:          "Today is your estimated ovulation day. You may experience a slight increase in basal body temperature or mild cramping.",
			ScheduledDate: prediction.StartOfDay(ovulationDate),
			Type:          TypeOvulation,
		},
	}
}

// PlanPMSReminder builds the single PMS heads-up a week before the
// predicted period.
func PlanPMSReminder(predictedDate time.Time) []Notification {
	return []Notification{
		{
			Title:         "PMS May Begin Soon",
			Body:          "PMS symptoms may begin soon. Consider these tips: regular exercise, stress management, and reducing caffeine and salt intake can help ease symptoms.",
			ScheduledDate: prediction.SubDays(predictedDate, pmsLeadDays),
			Type:          TypePrecaution,
		},
	}
}

// PlanCycleInsight builds the cycle-consistency insight, or nothing when
// history is shorter than three periods. The insight is scheduled a week
// after the most recent period ends.
func PlanCycleInsight(periods []cycle.PeriodEntry) []Notification {
	if len(periods) < 3 {
		return nil
	}

	deviations := prediction.CycleDeviations(periods)
	if len(deviations) == 0 {
		return nil
	}

	sum := 0
	for _, d := range deviations {
		sum += d
	}
	avgDeviation := float64(sum) / float64(len(deviations))
	rounded := int(avgDeviation + 0.5)

	var body string
	switch {
	case avgDeviation <= regularMaxDeviation:
		body = fmt.Sprintf("Your cycles are very regular (varying by ~%d days). Your predictions should be quite accurate.", rounded)
	case avgDeviation <= moderateMaxDeviation:
		body = fmt.Sprintf("Your cycles have moderate variability (averaging ~%d days difference). Consider tracking additional factors like stress and exercise that may influence cycle length.", rounded)
	default:
		body = fmt.Sprintf("Your cycles show significant variability (averaging ~%d days difference). Consider consulting with a healthcare provider if this is unusual for you.", rounded)
	}

	mostRecent := periods[0]
	for _, p := range periods[1:] {
		if p.StartDate.After(mostRecent.StartDate) {
			mostRecent = p
		}
	}

	return []Notification{
		{
			Title:         "Your Cycle Insights",
			Body:          body,
			ScheduledDate: prediction.AddDays(mostRecent.EndDate, insightDelayDays),
			Type:          TypeReminder,
		},
	}
}
