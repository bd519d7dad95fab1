// internal/domain/prediction/predictor.go
package prediction

import (
	"math"
	"sort"
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
)

const (
	// DefaultCycleLength is the hard-coded fallback cycle length, used when
	// history is too thin or too noisy to average. It is intentionally not
	// wired to the user's configured averageCycleLength preference.
	DefaultCycleLength = 28

	// maxPlausibleGap bounds the open interval (0, maxPlausibleGap) of
	// cycle gaps accepted into the average. Gaps outside it are treated as
	// data-entry anomalies (e.g. a period logged twice, or months of
	// missing history) and discarded.
	maxPlausibleGap = 60
)

// PredictNextPeriod estimates the start date of the next period from logged
// history. The second return value is false when no prediction is possible
// (empty history).
//
// With a single entry the estimate is start + DefaultCycleLength. With two
// or more, the gaps between consecutive start dates are averaged (anomalous
// gaps discarded) and the rounded average is added to the most recent start.
func PredictNextPeriod(periods []cycle.PeriodEntry) (time.Time, bool) {
	if len(periods) == 0 {
		return time.Time{}, false
	}

	sorted := sortByStartDesc(periods)
	mostRecent := StartOfDay(sorted[0].StartDate)

	if len(sorted) == 1 {
		return AddDays(mostRecent, DefaultCycleLength), true
	}

	totalGapDays := 0
	gapCount := 0
	for i := 0; i < len(sorted)-1; i++ {
		gap := DaysBetween(sorted[i+1].StartDate, sorted[i].StartDate)
		if gap > 0 && gap < maxPlausibleGap {
			totalGapDays += gap
			gapCount++
		}
	}

	avgCycleLength := DefaultCycleLength
	if gapCount > 0 {
		avgCycleLength = int(math.Round(float64(totalGapDays) / float64(gapCount)))
	}

	return AddDays(mostRecent, avgCycleLength), true
}

// CycleDeviations returns the absolute differences between consecutive
// cycle lengths, newest first. The first pair has no predecessor and is
// seeded with its own length, so the first deviation is always zero.
// Returns nil when fewer than two cycle lengths exist.
func CycleDeviations(periods []cycle.PeriodEntry) []int {
	sorted := sortByStartDesc(periods)
	if len(sorted) < 3 {
		return nil
	}

	deviations := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		current := DaysBetween(sorted[i].StartDate, sorted[i-1].StartDate)
		previous := current
		if i > 1 {
			previous = DaysBetween(sorted[i-1].StartDate, sorted[i-2].StartDate)
		}
		deviations = append(deviations, abs(current-previous))
	}
	return deviations
}

// sortByStartDesc returns a copy of periods ordered by start date, most
// recent first. The sort is stable so entries sharing a start date keep
// their insertion order.
func sortByStartDesc(periods []cycle.PeriodEntry) []cycle.PeriodEntry {
	sorted := make([]cycle.PeriodEntry, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
