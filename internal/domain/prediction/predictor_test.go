package prediction

import (
	"testing"
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
)

func periodStarting(start time.Time) cycle.PeriodEntry {
	return cycle.PeriodEntry{StartDate: start, EndDate: AddDays(start, 4)}
}

func periodsFrom(starts ...time.Time) []cycle.PeriodEntry {
	entries := make([]cycle.PeriodEntry, 0, len(starts))
	for _, s := range starts {
		entries = append(entries, periodStarting(s))
	}
	return entries
}

func TestPredictNextPeriodEmptyHistory(t *testing.T) {
	_, ok := PredictNextPeriod(nil)
	if ok {
		t.Error("empty history should yield no prediction")
	}
}

func TestPredictNextPeriodSingleEntry(t *testing.T) {
	start := day(2024, time.January, 1)
	got, ok := PredictNextPeriod(periodsFrom(start))
	if !ok {
		t.Fatal("single entry should yield a prediction")
	}
	want := day(2024, time.January, 29) // start + 28
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodAveragesGaps(t *testing.T) {
	// Gap of 40 days: inside the (0, 60) filter, so it drives the average.
	got, ok := PredictNextPeriod(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.February, 10),
	))
	if !ok {
		t.Fatal("expected a prediction")
	}
	want := day(2024, time.March, 21) // 2024-02-10 + 40
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodRoundsAverage(t *testing.T) {
	// Gaps 29 and 30 average to 29.5, which rounds to 30.
	got, ok := PredictNextPeriod(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.January, 30),
		day(2024, time.February, 29),
	))
	if !ok {
		t.Fatal("expected a prediction")
	}
	want := day(2024, time.March, 30)
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodDiscardsAnomalousGaps(t *testing.T) {
	// 70-day gap is discarded; the surviving 28-day gap drives the average.
	got, ok := PredictNextPeriod(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.March, 11), // 70 days later
		day(2024, time.April, 8),  // 28 days later
	))
	if !ok {
		t.Fatal("expected a prediction")
	}
	want := day(2024, time.May, 6) // 2024-04-08 + 28
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodFallbackWhenAllGapsAnomalous(t *testing.T) {
	// The only gap is 70 days, outside (0, 60): fall back to 28.
	got, ok := PredictNextPeriod(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.March, 11),
	))
	if !ok {
		t.Fatal("expected a prediction")
	}
	want := AddDays(day(2024, time.March, 11), 28)
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodZeroGapDiscarded(t *testing.T) {
	// Two entries on the same day produce a zero gap, outside the open
	// interval, so the fallback applies.
	got, ok := PredictNextPeriod(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.January, 1),
	))
	if !ok {
		t.Fatal("expected a prediction")
	}
	want := day(2024, time.January, 29)
	if !got.Equal(want) {
		t.Errorf("prediction = %v, want %v", got, want)
	}
}

func TestPredictNextPeriodNeverBeforeMostRecentStart(t *testing.T) {
	histories := [][]cycle.PeriodEntry{
		periodsFrom(day(2024, time.January, 1)),
		periodsFrom(day(2024, time.January, 1), day(2024, time.February, 10)),
		periodsFrom(day(2024, time.January, 1), day(2024, time.March, 11)),
		periodsFrom(day(2023, time.November, 1), day(2023, time.December, 1), day(2024, time.January, 1)),
	}
	for i, periods := range histories {
		got, ok := PredictNextPeriod(periods)
		if !ok {
			t.Fatalf("history %d: expected a prediction", i)
		}
		mostRecent := periods[0].StartDate
		for _, p := range periods {
			if p.StartDate.After(mostRecent) {
				mostRecent = p.StartDate
			}
		}
		if got.Before(mostRecent) {
			t.Errorf("history %d: prediction %v before most recent start %v", i, got, mostRecent)
		}
	}
}

func TestPredictNextPeriodInputOrderIrrelevant(t *testing.T) {
	a, _ := PredictNextPeriod(periodsFrom(day(2024, time.January, 1), day(2024, time.February, 10)))
	b, _ := PredictNextPeriod(periodsFrom(day(2024, time.February, 10), day(2024, time.January, 1)))
	if !a.Equal(b) {
		t.Errorf("prediction depends on input order: %v vs %v", a, b)
	}
}

func TestCycleDeviationsTooShort(t *testing.T) {
	if got := CycleDeviations(periodsFrom(day(2024, time.January, 1), day(2024, time.January, 29))); got != nil {
		t.Errorf("fewer than 3 periods should yield nil, got %v", got)
	}
}

func TestCycleDeviationsFirstPairSeedsItself(t *testing.T) {
	// Cycle lengths newest-first: 30, 28. First deviation is seeded with
	// itself (always 0), second is |28-30| = 2.
	got := CycleDeviations(periodsFrom(
		day(2024, time.January, 1),
		day(2024, time.January, 29), // 28 later
		day(2024, time.February, 28), // 30 later
	))
	if len(got) != 2 {
		t.Fatalf("deviations = %v, want length 2", got)
	}
	if got[0] != 0 {
		t.Errorf("first deviation = %d, want 0 (self-seeded)", got[0])
	}
	if got[1] != 2 {
		t.Errorf("second deviation = %d, want 2", got[1])
	}
}
