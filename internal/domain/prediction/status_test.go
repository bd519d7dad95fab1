package prediction

import (
	"testing"
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
)

func historyOnePeriod() []cycle.PeriodEntry {
	return []cycle.PeriodEntry{{
		StartDate: day(2024, time.February, 10),
		EndDate:   day(2024, time.February, 14),
	}}
}

func TestClassifyPeriodDays(t *testing.T) {
	periods := historyOnePeriod()

	for _, d := range []time.Time{
		day(2024, time.February, 10), // start boundary
		day(2024, time.February, 12),
		day(2024, time.February, 14), // end boundary
	} {
		if s := Classify(d, periods, time.Time{}, false); !s.IsPeriod {
			t.Errorf("%v should be a period day", d)
		}
	}
	if s := Classify(day(2024, time.February, 15), periods, time.Time{}, false); s.IsPeriod {
		t.Error("day after period end should not be a period day")
	}
}

func TestClassifyNoPredictionNoPredictiveFlags(t *testing.T) {
	s := Classify(day(2024, time.March, 7), historyOnePeriod(), time.Time{}, false)
	if s.IsFertile || s.IsOvulation || s.IsPredictedPeriod {
		t.Errorf("predictive flags should all be false without a prediction: %+v", s)
	}
}

func TestClassifyOvulationImpliesFertile(t *testing.T) {
	next := day(2024, time.March, 21)
	ovulation := day(2024, time.March, 7)

	s := Classify(ovulation, nil, next, true)
	if !s.IsOvulation {
		t.Error("ovulation day should be flagged")
	}
	if !s.IsFertile {
		t.Error("ovulation day closes the fertility window, so it must also be fertile")
	}
}

func TestClassifyPredictedPeriodSpan(t *testing.T) {
	next := day(2024, time.March, 21)

	for _, d := range []time.Time{next, AddDays(next, 3), AddDays(next, 5)} {
		if s := Classify(d, nil, next, true); !s.IsPredictedPeriod {
			t.Errorf("%v should be inside the predicted period span", d)
		}
	}
	if s := Classify(AddDays(next, 6), nil, next, true); s.IsPredictedPeriod {
		t.Error("day past the fixed 5-day span should not be flagged")
	}
	if s := Classify(SubDays(next, 1), nil, next, true); s.IsPredictedPeriod {
		t.Error("day before the predicted start should not be flagged")
	}
}

func TestClassifyFlagsAreIndependent(t *testing.T) {
	// History placed so a logged period day coincides with the forecast
	// ovulation day: both flags hold at once.
	periods := []cycle.PeriodEntry{{
		StartDate: day(2024, time.March, 5),
		EndDate:   day(2024, time.March, 9),
	}}
	next := day(2024, time.March, 21) // ovulation 2024-03-07

	s := Classify(day(2024, time.March, 7), periods, next, true)
	if !s.IsPeriod || !s.IsOvulation {
		t.Errorf("expected simultaneous period and ovulation flags, got %+v", s)
	}
}
