package prediction

import (
	"testing"
	"time"
)

func TestFertilityWindow(t *testing.T) {
	w := FertilityWindow(day(2024, time.March, 21), DefaultCycleLength)

	if want := day(2024, time.March, 7); !w.Ovulation.Equal(want) {
		t.Errorf("Ovulation = %v, want %v", w.Ovulation, want)
	}
	if want := day(2024, time.March, 2); !w.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", w.Start, want)
	}
	if want := day(2024, time.March, 7); !w.End.Equal(want) {
		t.Errorf("End = %v, want %v", w.End, want)
	}
}

func TestFertilityWindowEndEqualsOvulation(t *testing.T) {
	w := FertilityWindow(day(2025, time.July, 1), DefaultCycleLength)
	if !w.End.Equal(w.Ovulation) {
		t.Errorf("End %v should equal Ovulation %v", w.End, w.Ovulation)
	}
	if got := DaysBetween(w.Start, w.End); got != 5 {
		t.Errorf("window spans %d day gaps, want 5 (six inclusive days)", got)
	}
}

func TestFertilityWindowIgnoresCycleLengthParam(t *testing.T) {
	// The luteal-phase constant alone positions ovulation; the cycle
	// length argument is deliberately inert.
	next := day(2024, time.March, 21)
	a := FertilityWindow(next, 28)
	b := FertilityWindow(next, 35)
	if !a.Ovulation.Equal(b.Ovulation) || !a.Start.Equal(b.Start) || !a.End.Equal(b.End) {
		t.Errorf("window changed with cycle length: %+v vs %+v", a, b)
	}
}
