package prediction

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateValid(t *testing.T) {
	got, err := ParseDate("2024-03-21")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(day(2024, time.March, 21)) {
		t.Errorf("ParseDate = %v, want 2024-03-21", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "21/03/2024"} {
		_, err := ParseDate(s)
		if err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestDaysBetweenSigned(t *testing.T) {
	a := day(2024, time.January, 1)
	b := day(2024, time.February, 10)
	if got := DaysBetween(a, b); got != 40 {
		t.Errorf("DaysBetween(a, b) = %d, want 40", got)
	}
	if got := DaysBetween(b, a); got != -40 {
		t.Errorf("DaysBetween(b, a) = %d, want -40", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween(a, a) = %d, want 0", got)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween across midnight = %d, want 1", got)
	}
}

func TestAddSubDays(t *testing.T) {
	d := day(2024, time.February, 28)
	if got := AddDays(d, 1); !got.Equal(day(2024, time.February, 29)) {
		t.Errorf("AddDays leap day = %v", got)
	}
	if got := AddDays(d, 0); !got.Equal(d) {
		t.Errorf("AddDays zero = %v", got)
	}
	if got := AddDays(d, -28); !got.Equal(day(2024, time.January, 31)) {
		t.Errorf("AddDays negative = %v", got)
	}
	if got := SubDays(day(2024, time.March, 7), 5); !got.Equal(day(2024, time.March, 2)) {
		t.Errorf("SubDays = %v, want 2024-03-02", got)
	}
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2024, time.March, 7, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.March, 7, 22, 30, 0, 0, time.UTC)
	if !IsSameDay(a, b) {
		t.Error("same calendar day with different times should match")
	}
	if IsSameDay(a, AddDays(a, 1)) {
		t.Error("different days should not match")
	}
}

func TestIsWithinInclusive(t *testing.T) {
	start := day(2024, time.March, 2)
	end := day(2024, time.March, 7)

	if !IsWithinInclusive(start, start, end) {
		t.Error("start boundary should be inside")
	}
	if !IsWithinInclusive(end, start, end) {
		t.Error("end boundary should be inside")
	}
	if !IsWithinInclusive(day(2024, time.March, 5), start, end) {
		t.Error("interior day should be inside")
	}
	if IsWithinInclusive(day(2024, time.March, 1), start, end) {
		t.Error("day before start should be outside")
	}
	if IsWithinInclusive(day(2024, time.March, 8), start, end) {
		t.Error("day after end should be outside")
	}
	// Time of day must not push a boundary day out.
	if !IsWithinInclusive(time.Date(2024, time.March, 7, 23, 0, 0, 0, time.UTC), start, end) {
		t.Error("late time on the end day should still be inside")
	}
}
