package storage

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"cycle_tracker_bot/internal/domain/cycle"
	"cycle_tracker_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNotificationStoreEmptyLoad(t *testing.T) {
	store := NewKVNotificationStore(NewMemoryKV())
	pending, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("fresh store should be empty, got %d", len(pending))
	}
}

func TestNotificationStoreRoundTrip(t *testing.T) {
	store := NewKVNotificationStore(NewMemoryKV())
	ctx := context.Background()

	in := []notification.Notification{{
		ID:            "abc",
		Title:         "Period Reminder",
		Body:          "body",
		ScheduledDate: time.Date(2024, time.March, 21, 9, 0, 0, 0, time.UTC),
		Type:          notification.TypePeriod,
		CreatedAt:     time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC),
	}}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("loaded %d records, want 1", len(out))
	}
	if out[0].ID != in[0].ID || out[0].Type != in[0].Type || !out[0].ScheduledDate.Equal(in[0].ScheduledDate) {
		t.Errorf("round trip mismatch: %+v vs %+v", out[0], in[0])
	}
}

func TestActivityLogNewestFirstAndCapped(t *testing.T) {
	log := NewKVActivityLog(NewMemoryKV(), quietLogger())
	ctx := context.Background()

	for i := 0; i < 105; i++ {
		log.Record(ctx, fmt.Sprintf("Action %d", i), "details")
	}

	entries, err := log.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 100 {
		t.Fatalf("log holds %d entries, want cap of 100", len(entries))
	}
	if entries[0].Action != "Action 104" {
		t.Errorf("newest entry = %q, want the most recent record first", entries[0].Action)
	}
	if entries[0].ID == "" {
		t.Error("entries should carry generated IDs")
	}
}

func TestPreferencesDefaultsWhenUnset(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())
	prefs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prefs != cycle.DefaultPreferences() {
		t.Errorf("unset preferences = %+v, want defaults", prefs)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	store := NewPreferencesStore(NewMemoryKV())
	ctx := context.Background()

	prefs := cycle.DefaultPreferences()
	prefs.AverageCycleLength = 31
	prefs.Reminders.Ovulation = false

	if err := store.Save(ctx, prefs); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != prefs {
		t.Errorf("round trip mismatch: %+v vs %+v", got, prefs)
	}
}
