// internal/infra/storage/preferences.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"cycle_tracker_bot/internal/domain/cycle"
	dstorage "cycle_tracker_bot/internal/domain/storage"
)

// PreferencesKey is the key-value entry holding the user's settings.
const PreferencesKey = "user_preferences"

// PreferencesStore persists the single user's cycle preferences as one
// JSON document.
type PreferencesStore struct {
	kv dstorage.KeyValue
}

func NewPreferencesStore(kv dstorage.KeyValue) *PreferencesStore {
	return &PreferencesStore{kv: kv}
}

// Load returns the stored preferences, or the defaults when none were
// ever saved.
func (s *PreferencesStore) Load(ctx context.Context) (cycle.Preferences, error) {
	raw, ok, err := s.kv.Get(ctx, PreferencesKey)
	if err != nil {
		return cycle.Preferences{}, fmt.Errorf("error loading preferences: %w", err)
	}
	if !ok || raw == "" {
		return cycle.DefaultPreferences(), nil
	}

	var prefs cycle.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return cycle.Preferences{}, fmt.Errorf("error decoding preferences: %w", err)
	}
	return prefs, nil
}

func (s *PreferencesStore) Save(ctx context.Context, prefs cycle.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}
	if err := s.kv.Set(ctx, PreferencesKey, string(raw)); err != nil {
		return fmt.Errorf("error saving preferences: %w", err)
	}
	return nil
}
