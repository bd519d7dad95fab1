// internal/domain/cycle/preferences.go
package cycle

// ReminderToggles enables or disables individual reminder batteries.
type ReminderToggles struct {
	PeriodStart bool `json:"periodStart"`
	PeriodEnd   bool `json:"periodEnd"`
	Fertility   bool `json:"fertility"`
	Ovulation   bool `json:"ovulation"`
}

// Preferences holds the user's configurable cycle settings. Persisted as a
// single JSON document in the key-value store.
//
// Note: AverageCycleLength is currently NOT consulted by the predictor or the
// fertility math, which use fixed constants instead (see the prediction
// package). It is kept here because the settings surface exposes it.
type Preferences struct {
	AverageCycleLength  int             `json:"averageCycleLength"`
	AveragePeriodLength int             `json:"averagePeriodLength"`
	Notifications       bool            `json:"notifications"`
	Reminders           ReminderToggles `json:"reminders"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{
		AverageCycleLength:  28,
		AveragePeriodLength: 5,
		Notifications:       true,
		Reminders: ReminderToggles{
			PeriodStart: true,
			PeriodEnd:   true,
			Fertility:   true,
			Ovulation:   true,
		},
	}
}
