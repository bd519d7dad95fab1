// internal/domain/notification/notification.go
package notification

import "time"

// Type categorizes a scheduled notification.
type Type string

const (
	TypePeriod     Type = "period"
	TypeFertility  Type = "fertility"
	TypeOvulation  Type = "ovulation"
	TypeReminder   Type = "reminder"
	TypePrecaution Type = "precaution"
)

// Notification is one pending reminder. Records are immutable once
// scheduled; the dispatcher removes them after a successful delivery,
// it never updates them in place.
type Notification struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Type          Type      `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Due reports whether the notification's trigger time has passed at now.
func (n Notification) Due(now time.Time) bool {
	return !n.ScheduledDate.After(now)
}
