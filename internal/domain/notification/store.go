// internal/domain/notification/store.go
package notification

import "context"

// Store persists the pending-notification list as a whole. The list is
// unordered; uniqueness is by Notification.ID. Load on an empty store
// returns an empty slice, not an error.
//
// The read-modify-write cycle around Load/Save is not atomic across
// processes. A single application instance with one sweep trigger is
// assumed; multiple concurrent writers could redeliver or drop records.
type Store interface {
	Load(ctx context.Context) ([]Notification, error)
	Save(ctx context.Context, pending []Notification) error
}
