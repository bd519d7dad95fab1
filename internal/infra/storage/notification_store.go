// internal/infra/storage/notification_store.go
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"cycle_tracker_bot/internal/domain/notification"
	dstorage "cycle_tracker_bot/internal/domain/storage"
)

// PendingNotificationsKey is the key-value entry holding the serialized
// pending-notification list.
const PendingNotificationsKey = "scheduled_notifications"

// KVNotificationStore implements notification.Store by serializing the
// whole pending list as one JSON document in a key-value store.
type KVNotificationStore struct {
	kv dstorage.KeyValue
}

func NewKVNotificationStore(kv dstorage.KeyValue) *KVNotificationStore {
	return &KVNotificationStore{kv: kv}
}

func (s *KVNotificationStore) Load(ctx context.Context) ([]notification.Notification, error) {
	raw, ok, err := s.kv.Get(ctx, PendingNotificationsKey)
	if err != nil {
		return nil, fmt.Errorf("error loading pending notifications: %w", err)
	}
	if !ok || raw == "" {
		return []notification.Notification{}, nil
	}

	var pending []notification.Notification
	if err := json.Unmarshal([]byte(raw), &pending); err != nil {
		return nil, fmt.Errorf("error decoding pending notifications: %w", err)
	}
	return pending, nil
}

func (s *KVNotificationStore) Save(ctx context.Context, pending []notification.Notification) error {
	if pending == nil {
		pending = []notification.Notification{}
	}
	raw, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("error encoding pending notifications: %w", err)
	}
	if err := s.kv.Set(ctx, PendingNotificationsKey, string(raw)); err != nil {
		return fmt.Errorf("error saving pending notifications: %w", err)
	}
	return nil
}
