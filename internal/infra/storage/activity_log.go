// internal/infra/storage/activity_log.go
package storage

import (
	"context"
	"encoding/json"
	"time"

	"cycle_tracker_bot/internal/domain/activity"
	dstorage "cycle_tracker_bot/internal/domain/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ActivityLogKey is the key-value entry holding the serialized activity log.
const ActivityLogKey = "activity_logs"

// maxActivityLogEntries caps the stored log, newest first.
const maxActivityLogEntries = 100

// KVActivityLog implements activity.Sink over a key-value store. Writes
// are best-effort: failures are logged and swallowed so recording never
// blocks or fails the operation being recorded.
type KVActivityLog struct {
	kv     dstorage.KeyValue
	logger *logrus.Logger
}

func NewKVActivityLog(kv dstorage.KeyValue, logger *logrus.Logger) *KVActivityLog {
	return &KVActivityLog{kv: kv, logger: logger}
}

func (l *KVActivityLog) Record(ctx context.Context, action, details string) {
	entry := activity.Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	}

	entries, err := l.load(ctx)
	if err != nil {
		l.logger.WithError(err).Warn("activity log read failed, dropping entry")
		return
	}

	entries = append([]activity.Entry{entry}, entries...)
	if len(entries) > maxActivityLogEntries {
		entries = entries[:maxActivityLogEntries]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		l.logger.WithError(err).Warn("activity log encode failed, dropping entry")
		return
	}
	if err := l.kv.Set(ctx, ActivityLogKey, string(raw)); err != nil {
		l.logger.WithError(err).Warn("activity log write failed, dropping entry")
		return
	}

	l.logger.WithFields(logrus.Fields{"action": action, "details": details}).Debug("activity recorded")
}

// List returns the stored activity log, newest first.
func (l *KVActivityLog) List(ctx context.Context) ([]activity.Entry, error) {
	return l.load(ctx)
}

func (l *KVActivityLog) load(ctx context.Context) ([]activity.Entry, error) {
	raw, ok, err := l.kv.Get(ctx, ActivityLogKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []activity.Entry{}, nil
	}
	var entries []activity.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
