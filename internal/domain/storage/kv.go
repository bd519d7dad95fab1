// internal/domain/storage/kv.go
package storage

import "context"

// KeyValue is the minimal persistence primitive the application requires:
// whole-value get and set of opaque strings by key. No transactions, no
// TTLs. The only contract is round-trip fidelity: Get after Set returns
// the same value.
type KeyValue interface {
	// Get returns the stored value and true, or ("", false, nil) when the
	// key has never been set.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
