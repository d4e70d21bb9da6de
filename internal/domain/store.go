package domain

import "context"

// KV is a durable string key-value store.
// Get reports ok=false when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
