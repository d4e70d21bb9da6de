package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/popcorn/internal/domain"
)

// Keys used by the application
const (
	KeyWatched = "watched"
	KeyDark    = "dark"
)

// Cell is a typed value mirrored to a KV under one key.
// Every change is serialized as JSON and written before the setter returns.
type Cell[T any] struct {
	kv     domain.KV
	key    string
	logger *slog.Logger

	mu    sync.RWMutex
	value T
}

// NewCell reads key from kv, falling back to def when absent or unreadable.
// A fallback value is written back so the store always mirrors the cell.
func NewCell[T any](ctx context.Context, kv domain.KV, key string, def T, logger *slog.Logger) (*Cell[T], error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cell[T]{kv: kv, key: key, logger: logger, value: def}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if ok {
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			c.value = v
			return c, nil
		}
		logger.Warn("discarding unreadable stored value", "key", key, "error", err)
	}

	if err := c.write(ctx, def); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the current value
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value and persists it
func (c *Cell[T]) Set(ctx context.Context, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.write(ctx, v); err != nil {
		return err
	}
	c.value = v
	return nil
}

// Update applies fn to the current value and persists the result
func (c *Cell[T]) Update(ctx context.Context, fn func(T) T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := fn(c.value)
	if err := c.write(ctx, next); err != nil {
		return err
	}
	c.value = next
	return nil
}

func (c *Cell[T]) write(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.key, err)
	}
	c.logger.Debug("state persisted", "key", c.key, "bytes", len(data))
	return nil
}
