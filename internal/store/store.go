// Package store provides durable key-value backends and the typed Cell
// that mirrors application state into them.
package store

import (
	"fmt"
	"path/filepath"

	"github.com/mmcdole/popcorn/internal/domain"
)

// Driver names accepted by Open
const (
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config selects and configures a backend
type Config struct {
	Driver        string
	Dir           string // data directory for file-backed drivers
	DSN           string // postgres connection string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Open returns the backend named by cfg.Driver
func Open(cfg Config) (domain.KV, error) {
	switch cfg.Driver {
	case DriverBolt, "":
		return NewBoltStore(filepath.Join(cfg.Dir, "popcorn.db"))
	case DriverSQLite:
		return NewSQLiteStore(filepath.Join(cfg.Dir, "popcorn.sqlite"))
	case DriverRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis driver requires storage.redis_addr")
		}
		return NewRedisStore(RedisConfig{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	case DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires storage.dsn")
		}
		return NewPostgresStore(cfg.DSN)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}
