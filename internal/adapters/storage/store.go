package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

var ErrNotFound = errors.New("storage: key not found")

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Store is a flat key-value namespace holding the tracker's JSON documents.
// Keys mirror the browser storage layout (tasks_<id>, users, currentUser...).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options selects and configures a backend for Open.
type Options struct {
	Driver string
	Path   string

	// Redis is only consulted by the redis driver.
	Redis RedisOptions
}

func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile:
		store, err := OpenFileStore(opts.Path)
		if errors.Is(err, domain.ErrCorruptState) {
			log.Warn().Err(err).Str("backup", opts.Path+".corrupt").Msg("data file unreadable, starting empty")
			return store, nil
		}
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverSQLite:
		return OpenSQLiteStore(opts.Path)
	case DriverRedis:
		return OpenRedisStore(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", opts.Driver)
	}
}
