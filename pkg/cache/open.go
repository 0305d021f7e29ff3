package cache

import (
	"context"
	"fmt"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Options select and configure a backend.
type Options struct {
	Backend  string // none, file or redis; empty means file
	Dir      string // file backend directory; empty means DefaultDir
	RedisURL string // redis backend address
}

// Open returns the cache backend named by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case BackendFile, "":
		dir := opts.Dir
		if dir == "" {
			d, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		c, err := NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, opts.RedisURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
