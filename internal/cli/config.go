package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/antennas/pkg/cache"
	errs "github.com/matzehuels/antennas/pkg/errors"
)

// Config is the on-disk configuration, read from
// $XDG_CONFIG_HOME/antennas/config.toml unless --config names another file.
// Flags override config values, and config values override defaults.
//
//	[grid]
//	empty = ".#"
//
//	[query]
//	max_intersections = 500
//	max_paths = 1000
//
//	[cache]
//	backend = "redis"
//	ttl = "12h"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//
//	[log]
//	level = "debug"
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Query  QueryConfig  `toml:"query"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// GridConfig controls grid parsing.
type GridConfig struct {
	// Empty lists the characters treated as empty cells.
	Empty string `toml:"empty"`
}

// QueryConfig bounds query results.
type QueryConfig struct {
	MaxIntersections int `toml:"max_intersections"`
	MaxPaths         int `toml:"max_paths"`
}

// CacheConfig selects the artifact cache.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	TTL      duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig sets the default log level. --verbose wins over it.
type LogConfig struct {
	Level string `toml:"level"`
}

// duration decodes TOML strings such as "90m" into a time.Duration.
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Grid:   GridConfig{Empty: ". "},
		Query:  QueryConfig{MaxIntersections: 1000, MaxPaths: 1000},
		Cache:  CacheConfig{Backend: cache.BackendFile, TTL: duration{24 * time.Hour}},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// configPath returns the default config file location using the XDG
// standard (~/.config/antennas/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path on top of the defaults. An
// empty path means the default location, which may be absent. An explicit
// path must exist.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("Unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	logger.Debug("Loaded config", "file", path)
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendFile, cache.BackendRedis:
	default:
		return errs.New(errs.ErrCodeInvalidInput, "cache.backend must be none, file or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == cache.BackendRedis && c.Cache.RedisURL == "" {
		return errs.New(errs.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
	}
	if c.Query.MaxIntersections <= 0 || c.Query.MaxPaths <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "query limits must be positive")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid log.level %q", c.Log.Level)
	}
	return nil
}

// emptyMarkers returns the configured empty-cell characters.
func (c Config) emptyMarkers() []rune {
	return []rune(c.Grid.Empty)
}

// String renders the effective config as TOML.
func (c Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("# encode config: %v\n", err)
	}
	return b.String()
}
