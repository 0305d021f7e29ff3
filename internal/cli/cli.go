// Package cli implements the antennas command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/buildinfo"
	"github.com/matzehuels/antennas/pkg/cache"
	"github.com/matzehuels/antennas/pkg/observability"
	"github.com/matzehuels/antennas/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "antennas"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config     Config
	configPath string
	empty      string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Antennas maps antenna grids to interference graphs",
		Long: `Antennas reads a character grid of antennas, links every pair that shares a
frequency, and answers traversal, path, intersection and effect queries over
the resulting interference graph.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/antennas/config.toml)")
	flags.StringVar(&c.empty, "empty", "", "characters treated as empty grid cells (default \". \")")

	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.verticesCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.intersectCommand())
	root.AddCommand(c.effectsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config, applies the log level and attaches the logger to
// the command context. Flags win over config values.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.configPath, c.Logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("empty") {
		cfg.Grid.Empty = c.empty
	}
	c.config = cfg

	level, _ := log.ParseLevel(cfg.Log.Level)
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetGraphHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cc, c.keyer(noCache), c.Logger)
	runner.TTL = c.config.Cache.TTL.Duration
	return runner, nil
}

// keyer returns the cache keyer for the configured backend. Redis is
// shared with other tools, so its keys carry the application prefix.
func (c *CLI) keyer(noCache bool) cache.Keyer {
	if !noCache && c.config.Cache.Backend == cache.BackendRedis {
		return cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
	}
	return cache.NewDefaultKeyer()
}

// newCache opens the configured cache backend. noCache selects the null
// cache. A file cache that cannot be created degrades to the null cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	opts := cache.Options{Backend: c.config.Cache.Backend, RedisURL: c.config.Cache.RedisURL}
	if opts.Backend == cache.BackendFile || opts.Backend == "" {
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("No cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		opts.Dir = dir
	}
	return cache.Open(ctx, opts)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/antennas/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
