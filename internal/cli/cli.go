// Package cli implements the barrierkit command-line interface.
//
// Commands:
//   - generate: build a barrier layout and write svg, png, json or txt
//   - render: re-render a saved JSON layout
//   - kinds: list the barrier kinds
//   - preview: browse layouts interactively in the terminal
//   - serve: run the HTTP API
//   - cache: inspect or clear the local cache
//
// Every command accepts --verbose (-v) for debug logging and --config to
// point at a TOML or YAML config file. The logger travels on the command's
// context (see withLogger).
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/barrierkit/internal/config"
	"github.com/matzehuels/barrierkit/pkg/buildinfo"
	"github.com/matzehuels/barrierkit/pkg/cache"
	"github.com/matzehuels/barrierkit/pkg/observability"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

const appName = "barrierkit"

// Log levels exported for main.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Barrierkit generates obstacle layouts for grid simulations",
		Long: `Barrierkit places barrier cells on a 2D simulation grid: fixed bars and
blocks, randomly placed bars, floating islands and evenly spaced spots.
Layouts are reproducible from their kind, grid size and seed.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (.toml, .yaml); default $XDG_CONFIG_HOME/barrierkit/config.toml")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
		c.Logger.Debug("loaded config", "path", c.configPath)
		return nil
	}
	cfg, path, err := config.LoadDefault()
	if err != nil {
		return err
	}
	c.cfg = cfg
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, c.cfg.Cache.Prefix)
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache opens the configured backend. An unreachable Redis degrades to
// no caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache(), nil
	}

	if c.cfg.Cache.Backend == config.CacheRedis {
		rc, err := cache.NewRedisCache(c.cfg.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "err", err)
			rc.Close()
			return cache.NewNullCache(), nil
		}
		return rc, nil
	}

	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the configured cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/barrierkit/).
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
