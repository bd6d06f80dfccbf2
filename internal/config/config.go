// Package config loads barrierkit settings from TOML or YAML files.
//
// Every field has a default (see Default), so a config file only needs the
// values it changes. Command-line flags override file values.
//
//	[generate]
//	kind = "islands"
//	width = 256
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/errors"
	"github.com/matzehuels/barrierkit/pkg/pipeline"
)

const appName = "barrierkit"

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the root of the config file.
type Config struct {
	Generate GenerateConfig `toml:"generate" yaml:"generate"`
	Render   RenderConfig   `toml:"render" yaml:"render"`
	Cache    CacheConfig    `toml:"cache" yaml:"cache"`
	Server   ServerConfig   `toml:"server" yaml:"server"`
}

// GenerateConfig holds defaults for layout generation.
type GenerateConfig struct {
	Kind        string `toml:"kind" yaml:"kind"` // name or selector number
	Width       int    `toml:"width" yaml:"width"`
	Height      int    `toml:"height" yaml:"height"`
	Seed        uint64 `toml:"seed" yaml:"seed"`
	MaxAttempts int    `toml:"max_attempts" yaml:"max_attempts"`
}

// RenderConfig holds defaults for artifact rendering.
type RenderConfig struct {
	Formats   []string `toml:"formats" yaml:"formats"`
	CellSize  float64  `toml:"cell_size" yaml:"cell_size"`
	Scale     int      `toml:"scale" yaml:"scale"`
	Centers   bool     `toml:"centers" yaml:"centers"`
	GridLines bool     `toml:"grid_lines" yaml:"grid_lines"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend" yaml:"backend"`
	Dir      string `toml:"dir" yaml:"dir"` // empty means $XDG_CACHE_HOME/barrierkit
	RedisURL string `toml:"redis_url" yaml:"redis_url"`
	Prefix   string `toml:"prefix" yaml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `toml:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxDimension    int           `toml:"max_dimension" yaml:"max_dimension"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Kind:        barrier.KindNone.String(),
			Width:       pipeline.DefaultWidth,
			Height:      pipeline.DefaultHeight,
			MaxAttempts: barrier.DefaultMaxAttempts,
		},
		Render: RenderConfig{
			Formats:  []string{pipeline.FormatSVG},
			CellSize: pipeline.DefaultCellSize,
			Scale:    pipeline.DefaultScale,
		},
		Cache: CacheConfig{
			Backend: CacheFile,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxDimension:    1024,
		},
	}
}

// Load reads path on top of the defaults. The format follows the extension:
// .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads DefaultPath if it exists and returns the defaults
// otherwise. The returned path is empty when no file was read.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// DefaultPath returns $XDG_CONFIG_HOME/barrierkit/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := barrier.ParseKind(c.Generate.Kind); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "generate.kind")
	}
	if err := errors.ValidateDimensions(c.Generate.Width, c.Generate.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "generate size")
	}
	if c.Generate.MaxAttempts <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "generate.max_attempts must be positive")
	}

	if len(c.Render.Formats) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.formats must not be empty")
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	if c.Render.CellSize <= 0 || c.Render.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render.cell_size and render.scale must be positive")
	}

	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.backend %q (use file, redis or none)", c.Cache.Backend)
	}

	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.MaxDimension <= 0 || c.Server.MaxDimension > errors.MaxDimension {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_dimension must be between 1 and %d", errors.MaxDimension)
	}
	return nil
}

// PipelineOptions converts the generate and render sections into pipeline
// options.
func (c Config) PipelineOptions() (pipeline.Options, error) {
	kind, err := barrier.ParseKind(c.Generate.Kind)
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Kind:        kind,
		Width:       c.Generate.Width,
		Height:      c.Generate.Height,
		Seed:        c.Generate.Seed,
		MaxAttempts: c.Generate.MaxAttempts,
		Formats:     append([]string(nil), c.Render.Formats...),
		CellSize:    c.Render.CellSize,
		Scale:       c.Render.Scale,
		ShowCenters: c.Render.Centers,
		GridLines:   c.Render.GridLines,
	}, nil
}
