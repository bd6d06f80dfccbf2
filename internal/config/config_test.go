package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/barrierkit/pkg/barrier"
	"github.com/matzehuels/barrierkit/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[generate]
kind = "islands"
width = 200
seed = 99

[render]
formats = ["png", "json"]
centers = true

[cache]
backend = "redis"
redis_url = "redis://cache:6379/1"

[server]
addr = "127.0.0.1:9000"
read_timeout = "3s"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Generate.Kind != "islands" || cfg.Generate.Width != 200 || cfg.Generate.Seed != 99 {
		t.Errorf("generate = %+v", cfg.Generate)
	}
	if cfg.Generate.Height != 128 {
		t.Errorf("unset height should keep default, got %d", cfg.Generate.Height)
	}
	if len(cfg.Render.Formats) != 2 || !cfg.Render.Centers {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("unset write timeout should keep default, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
generate:
  kind: "6"
  width: 100
  height: 96
render:
  cell_size: 4
server:
  shutdown_timeout: 15s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Generate.Kind != "6" || cfg.Generate.Width != 100 || cfg.Generate.Height != 96 {
		t.Errorf("generate = %+v", cfg.Generate)
	}
	if cfg.Render.CellSize != 4 {
		t.Errorf("CellSize = %g, want 4", cfg.Render.CellSize)
	}
	if cfg.Server.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.Server.ShutdownTimeout)
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		t.Fatalf("PipelineOptions() error: %v", err)
	}
	if opts.Kind != barrier.KindSpots || opts.CellSize != 4 {
		t.Errorf("PipelineOptions() = %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"unsupported extension", "config.json", `{}`, errors.ErrCodeInvalidConfig},
		{"malformed toml", "config.toml", `[generate`, errors.ErrCodeInvalidConfig},
		{"malformed yaml", "config.yaml", "generate: [", errors.ErrCodeInvalidConfig},
		{"bad kind", "config.toml", "[generate]\nkind = \"lava\"", errors.ErrCodeInvalidConfig},
		{"negative width", "config.toml", "[generate]\nwidth = -1", errors.ErrCodeInvalidConfig},
		{"bad format", "config.toml", "[render]\nformats = [\"gif\"]", errors.ErrCodeInvalidConfig},
		{"redis without url", "config.toml", "[cache]\nbackend = \"redis\"", errors.ErrCodeInvalidConfig},
		{"unknown backend", "config.yaml", "cache:\n  backend: memcached", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, path, err := LoadDefault()
	if err != nil || path != "" {
		t.Fatalf("LoadDefault() without file = %q, %v", path, err)
	}
	if cfg.Generate.Width != Default().Generate.Width {
		t.Error("LoadDefault() without file should return defaults")
	}

	want := filepath.Join(dir, "barrierkit", "config.toml")
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte("[generate]\nkind = \"spots\""), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, path, err = LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error: %v", err)
	}
	if path != want || cfg.Generate.Kind != "spots" {
		t.Errorf("LoadDefault() = %q, kind %q", path, cfg.Generate.Kind)
	}
}
