package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, backend string) Config {
	t.Helper()
	t.Setenv("BACHPAN_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Storage.Backend = backend
	return cfg
}

// ─── Config ─────────────────────────────────────────────────────────────────

func TestDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BACHPAN_HOME", home)
	cfg := DefaultConfig()

	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, BackendJSON)
	}
	if cfg.Storage.Dir != filepath.Join(home, "data") {
		t.Errorf("Storage.Dir = %q", cfg.Storage.Dir)
	}
	if cfg.Display.Style != "auto" || cfg.Display.Width != 80 {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error: %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("BACHPAN_HOME", t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("backend = %q, want default", cfg.Storage.Backend)
	}
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	t.Setenv("BACHPAN_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.Logging.Format = "json"
	cfg.Telemetry.Textfile = "/var/lib/node_exporter/bachpan.prom"
	cfg.Display.Plain = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}
	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", got, cfg)
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BACHPAN_HOME", home)
	doc := "[display]\nplain = true\n"
	if err := os.WriteFile(filepath.Join(home, ConfigFile), []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if !cfg.Display.Plain || cfg.Storage.Backend != BackendJSON || cfg.Storage.Dir == "" {
		t.Errorf("cfg = %+v, want defaults kept beside plain=true", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "postgres" }, domain.ErrUnknownBackend},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, nil},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, nil},
		{"narrow width", func(c *Config) { c.Display.Width = 5 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ─── Wiring ─────────────────────────────────────────────────────────────────

func TestNewWithConfig_Backends(t *testing.T) {
	for _, backend := range []string{BackendJSON, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)
			clock := domain.ClockFunc(func() time.Time {
				return time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
			})
			a, err := NewWithConfig(cfg, WithClock(clock), WithLogger(quietLogger()))
			if err != nil {
				t.Fatalf("NewWithConfig() error: %v", err)
			}
			defer a.Close()

			ctx := context.Background()
			s, err := a.Tracker.Open(ctx, "Diya")
			if err != nil {
				t.Fatal(err)
			}
			if _, err := s.Apply(domain.Action{Kind: domain.ActionWater}); err != nil {
				t.Fatal(err)
			}
			if err := s.Save(ctx); err != nil {
				t.Fatalf("Save() error: %v", err)
			}

			events, err := a.Tracker.Events(ctx, "diya", 0)
			if err != nil || len(events) != 1 {
				t.Errorf("Events() = %v, %v; want one event", events, err)
			}
			for _, st := range a.Health.RunAll(ctx) {
				if !st.Healthy {
					t.Errorf("check %q unhealthy: %s", st.Name, st.Error)
				}
			}
		})
	}
}

func TestNewWithConfig_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, "mongo")
	_, err := NewWithConfig(cfg, WithLogger(quietLogger()))
	if !errors.Is(err, domain.ErrUnknownBackend) {
		t.Errorf("NewWithConfig() error = %v, want ErrUnknownBackend", err)
	}
}

func TestClose_WritesTextfile(t *testing.T) {
	cfg := testConfig(t, BackendJSON)
	cfg.Telemetry.Textfile = filepath.Join(t.TempDir(), "bachpan.prom")

	a, err := NewWithConfig(cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	s, _ := a.Tracker.Open(ctx, "Arnav")
	s.Apply(domain.Action{Kind: domain.ActionFruit, Items: []string{"Pear"}})
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(cfg.Telemetry.Textfile)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "bachpan_actions_total") {
		t.Error("textfile missing bachpan_actions_total")
	}
}
