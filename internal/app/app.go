// Package app wires configuration, logging, storage and the tracker into a
// runtime the CLI commands share. It wires domain logic with infrastructure,
// never the reverse.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bachpan-balance/bachpan/internal/app/tracker"
	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/health"
	"github.com/bachpan-balance/bachpan/internal/infra/jsonstore"
	"github.com/bachpan-balance/bachpan/internal/infra/metrics"
	"github.com/bachpan-balance/bachpan/internal/infra/sqlite"
	"github.com/bachpan-balance/bachpan/internal/logging"
)

// App is the wired runtime for one CLI invocation.
type App struct {
	Config  Config
	Log     *slog.Logger
	Store   domain.ProfileStore
	Journal domain.Journal
	Tracker *tracker.Tracker
	Health  *health.Checker

	logCloser io.Closer
}

// Option adjusts wiring, mainly for tests.
type Option func(*options)

type options struct {
	clock  domain.Clock
	logger *slog.Logger
}

// WithClock replaces the wall clock.
func WithClock(c domain.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger replaces the configured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New loads the config and wires an App.
func New(opts ...Option) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig wires an App from cfg.
func NewWithConfig(cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{clock: domain.SystemClock}
	for _, fn := range opts {
		fn(&o)
	}

	a := &App{Config: cfg}
	if o.logger != nil {
		a.Log = o.logger
	} else {
		log, closer, err := logging.New(cfg.LogOptions())
		if err != nil {
			return nil, fmt.Errorf("init logging: %w", err)
		}
		a.Log, a.logCloser = log, closer
	}

	store, journal, err := OpenStore(cfg.Storage, a.Log)
	if err != nil {
		a.closeLog()
		return nil, err
	}
	a.Store, a.Journal = store, journal

	a.Tracker = tracker.New(store, journal,
		tracker.WithClock(o.clock),
		tracker.WithLogger(a.Log),
		tracker.WithBackend(cfg.Storage.Backend),
	)
	a.Health = health.NewChecker(store, cfg.Storage.Dir, health.Check{
		Name: "config",
		CheckFn: func(ctx context.Context) error {
			return cfg.Validate()
		},
	})

	a.Log.Debug("runtime ready", "component", "app", "backend", cfg.Storage.Backend, "dir", cfg.Storage.Dir)
	return a, nil
}

// OpenStore opens the configured backend. Both backends serve as profile
// store and journal.
func OpenStore(cfg StorageConfig, log *slog.Logger) (domain.ProfileStore, domain.Journal, error) {
	switch cfg.Backend {
	case BackendJSON:
		s, err := jsonstore.Open(cfg.Dir, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open json store: %w", err)
		}
		return s, s, nil
	case BackendSQLite:
		db, err := sqlite.Open(cfg.Dir, log)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("%w %q", domain.ErrUnknownBackend, cfg.Backend)
	}
}

// Close flushes telemetry and releases the store and log file.
func (a *App) Close() error {
	var errs []error
	if err := metrics.WriteTextfile(a.Config.Telemetry.Textfile); err != nil {
		a.Log.Warn("metrics textfile not written", "component", "app", "error", err)
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close())
	}
	errs = append(errs, a.closeLog())
	return errors.Join(errs...)
}

func (a *App) closeLog() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
