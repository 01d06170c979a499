// Package health runs the self-checks behind `bachpan doctor`, with
// optional auto-recovery per check.
package health

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/infra/metrics"
)

// Check defines a single health check with optional recovery action.
type Check struct {
	Name      string
	CheckFn   func(ctx context.Context) error
	RecoverFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Recovered bool      `json:"recovered,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker runs health checks and keeps the latest results.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
}

// NewChecker creates a checker with the standard data_dir and store checks,
// followed by any extra checks.
func NewChecker(store domain.ProfileStore, dataDir string, extra ...Check) *Checker {
	checks := []Check{
		{
			Name: "data_dir",
			CheckFn: func(ctx context.Context) error {
				return checkWritable(dataDir)
			},
			RecoverFn: func(ctx context.Context) error {
				return os.MkdirAll(dataDir, 0700)
			},
		},
		{
			Name: "store",
			CheckFn: func(ctx context.Context) error {
				return store.Ping(ctx)
			},
		},
	}
	return &Checker{checks: append(checks, extra...)}
}

// RunAll runs every check once. A failing check with a recovery action is
// recovered and re-checked.
func (c *Checker) RunAll(ctx context.Context) []Status {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{Name: check.Name, CheckedAt: time.Now()}
		err := check.CheckFn(ctx)
		if err != nil && check.RecoverFn != nil {
			metrics.HealthRecoveries.WithLabelValues(check.Name).Inc()
			if rerr := check.RecoverFn(ctx); rerr == nil {
				if err = check.CheckFn(ctx); err == nil {
					s.Recovered = true
				}
			}
		}
		if err != nil {
			s.Error = err.Error()
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(0)
		} else {
			s.Healthy = true
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(1)
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
	return c.Statuses()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// ─── Check Implementations ──────────────────────────────────────────────────

func checkWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("check data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
