// Package metrics provides Prometheus metrics for Bachpan Balance.
// There is no scrape endpoint: the CLI flushes the default registry to a
// node_exporter textfile after each command when telemetry is enabled.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Actions ────────────────────────────────────────────────────────────────

// ActionsTotal tracks logged actions by kind.
var ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "actions_total",
	Help:      "Total logged actions.",
}, []string{"kind"})

// ActionsRejected tracks actions refused by a gate, by kind and reason.
var ActionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "actions_rejected_total",
	Help:      "Total actions rejected.",
}, []string{"kind", "reason"})

// ─── Rewards ────────────────────────────────────────────────────────────────

// XPAwarded tracks experience points awarded by action kind.
var XPAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "xp_awarded_total",
	Help:      "Total XP awarded.",
}, []string{"kind"})

// BadgesAwarded tracks badge tiers newly reached. The ladder uses category "xp".
var BadgesAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "badges_awarded_total",
	Help:      "Total badge tiers newly reached.",
}, []string{"category", "tier"})

// DaysCompleted tracks successful day completions.
var DaysCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "days_completed_total",
	Help:      "Total days marked complete.",
})

// StreakCurrent tracks the active profile's streak.
var StreakCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bachpan",
	Name:      "streak_days",
	Help:      "Current day-completion streak per profile.",
}, []string{"profile"})

// ProfileXP tracks the active profile's cumulative XP.
var ProfileXP = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bachpan",
	Name:      "profile_xp",
	Help:      "Cumulative XP per profile.",
}, []string{"profile"})

// ─── Storage ────────────────────────────────────────────────────────────────

// SaveLatency tracks profile save duration by backend.
var SaveLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bachpan",
	Name:      "save_latency_seconds",
	Help:      "Profile save duration in seconds.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
}, []string{"backend"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bachpan",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})

// HealthRecoveries tracks auto-recovery attempts.
var HealthRecoveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bachpan",
	Name:      "health_recoveries_total",
	Help:      "Total auto-recovery attempts per check.",
}, []string{"check"})

// ─── Export ─────────────────────────────────────────────────────────────────

// WriteTextfile writes every registered metric to path in the Prometheus
// text format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
