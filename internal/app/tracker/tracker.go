// Package tracker owns a child's session: it loads or creates the profile,
// prepares today's record with fresh water targets, applies actions through
// the reward ledger, journals XP events and saves.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bachpan-balance/bachpan/internal/app/hydration"
	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
	"github.com/bachpan-balance/bachpan/internal/infra/metrics"
)

// Tracker opens sessions against a profile store.
type Tracker struct {
	store   domain.ProfileStore
	journal domain.Journal
	clock   domain.Clock
	log     *slog.Logger
	backend string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock.
func WithClock(c domain.Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// WithBackend names the storage backend in metrics.
func WithBackend(name string) Option {
	return func(t *Tracker) { t.backend = name }
}

// New creates a Tracker. journal may be nil to disable the XP journal.
func New(store domain.ProfileStore, journal domain.Journal, opts ...Option) *Tracker {
	t := &Tracker{
		store:   store,
		journal: journal,
		clock:   domain.SystemClock,
		log:     slog.Default(),
		backend: "unknown",
	}
	for _, o := range opts {
		o(t)
	}
	t.log = t.log.With("component", "tracker")
	return t
}

// Now returns the tracker clock's current time.
func (t *Tracker) Now() time.Time { return t.clock.Now() }

// Open starts a session for the named child. A blank name is rejected. An
// unknown name starts a fresh profile that is persisted on the first Save.
// Missing body details are default-filled, today's record is created if
// absent and its water targets are recomputed from the profile.
func (t *Tracker) Open(ctx context.Context, name string) (*Session, error) {
	if err := domain.CheckName(name); err != nil {
		return nil, err
	}
	now := t.clock.Now()
	key := domain.NormalizeName(name)

	created := false
	p, err := t.store.Load(ctx, key)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		p = domain.NewProfile(name, now)
		created = true
	case err != nil:
		return nil, fmt.Errorf("load profile %s: %w", key, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	if p.Created == "" {
		p.Created = domain.DayKey(now)
	}
	p.Apply(p.Details().WithDefaults())

	s := &Session{
		ID:      uuid.NewString(),
		tracker: t,
		profile: p,
		now:     now,
		dayKey:  domain.DayKey(now),
		created: created,
	}
	s.day = p.Day(s.dayKey)
	s.refreshTarget()

	t.log.Debug("session opened", "session", s.ID, "profile", key, "day", s.dayKey, "new", created)
	return s, nil
}

// Load returns a stored profile without opening a session.
func (t *Tracker) Load(ctx context.Context, name string) (*domain.Profile, error) {
	if err := domain.CheckName(name); err != nil {
		return nil, err
	}
	return t.store.Load(ctx, domain.NormalizeName(name))
}

// Profiles lists stored profile keys.
func (t *Tracker) Profiles(ctx context.Context) ([]string, error) {
	return t.store.List(ctx)
}

// Events returns the newest journal events for a child.
func (t *Tracker) Events(ctx context.Context, name string, limit int) ([]domain.XPEvent, error) {
	if t.journal == nil {
		return nil, nil
	}
	return t.journal.Events(ctx, domain.NormalizeName(name), limit)
}

// ─── Session ────────────────────────────────────────────────────────────────

// Session is one child's working copy of their profile for a single day.
// It is not safe for concurrent use.
type Session struct {
	ID string

	tracker *Tracker
	profile *domain.Profile
	day     *domain.DayRecord
	dayKey  string
	now     time.Time
	target  hydration.Target
	created bool
	pending []domain.XPEvent
}

// Profile returns the session's profile.
func (s *Session) Profile() *domain.Profile { return s.profile }

// Today returns today's record.
func (s *Session) Today() *domain.DayRecord { return s.day }

// DayKey returns today's ISO date.
func (s *Session) DayKey() string { return s.dayKey }

// Target returns today's water recommendation.
func (s *Session) Target() hydration.Target { return s.target }

// Created reports whether the profile did not exist before this session.
func (s *Session) Created() bool { return s.created }

func (s *Session) refreshTarget() {
	p := s.profile
	s.target = hydration.Compute(p.Age, string(p.Gender), p.Weight)
	s.day.Water.TargetGlasses = s.target.Glasses
	s.day.Water.TargetML = s.target.ML
}

// Apply runs one action through the reward ledger and queues a journal
// event when XP changed. Nothing is persisted until Save.
func (s *Session) Apply(a domain.Action) (reward.Effects, error) {
	log := s.tracker.log.With("session", s.ID, "profile", s.profile.Key(), "kind", a.Kind)
	metrics.ActionsTotal.WithLabelValues(string(a.Kind)).Inc()

	fx, err := reward.Apply(s.profile, s.day, a, s.now)
	if errors.Is(err, domain.ErrDayNotEligible) {
		metrics.ActionsRejected.WithLabelValues(string(a.Kind), "not_eligible").Inc()
		log.Info("day completion refused",
			"glasses", s.day.Water.Glasses, "target", s.day.Water.TargetGlasses,
			"activities", s.day.ActivityHits())
		return fx, err
	}
	if err != nil {
		return fx, err
	}

	if fx.XPDelta > 0 {
		metrics.XPAwarded.WithLabelValues(string(a.Kind)).Add(float64(fx.XPDelta))
		s.pending = append(s.pending, domain.XPEvent{
			ID:         uuid.NewString(),
			SessionID:  s.ID,
			ProfileKey: s.profile.Key(),
			Day:        s.dayKey,
			Kind:       a.Kind,
			Delta:      fx.XPDelta,
			XPAfter:    fx.XP,
			At:         s.now.Unix(),
		})
	}
	for _, b := range fx.Badges {
		metrics.BadgesAwarded.WithLabelValues(string(b.Category), b.Tier.String()).Inc()
		log.Info("badge raised", "category", b.Category, "tier", b.Tier)
	}
	for _, b := range fx.Ladder {
		metrics.BadgesAwarded.WithLabelValues("xp", b.Tier.String()).Inc()
		log.Info("xp badge unlocked", "tier", b.Tier)
	}
	if fx.Completed {
		metrics.DaysCompleted.Inc()
		log.Info("day completed", "streak", fx.Streak)
	}
	metrics.ProfileXP.WithLabelValues(s.profile.Key()).Set(float64(fx.XP))
	metrics.StreakCurrent.WithLabelValues(s.profile.Key()).Set(float64(fx.Streak))

	log.Debug("action applied", "delta", fx.XPDelta, "xp", fx.XP)
	return fx, nil
}

// UpdateDetails validates and stores new body details, then recomputes
// today's water targets.
func (s *Session) UpdateDetails(d domain.Details) (hydration.Target, error) {
	if err := d.Validate(); err != nil {
		return s.target, err
	}
	s.profile.Apply(d)
	s.refreshTarget()
	return s.target, nil
}

// Save persists the profile, then flushes queued journal events.
func (s *Session) Save(ctx context.Context) error {
	t := s.tracker
	start := time.Now()
	if err := t.store.Save(ctx, s.profile); err != nil {
		return fmt.Errorf("save profile %s: %w", s.profile.Key(), err)
	}
	metrics.SaveLatency.WithLabelValues(t.backend).Observe(time.Since(start).Seconds())
	s.created = false

	if t.journal == nil || len(s.pending) == 0 {
		return nil
	}
	if err := t.journal.Append(ctx, s.pending...); err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	s.pending = nil
	return nil
}
