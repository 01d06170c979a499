package domain

import (
	"context"
	"time"
)

// ─── Service Interfaces ─────────────────────────────────────────────────────
// Infrastructure implements these; the application layer depends on them.

// ProfileStore loads and saves whole profiles keyed by normalized name.
// There is no locking: one session owns a profile between Load and Save.
type ProfileStore interface {
	// Load returns the stored profile or ErrProfileNotFound. A damaged
	// document is not an error; implementations return a default profile.
	Load(ctx context.Context, key string) (*Profile, error)

	// Save writes the profile, including every day record.
	Save(ctx context.Context, p *Profile) error

	// List returns every stored profile key in ascending order.
	List(ctx context.Context) ([]string, error)

	// Ping checks the backing medium is reachable.
	Ping(ctx context.Context) error

	Close() error
}

// Journal is an append-only log of XP-changing events.
type Journal interface {
	Append(ctx context.Context, events ...XPEvent) error

	// Events returns the newest events for a profile, newest first.
	Events(ctx context.Context, key string, limit int) ([]XPEvent, error)
}

// Clock supplies "today". Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)
