package sqlite

import (
	"context"
	"fmt"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// ─── XP Journal ─────────────────────────────────────────────────────────────

// Append inserts journal events in one transaction. Re-appending an event
// with a known ID is ignored.
func (d *DB) Append(ctx context.Context, events ...domain.XPEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO xp_events (id, session, profile_key, day, kind, delta, xp_after, at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO NOTHING`,
			e.ID, e.SessionID, domain.NormalizeName(e.ProfileKey), e.Day,
			string(e.Kind), e.Delta, e.XPAfter, e.At,
		)
		if err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}
	return tx.Commit()
}

// Events returns recent journal events for a profile, newest first.
// A limit of zero or less returns them all.
func (d *DB) Events(ctx context.Context, key string, limit int) ([]domain.XPEvent, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, session, profile_key, day, kind, delta, xp_after, at
		 FROM xp_events WHERE profile_key = ? ORDER BY seq DESC LIMIT ?`,
		domain.NormalizeName(key), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.XPEvent
	for rows.Next() {
		var e domain.XPEvent
		var kind string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.ProfileKey, &e.Day,
			&kind, &e.Delta, &e.XPAfter, &e.At); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = domain.ActionKind(kind)
		events = append(events, e)
	}
	return events, rows.Err()
}
