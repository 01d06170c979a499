package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// ─── Profile Repository ─────────────────────────────────────────────────────

// Load retrieves a profile with its badges and every day record. A profile
// row that cannot be read yields a fresh default profile under the same key
// and a warning.
func (d *DB) Load(ctx context.Context, key string) (*domain.Profile, error) {
	key = domain.NormalizeName(key)
	p, err := scanProfile(d.db.QueryRowContext(ctx,
		`SELECT name, gender, age, weight, height, xp, streak, longest_streak,
		        last_completed_day, created, schema_version
		 FROM profiles WHERE key = ?`, key,
	))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrProfileNotFound
	case err != nil && (ctx.Err() != nil || errors.Is(err, sql.ErrConnDone)):
		return nil, fmt.Errorf("load profile: %w", err)
	case err != nil:
		d.log.Warn("profile row damaged, starting fresh", "profile", key, "error", err)
		p = &domain.Profile{Name: key}
		p.Normalize()
		return p, nil
	}

	if err := d.loadBadges(ctx, key, p); err != nil {
		return nil, err
	}
	if err := d.loadDays(ctx, key, p); err != nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

func scanProfile(s scanner) (*domain.Profile, error) {
	var p domain.Profile
	var gender string
	err := s.Scan(&p.Name, &gender, &p.Age, &p.Weight, &p.Height, &p.XP,
		&p.Streak, &p.LongestStreak, &p.LastCompletedDay, &p.Created, &p.Version)
	if err != nil {
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	return &p, nil
}

func (d *DB) loadBadges(ctx context.Context, key string, p *domain.Profile) error {
	p.Badges = make(map[domain.Category]domain.Badge)
	rows, err := d.db.QueryContext(ctx,
		`SELECT category, tier, earned_on FROM badges WHERE profile_key = ?`, key)
	if err != nil {
		return fmt.Errorf("load badges: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cat, tier, earned string
		if err := rows.Scan(&cat, &tier, &earned); err != nil {
			return fmt.Errorf("scan badge: %w", err)
		}
		t, err := domain.ParseTier(tier)
		if err != nil || t == domain.TierNone {
			d.log.Warn("skipping unknown badge tier", "profile", key, "tier", tier)
			continue
		}
		p.Badges[domain.Category(cat)] = domain.Badge{Tier: t, EarnedOn: earned}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	p.XPBadges = make(map[domain.Tier]string)
	rows2, err := d.db.QueryContext(ctx,
		`SELECT tier, earned_on FROM xp_badges WHERE profile_key = ?`, key)
	if err != nil {
		return fmt.Errorf("load xp badges: %w", err)
	}
	defer rows2.Close()
	for rows2.Next() {
		var tier, earned string
		if err := rows2.Scan(&tier, &earned); err != nil {
			return fmt.Errorf("scan xp badge: %w", err)
		}
		if t, err := domain.ParseTier(tier); err == nil && t != domain.TierNone {
			p.XPBadges[t] = earned
		}
	}
	return rows2.Err()
}

func (d *DB) loadDays(ctx context.Context, key string, p *domain.Profile) error {
	p.Days = make(map[string]*domain.DayRecord)
	rows, err := d.db.QueryContext(ctx,
		`SELECT day, doc FROM day_records WHERE profile_key = ? ORDER BY day`, key)
	if err != nil {
		return fmt.Errorf("load days: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var day, doc string
		if err := rows.Scan(&day, &doc); err != nil {
			return fmt.Errorf("scan day: %w", err)
		}
		rec := domain.NewDayRecord()
		if err := json.Unmarshal([]byte(doc), rec); err != nil {
			d.log.Warn("skipping damaged day record", "profile", key, "day", day, "error", err)
			continue
		}
		p.Days[day] = rec
	}
	return rows.Err()
}

// Save writes the whole profile in one transaction. Badges are replaced;
// day records are upserted and never deleted.
func (d *DB) Save(ctx context.Context, p *domain.Profile) error {
	key := p.Key()
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (key, name, gender, age, weight, height, xp, streak, longest_streak,
		                       last_completed_day, created, schema_version, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			name=excluded.name,
			gender=excluded.gender,
			age=excluded.age,
			weight=excluded.weight,
			height=excluded.height,
			xp=excluded.xp,
			streak=excluded.streak,
			longest_streak=excluded.longest_streak,
			last_completed_day=excluded.last_completed_day,
			created=excluded.created,
			schema_version=excluded.schema_version,
			updated_at=excluded.updated_at`,
		key, p.Name, string(p.Gender), p.Age, p.Weight, p.Height, p.XP, p.Streak, p.LongestStreak,
		p.LastCompletedDay, p.Created, domain.SchemaVersion, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM badges WHERE profile_key = ?`, key); err != nil {
		return fmt.Errorf("clear badges: %w", err)
	}
	for cat, b := range p.Badges {
		if b.Tier == domain.TierNone {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO badges (profile_key, category, tier, earned_on) VALUES (?, ?, ?, ?)`,
			key, string(cat), b.Tier.String(), b.EarnedOn,
		); err != nil {
			return fmt.Errorf("insert badge: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM xp_badges WHERE profile_key = ?`, key); err != nil {
		return fmt.Errorf("clear xp badges: %w", err)
	}
	for t, earned := range p.XPBadges {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO xp_badges (profile_key, tier, earned_on) VALUES (?, ?, ?)`,
			key, t.String(), earned,
		); err != nil {
			return fmt.Errorf("insert xp badge: %w", err)
		}
	}

	for day, rec := range p.Days {
		doc, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode day %s: %w", day, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO day_records (profile_key, day, doc, completed) VALUES (?, ?, ?, ?)
			 ON CONFLICT(profile_key, day) DO UPDATE SET
				doc=excluded.doc,
				completed=excluded.completed`,
			key, day, string(doc), rec.Completed,
		); err != nil {
			return fmt.Errorf("upsert day: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	d.log.Debug("profile saved", "profile", key, "days", len(p.Days))
	return nil
}

// List returns all profile keys in ascending order.
func (d *DB) List(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT key FROM profiles ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// CompletedDays counts completed day records for a profile.
func (d *DB) CompletedDays(ctx context.Context, key string) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM day_records WHERE profile_key = ? AND completed = 1`,
		domain.NormalizeName(key),
	).Scan(&n)
	return n, err
}
