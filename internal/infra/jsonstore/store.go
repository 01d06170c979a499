// Package jsonstore keeps one JSON document per child profile in a data
// directory, plus an append-only JSON-lines journal of XP events.
//
// Layout:
//
//	<dir>/<key>.json           profile fields and one entry per ISO date
//	<dir>/<key>.events.jsonl   one XPEvent per line, oldest first
package jsonstore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

const (
	profileExt = ".json"
	journalExt = ".events.jsonl"
)

// Store implements domain.ProfileStore and domain.Journal on plain files.
type Store struct {
	dir string
	log *slog.Logger
}

// Open prepares dir for use, creating it if needed.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, log: log.With("component", "jsonstore")}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) profilePath(key string) string {
	return filepath.Join(s.dir, domain.NormalizeName(key)+profileExt)
}

func (s *Store) journalPath(key string) string {
	return filepath.Join(s.dir, domain.NormalizeName(key)+journalExt)
}

// ─── ProfileStore ───────────────────────────────────────────────────────────

// Load reads a profile. A document that fails to parse yields a fresh
// default profile under the same key and a warning, never an error.
func (s *Store) Load(ctx context.Context, key string) (*domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.profilePath(key)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p, err := decodeProfile(data, s.log)
	if err != nil {
		s.log.Warn("profile document damaged, starting fresh", "path", path, "error", err)
		p = &domain.Profile{Name: key}
		p.Normalize()
		return p, nil
	}
	if p.Name == "" {
		p.Name = key
	}
	return p, nil
}

// Save writes the profile atomically: a temp file in the same directory is
// renamed over the old document.
func (s *Store) Save(ctx context.Context, p *domain.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeProfile(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".profile-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close profile: %w", err)
	}
	if err := os.Rename(tmpName, s.profilePath(p.Key())); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	s.log.Debug("profile saved", "profile", p.Key(), "days", len(p.Days))
	return nil
}

// List returns the keys of every stored profile.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, profileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, profileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping checks the data directory still exists.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op; files are opened per call.
func (s *Store) Close() error { return nil }

// ─── Journal ────────────────────────────────────────────────────────────────

// Append writes events to their profiles' journals in append mode.
func (s *Store) Append(ctx context.Context, events ...domain.XPEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	byKey := make(map[string][]domain.XPEvent)
	for _, e := range events {
		byKey[e.ProfileKey] = append(byKey[e.ProfileKey], e)
	}
	for key, evs := range byKey {
		if err := s.appendFile(s.journalPath(key), evs); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) appendFile(path string, events []domain.XPEvent) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}
	return nil
}

// Events returns up to limit events for a profile, newest first. A limit of
// zero or less returns them all. Lines that fail to decode are skipped.
func (s *Store) Events(ctx context.Context, key string, limit int) ([]domain.XPEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.journalPath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var events []domain.XPEvent
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e domain.XPEvent
		if err := json.Unmarshal(line, &e); err != nil {
			s.log.Warn("skipping damaged journal line", "profile", key, "error", err)
			continue
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}
