// Package domain holds the pure Bachpan Balance types: child profiles, daily
// activity records, badge tiers and the interfaces implemented by storage.
// Domain types carry no infrastructure dependency.
package domain

import (
	"sort"
	"strings"
	"time"
)

// SchemaVersion is written into every stored profile. Loading an older or
// partial document default-fills whatever is missing.
const SchemaVersion = 1

// GuestKey is the reserved identity used when a name folds to nothing.
const GuestKey = "guest"

// ─── Gender ─────────────────────────────────────────────────────────────────

// Gender is the child's gender as chosen in the profile form.
type Gender string

const (
	GenderBoy   Gender = "Boy"
	GenderGirl  Gender = "Girl"
	GenderOther Gender = "Other"
)

// LookupGender folds s case-insensitively onto a known gender. It reports
// false for anything else, unlike ParseGender.
func LookupGender(s string) (Gender, bool) {
	g := ParseGender(s)
	if !strings.EqualFold(strings.TrimSpace(s), string(g)) {
		return "", false
	}
	return g, true
}

// ParseGender folds free text onto the enum. Unknown values become Boy,
// matching the form's default selection.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "girl":
		return GenderGirl
	case "other":
		return GenderOther
	default:
		return GenderBoy
	}
}

// ─── Badges ─────────────────────────────────────────────────────────────────

// Badge records the tier reached in one category and when it was first earned.
type Badge struct {
	Tier     Tier   `json:"tier"`
	EarnedOn string `json:"earned,omitempty"` // ISO date
}

// ─── Profile ────────────────────────────────────────────────────────────────

// Profile is one child's persistent identity plus cumulative rewards.
// Days holds every DayRecord ever touched, keyed by ISO date.
type Profile struct {
	Name   string  `json:"name"`
	Gender Gender  `json:"gender"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`

	XP       int64              `json:"xp"`
	Badges   map[Category]Badge `json:"badges"`
	XPBadges map[Tier]string    `json:"xp_badges"` // ladder rung -> ISO date earned

	Streak           int    `json:"streak"`
	LongestStreak    int    `json:"longest_streak"`
	LastCompletedDay string `json:"last_completed_day,omitempty"`

	Created string `json:"created,omitempty"`
	Version int    `json:"schema_version"`

	Days map[string]*DayRecord `json:"-"`
}

// NewProfile returns the default-initialized profile for a name.
func NewProfile(name string, today time.Time) *Profile {
	p := &Profile{Name: strings.TrimSpace(name), Created: DayKey(today)}
	p.Normalize()
	return p
}

// Key returns the storage key derived from the profile name.
func (p *Profile) Key() string {
	return NormalizeName(p.Name)
}

// Normalize default-fills nil maps and clamps counters that must never be
// negative. It is applied after every load.
func (p *Profile) Normalize() {
	if p.Badges == nil {
		p.Badges = make(map[Category]Badge)
	}
	if p.XPBadges == nil {
		p.XPBadges = make(map[Tier]string)
	}
	if p.Days == nil {
		p.Days = make(map[string]*DayRecord)
	}
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	if p.LongestStreak < p.Streak {
		p.LongestStreak = p.Streak
	}
	if p.Gender != "" {
		p.Gender = ParseGender(string(p.Gender))
	}
	for _, d := range p.Days {
		d.Normalize()
	}
	p.Version = SchemaVersion
}

// Day returns the record for the given ISO date, creating it if absent.
func (p *Profile) Day(key string) *DayRecord {
	if p.Days == nil {
		p.Days = make(map[string]*DayRecord)
	}
	d, ok := p.Days[key]
	if !ok {
		d = NewDayRecord()
		p.Days[key] = d
	}
	return d
}

// DayKeys returns stored dates in ascending order.
func (p *Profile) DayKeys() []string {
	keys := make([]string, 0, len(p.Days))
	for k := range p.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Details returns the editable body attributes.
func (p *Profile) Details() Details {
	return Details{Gender: p.Gender, Age: p.Age, Weight: p.Weight, Height: p.Height}
}

// ─── Dates ──────────────────────────────────────────────────────────────────

// DateFormat is the ISO-8601 layout used for day keys.
const DateFormat = "2006-01-02"

// DayKey formats t as an ISO date in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDay parses an ISO day key.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// IsDayKey reports whether s is a well-formed ISO date.
func IsDayKey(s string) bool {
	_, err := ParseDay(s)
	return err == nil && len(s) == len(DateFormat)
}
