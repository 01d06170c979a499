package render

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bachpan-balance/bachpan/internal/app/hydration"
	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
)

var now = time.Date(2025, 4, 10, 17, 0, 0, 0, time.UTC)

func sampleProfile() (*domain.Profile, *domain.DayRecord) {
	p := domain.NewProfile("Anvi", now)
	p.XP = 230
	p.Streak = 3
	p.LongestStreak = 4
	p.LastCompletedDay = "2025-04-08"
	p.Badges[domain.CatFruit] = domain.Badge{Tier: domain.TierSilver, EarnedOn: "2025-04-07"}
	p.XPBadges[domain.TierBronze] = "2025-04-02"
	p.XPBadges[domain.TierSilver] = "2025-04-09"

	day := p.Day("2025-04-10")
	day.Water = domain.Water{Glasses: 4, TargetGlasses: 5, TargetML: 1200}
	day.Fruit.Items = []string{"Mango"}
	day.SchoolWork = true
	day.Screen = domain.Screen{Create: 30, Fun: 50, Limit: 60}
	return p, day
}

// ─── Summary ────────────────────────────────────────────────────────────────

func TestDaySummary(t *testing.T) {
	p, day := sampleProfile()
	s := NewSummary(p, "2025-04-10", day, hydration.Compute(8, "boy", 25), now)

	if s.HydrationPct != 80 || s.Hits != 2 || s.Eligible {
		t.Errorf("summary = pct %d hits %d eligible %v", s.HydrationPct, s.Hits, s.Eligible)
	}
	if s.StreakOrdinal != "3rd" {
		t.Errorf("StreakOrdinal = %q, want 3rd", s.StreakOrdinal)
	}

	md, err := DaySummary(s)
	if err != nil {
		t.Fatalf("DaySummary() error: %v", err)
	}
	for _, want := range []string{
		"# Anvi's day · 2025-04-10",
		"**1200 ml** (1.20 L) = **5 glasses**",
		"**4/5** (80%)",
		"Checklist (2/6)",
		"**Mango**: Vitamin A for eyes.",
		"over limit",
		"Fruit Friend",
		"Silver Star",
		"3rd day in a row",
		"2025-04-08 (2 days ago)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q\n%s", want, md)
		}
	}
}

func TestDaySummary_EmptyDay(t *testing.T) {
	p := domain.NewProfile("Guest", now)
	day := p.Day("2025-04-10")
	md, err := DaySummary(NewSummary(p, "2025-04-10", day, hydration.Compute(8, "boy", 25), now))
	if err != nil {
		t.Fatalf("DaySummary() error: %v", err)
	}
	if !strings.Contains(md, "none yet") || !strings.Contains(md, "Last completed: never") {
		t.Errorf("empty summary =\n%s", md)
	}
}

func TestLastCompleted(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"", "never"},
		{"2025-04-10", "today"},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := LastCompleted(tt.day, now); got != tt.want {
			t.Errorf("LastCompleted(%q) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestRenderer_Plain(t *testing.T) {
	out, err := Renderer{Plain: true}.Render("# hi")
	if err != nil || out != "# hi" {
		t.Errorf("Render() = %q, %v", out, err)
	}
}

func TestRenderer_Styled(t *testing.T) {
	out, err := Renderer{Style: "notty", Width: 60}.Render("# Water\n\nDrink up.")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "Drink up.") {
		t.Errorf("Render() = %q", out)
	}
}

// ─── Effects & History ──────────────────────────────────────────────────────

func TestEffects(t *testing.T) {
	fx := reward.Effects{
		Kind:      domain.ActionFinish,
		XPDelta:   30,
		XP:        130,
		Level:     2,
		LevelUp:   true,
		Badges:    []domain.BadgeAward{reward.BadgeFor(domain.CatHydration, domain.TierLegend)},
		Ladder:    []domain.BadgeAward{reward.BadgeFor("", domain.TierBronze)},
		Completed: true,
		Streak:    2,
		Cheer:     "🎉 You completed your day!",
	}
	out := Effects(fx)
	for _, want := range []string{"+30 XP", "Level up!", "Ocean Hero", "Bronze Star", "2nd day in a row"} {
		if !strings.Contains(out, want) {
			t.Errorf("Effects() missing %q\n%s", want, out)
		}
	}
}

func TestHistory(t *testing.T) {
	p, _ := sampleProfile()
	p.Day("2025-04-09").Completed = true

	out := History(p)
	i, j := strings.Index(out, "2025-04-09"), strings.Index(out, "2025-04-10")
	if i < 0 || j < 0 || i > j {
		t.Errorf("History() should list days oldest first\n%s", out)
	}
	if !strings.Contains(out, "✅") {
		t.Error("History() should mark completed days")
	}
}

func TestEvents(t *testing.T) {
	events := []domain.XPEvent{
		{Day: "2025-04-10", Kind: domain.ActionWater, Delta: 5, XPAfter: 235, At: now.Add(-time.Hour).Unix()},
	}
	out := Events(events, now)
	if !strings.Contains(out, "1 hour ago") || !strings.Contains(out, "water_glass") {
		t.Errorf("Events() =\n%s", out)
	}
	if Events(nil, now) != "No XP events yet.\n" {
		t.Error("Events(nil) should say there are none")
	}
}

func TestWriteCSV(t *testing.T) {
	p, _ := sampleProfile()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	want := []string{"2025-04-10", "Anvi", "2", "6", "33", "No", "Yes", "No", "Yes"}
	for i, w := range want {
		if rows[1][i] != w {
			t.Errorf("column %s = %q, want %q", rows[0][i], rows[1][i], w)
		}
	}
}
