// Package render turns profiles, day records and action effects into
// markdown, and markdown into terminal output with glamour.
package render

import (
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"github.com/bachpan-balance/bachpan/internal/app/hydration"
	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
)

// Renderer converts markdown for the terminal. Plain returns it untouched.
type Renderer struct {
	Plain bool
	Style string // glamour style name; "auto" or empty detects the terminal
	Width int
}

// Render returns md styled for a terminal, or md itself when Plain.
func (r Renderer) Render(md string) (string, error) {
	if r.Plain {
		return md, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if r.Style == "" || r.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("init renderer: %w", err)
	}
	return tr.Render(md)
}

// ─── Day Summary ────────────────────────────────────────────────────────────

// BadgeRow is one line of the badge table.
type BadgeRow struct {
	Label  string
	Tier   string
	Title  string
	Flavor string
	Earned string
}

// Summary is the view model behind DaySummary.
type Summary struct {
	Name          string
	Day           string
	Target        hydration.Target
	Glasses       int
	HydrationPct  int
	Hits          int
	HitsTotal     int
	Fruits        []FruitLine
	Protein       string
	SchoolWork    bool
	Outdoor       string
	Indoor        string
	ExamMin       int
	Screen        domain.Screen
	OverLimit     bool
	Completed     bool
	Eligible      bool
	XP            int64
	Level         int
	LevelPct      int
	ToNext        int64
	Streak        int
	StreakOrdinal string
	Longest       int
	LastCompleted string
	Badges        []BadgeRow
	Ladder        []BadgeRow
}

// FruitLine pairs a logged fruit with its benefit.
type FruitLine struct {
	Name    string
	Benefit string
}

// NewSummary builds the view model for one day of a profile.
func NewSummary(p *domain.Profile, dayKey string, day *domain.DayRecord, target hydration.Target, now time.Time) Summary {
	s := Summary{
		Name:         p.Name,
		Day:          dayKey,
		Target:       target,
		Glasses:      day.Water.Glasses,
		HydrationPct: int(math.Round(day.HydrationProgress() * 100)),
		Hits:         day.ActivityHits(),
		HitsTotal:    domain.ActivityTotal,
		Protein:      strings.Join(day.Protein.Items, ", "),
		SchoolWork:   day.SchoolWork,
		Outdoor:      strings.Join(day.Outdoor, ", "),
		Indoor:       strings.Join(day.Indoor, ", "),
		ExamMin:      day.ExamMin,
		Screen:       day.Screen,
		OverLimit:    day.Screen.OverLimit(),
		Completed:    day.Completed,
		Eligible:     reward.EvaluateDayCompletion(day),
		XP:           p.XP,
		Level:        reward.LevelForXP(p.XP),
		LevelPct:     int(math.Floor(reward.LevelProgress(p.XP))),
		ToNext:       reward.XPToNextLevel(p.XP),
		Streak:       p.Streak,
		Longest:      p.LongestStreak,
		Badges:       CategoryBadges(p),
		Ladder:       LadderBadges(p),
	}
	for _, f := range day.Fruit.Items {
		s.Fruits = append(s.Fruits, FruitLine{Name: f, Benefit: domain.FruitBenefit(f)})
	}
	if p.Streak > 0 {
		s.StreakOrdinal = humanize.Ordinal(p.Streak)
	}
	s.LastCompleted = LastCompleted(p.LastCompletedDay, now)
	return s
}

// LastCompleted describes the last completed day relative to now.
func LastCompleted(day string, now time.Time) string {
	if day == "" {
		return "never"
	}
	t, err := domain.ParseDay(day)
	if err != nil {
		return day
	}
	today, _ := domain.ParseDay(domain.DayKey(now))
	if t.Equal(today) {
		return "today"
	}
	return fmt.Sprintf("%s (%s)", day, humanize.RelTime(t, today, "ago", "from now"))
}

// CategoryBadges lists earned category badges in display order.
func CategoryBadges(p *domain.Profile) []BadgeRow {
	var rows []BadgeRow
	for _, c := range domain.Categories {
		b, ok := p.Badges[c]
		if !ok || b.Tier == domain.TierNone {
			continue
		}
		award := reward.BadgeFor(c, b.Tier)
		rows = append(rows, BadgeRow{
			Label:  categoryLabel(c),
			Tier:   b.Tier.String(),
			Title:  award.Title,
			Flavor: award.Flavor,
			Earned: b.EarnedOn,
		})
	}
	return rows
}

// LadderBadges lists unlocked XP ladder rungs in ascending order.
func LadderBadges(p *domain.Profile) []BadgeRow {
	var rows []BadgeRow
	for _, t := range domain.Tiers {
		earned, ok := p.XPBadges[t]
		if !ok {
			continue
		}
		award := reward.BadgeFor("", t)
		rows = append(rows, BadgeRow{
			Label:  fmt.Sprintf("%d XP", reward.LadderThreshold(t)),
			Tier:   t.String(),
			Title:  award.Title,
			Flavor: award.Flavor,
			Earned: earned,
		})
	}
	return rows
}

var categoryLabels = map[domain.Category]string{
	domain.CatHydration: "💧 Hydration",
	domain.CatFruit:     "🍎 Fruit",
	domain.CatProtein:   "🥚 Protein",
	domain.CatSchool:    "📚 School work",
	domain.CatOutdoor:   "⚽ Outdoor play",
	domain.CatIndoor:    "🎨 Indoor play",
	domain.CatExam:      "📝 Exam prep",
}

func categoryLabel(c domain.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

const summaryTemplate = `# {{ .Name }}'s day · {{ .Day }}

## 💧 Water

Target **{{ .Target.ML }} ml** ({{ printf "%.2f" .Target.Liters }} L) = **{{ .Target.Glasses }} glasses** of {{ .Target.GlassML }} ml.
Drunk **{{ .Glasses }}/{{ .Target.Glasses }}** ({{ .HydrationPct }}%).

## ✅ Checklist ({{ .Hits }}/{{ .HitsTotal }})

| Activity | Today |
|:---|:---|
| Fruit | {{ if .Fruits }}{{ range $i, $f := .Fruits }}{{ if $i }}, {{ end }}{{ $f.Name }}{{ end }}{{ else }}-{{ end }} |
| Protein | {{ or .Protein "-" }} |
| School work | {{ if .SchoolWork }}done{{ else }}-{{ end }} |
| Outdoor | {{ or .Outdoor "-" }} |
| Indoor | {{ or .Indoor "-" }} |
| Exam prep | {{ .ExamMin }} min |
| Screen | create {{ .Screen.Create }} · fun {{ .Screen.Fun }}{{ if .Screen.Limit }} · limit {{ .Screen.Limit }}{{ end }}{{ if .OverLimit }} ⏰ over limit{{ end }} |
{{- if .Fruits }}

{{ range .Fruits }}
- 🍓 **{{ .Name }}**: {{ .Benefit }}
{{- end }}
{{- end }}

{{ if .Completed }}🎉 **Day complete!**{{ else if .Eligible }}👉 Ready to finish the day: run ` + "`bachpan finish`" + `.{{ else }}Drink all your glasses and finish two more activities to complete the day.{{ end }}

## 🏆 Progress

- **{{ .XP }} XP** · level {{ .Level }} ({{ .LevelPct }}%, {{ .ToNext }} XP to next)
- Streak: {{ if .StreakOrdinal }}{{ .StreakOrdinal }} day in a row{{ else }}none yet{{ end }} · longest {{ .Longest }}
- Last completed: {{ .LastCompleted }}
{{- if .Badges }}

| Badge | Tier | Title |
|:---|:---|:---|
{{- range .Badges }}
| {{ .Label }} | {{ .Tier }} | {{ .Title }} |
{{- end }}
{{- end }}
{{- if .Ladder }}

| Stars | Tier | Title |
|:---|:---|:---|
{{- range .Ladder }}
| {{ .Label }} | {{ .Tier }} | {{ .Title }} |
{{- end }}
{{- end }}
`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// DaySummary renders a day summary as markdown.
func DaySummary(s Summary) (string, error) {
	var b strings.Builder
	if err := summaryTmpl.Execute(&b, s); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return b.String(), nil
}
