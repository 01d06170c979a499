package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
)

// ─── Effects ────────────────────────────────────────────────────────────────

// Effects renders what one action changed.
func Effects(fx reward.Effects) string {
	var b strings.Builder
	if fx.Cheer != "" {
		fmt.Fprintf(&b, "%s\n\n", fx.Cheer)
	}
	if fx.XPDelta > 0 {
		fmt.Fprintf(&b, "**+%d XP** · total %d XP · level %d\n", fx.XPDelta, fx.XP, fx.Level)
	} else {
		fmt.Fprintf(&b, "Total %d XP · level %d\n", fx.XP, fx.Level)
	}
	if fx.LevelUp {
		fmt.Fprintf(&b, "\n⬆️ **Level up!** You reached level %d.\n", fx.Level)
	}
	for _, a := range fx.Badges {
		fmt.Fprintf(&b, "\n🏅 **%s** (%s %s): %s\n", a.Title, a.Tier, categoryLabel(a.Category), a.Flavor)
	}
	for _, a := range fx.Ladder {
		fmt.Fprintf(&b, "\n⭐ **%s** unlocked: %s\n", a.Title, a.Flavor)
	}
	if fx.Completed {
		fmt.Fprintf(&b, "\n🔥 Streak: %s day in a row!\n", humanize.Ordinal(fx.Streak))
	}
	return b.String()
}

// ─── History ────────────────────────────────────────────────────────────────

// History renders every stored day, oldest first.
func History(p *domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s's history\n\n", p.Name)
	if len(p.Days) == 0 {
		b.WriteString("No days logged yet.\n")
		return b.String()
	}
	b.WriteString("| Date | Water | Checklist | Exam | Done |\n")
	b.WriteString("|:---|---:|---:|---:|:---:|\n")
	for _, key := range p.DayKeys() {
		d := p.Days[key]
		done := ""
		if d.Completed {
			done = "✅"
		}
		fmt.Fprintf(&b, "| %s | %d/%d | %d/%d | %d min | %s |\n",
			key, d.Water.Glasses, d.Water.TargetGlasses,
			d.ActivityHits(), domain.ActivityTotal, d.ExamMin, done)
	}
	fmt.Fprintf(&b, "\n%s XP · streak %d · longest %d\n", humanize.Comma(p.XP), p.Streak, p.LongestStreak)
	return b.String()
}

// Events renders journal entries, newest first.
func Events(events []domain.XPEvent, now time.Time) string {
	if len(events) == 0 {
		return "No XP events yet.\n"
	}
	var b strings.Builder
	b.WriteString("| When | Day | Action | XP | Total |\n")
	b.WriteString("|:---|:---|:---|---:|---:|\n")
	for _, e := range events {
		when := humanize.RelTime(time.Unix(e.At, 0), now, "ago", "from now")
		fmt.Fprintf(&b, "| %s | %s | %s | +%d | %d |\n", when, e.Day, e.Kind, e.Delta, e.XPAfter)
	}
	return b.String()
}

// ─── CSV Export ─────────────────────────────────────────────────────────────

var csvHeader = []string{
	"date", "child", "completed", "total", "percent",
	"Hydration", "Fruit", "Protein", "School work", "Outdoor play", "Indoor play", "Exam prep",
	"glasses", "target_glasses", "exam_min", "day_complete",
}

// WriteCSV writes one row per stored day: the checklist hits out of the
// activity total, a Yes/No column per activity and the raw counters.
func WriteCSV(w io.Writer, p *domain.Profile) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, key := range p.DayKeys() {
		d := p.Days[key]
		hits := d.ActivityHits()
		percent := int(math.Round(float64(hits) / float64(domain.ActivityTotal) * 100))
		row := []string{
			key, p.Name, strconv.Itoa(hits), strconv.Itoa(domain.ActivityTotal), strconv.Itoa(percent),
			yesNo(d.HydrationMet()),
			yesNo(len(d.Fruit.Items) > 0),
			yesNo(len(d.Protein.Items) > 0),
			yesNo(d.SchoolWork),
			yesNo(len(d.Outdoor) > 0),
			yesNo(len(d.Indoor) > 0),
			yesNo(d.ExamMin >= 10),
			strconv.Itoa(d.Water.Glasses),
			strconv.Itoa(d.Water.TargetGlasses),
			strconv.Itoa(d.ExamMin),
			yesNo(d.Completed),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
