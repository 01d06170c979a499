// Package reward implements the Bachpan Balance reward ledger: experience
// points per logged action, per-category badge tiers, the XP badge ladder,
// day completion and the day-over-day streak.
//
// All functions mutate the profile and day record passed in and perform no
// I/O. Callers persist the result.
package reward

import (
	"strings"
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// XP awards per unit of each action kind.
const (
	XPWaterGlass  int64 = 5
	XPFruit       int64 = 8
	XPProtein     int64 = 8
	XPSchool      int64 = 10
	XPOutdoor     int64 = 10
	XPIndoor      int64 = 8
	XPExamPer5Min int64 = 2
	XPScreenPer10 int64 = 4
	XPDayComplete int64 = 30
	XPUnknownKind int64 = 1
)

// ExamMaxMinutes caps a day's recorded exam preparation.
const ExamMaxMinutes = 180

// XPFor returns the unit award for an action kind. Unknown kinds earn
// XPUnknownKind; that fallback is reachable by any caller inventing kinds.
func XPFor(kind domain.ActionKind) int64 {
	switch kind {
	case domain.ActionWater:
		return XPWaterGlass
	case domain.ActionFruit:
		return XPFruit
	case domain.ActionProtein:
		return XPProtein
	case domain.ActionSchool:
		return XPSchool
	case domain.ActionOutdoor:
		return XPOutdoor
	case domain.ActionIndoor:
		return XPIndoor
	case domain.ActionExam:
		return XPExamPer5Min
	case domain.ActionScreen:
		return XPScreenPer10
	case domain.ActionFinish:
		return XPDayComplete
	default:
		return XPUnknownKind
	}
}

// IncrementXP awards unit XP per whole step of positive growth from prev to
// next. A decrease awards nothing.
func IncrementXP(prev, next, step int, unit int64) int64 {
	if next <= prev || step <= 0 {
		return 0
	}
	return unit * int64((next-prev)/step)
}

// ApplyAction mutates day according to a and adds the award to p.XP. It
// returns the XP delta, which is never negative. ErrDayNotEligible is the
// only error, returned for a day_complete action whose gate is not met.
func ApplyAction(p *domain.Profile, day *domain.DayRecord, a domain.Action, today time.Time) (int64, error) {
	var delta int64

	switch a.Kind {
	case domain.ActionWater:
		n := max(1, a.Count)
		day.Water.Glasses += n
		delta = XPWaterGlass * int64(n)

	case domain.ActionFruit:
		for _, item := range fruitItems(a) {
			day.Fruit.Items = append(day.Fruit.Items, item)
			delta += XPFruit
		}

	case domain.ActionProtein:
		sel := domain.Selection(domain.ProteinOptions, a.Items, "")
		if len(sel) > 0 {
			day.Protein.Items = union(day.Protein.Items, sel)
			delta = XPProtein
		}

	case domain.ActionSchool:
		// One-way within a day so the bonus cannot be farmed by toggling.
		if a.Done && !day.SchoolWork {
			day.SchoolWork = true
			delta = XPSchool
		}

	case domain.ActionOutdoor:
		day.Outdoor = domain.Selection(domain.OutdoorOptions, a.Items, a.Other)
		if len(day.Outdoor) > 0 {
			delta = XPOutdoor
		}

	case domain.ActionIndoor:
		day.Indoor = domain.Selection(domain.IndoorOptions, a.Items, a.Other)
		if len(day.Indoor) > 0 {
			delta = XPIndoor
		}

	case domain.ActionExam:
		m := min(max(0, a.Minutes), ExamMaxMinutes)
		delta = IncrementXP(day.ExamMin, m, 5, XPExamPer5Min)
		day.ExamMin = m

	case domain.ActionScreen:
		create := max(0, a.Minutes)
		delta = IncrementXP(day.Screen.Create, create, 10, XPScreenPer10)
		day.Screen = domain.Screen{Create: create, Fun: max(0, a.Fun), Limit: max(0, a.Limit)}

	case domain.ActionFinish:
		before := p.XP
		if _, err := CompleteDay(p, day, today); err != nil {
			return 0, err
		}
		return p.XP - before, nil

	default:
		delta = XPUnknownKind
	}

	p.XP += delta
	return delta, nil
}

// fruitItems returns the fruits named by a fruit action. Catalog names are
// normalized to catalog spelling; the Other placeholder yields a.Other.
func fruitItems(a domain.Action) []string {
	var out []string
	names := a.Items
	if len(names) == 0 {
		names = []string{domain.OtherOption}
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if strings.EqualFold(n, domain.OtherOption) {
			n = strings.TrimSpace(a.Other)
		} else if known, ok := fruitName(n); ok {
			n = known
		}
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func fruitName(s string) (string, bool) {
	for name := range domain.FruitBenefits {
		if strings.EqualFold(name, s) {
			return name, true
		}
	}
	return "", false
}

// union appends the members of add missing from have, preserving order.
func union(have, add []string) []string {
	seen := make(map[string]bool, len(have))
	for _, h := range have {
		seen[h] = true
	}
	for _, a := range add {
		if !seen[a] {
			seen[a] = true
			have = append(have, a)
		}
	}
	return have
}
