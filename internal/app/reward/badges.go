package reward

import (
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// ─── Category Tiers ─────────────────────────────────────────────────────────

// HydrationTier maps drunk/target to a tier at 0.25, 0.50, 0.80 and 1.00.
func HydrationTier(ratio float64) domain.Tier {
	switch {
	case ratio >= 1.0:
		return domain.TierLegend
	case ratio >= 0.80:
		return domain.TierGold
	case ratio >= 0.50:
		return domain.TierSilver
	case ratio >= 0.25:
		return domain.TierBronze
	default:
		return domain.TierNone
	}
}

// CountTier maps an item count to a tier: 1 Bronze, 2 Silver, 3 Gold, 4+ Legend.
func CountTier(n int) domain.Tier {
	switch {
	case n >= 4:
		return domain.TierLegend
	case n <= 0:
		return domain.TierNone
	default:
		return domain.Tier(n)
	}
}

// ExamTier maps exam minutes to a tier in 20-minute bands. Zero minutes
// earns nothing.
func ExamTier(minutes int) domain.Tier {
	switch {
	case minutes <= 0:
		return domain.TierNone
	case minutes < 20:
		return domain.TierBronze
	case minutes < 40:
		return domain.TierSilver
	case minutes < 60:
		return domain.TierGold
	default:
		return domain.TierLegend
	}
}

// CategoryTiers is the snapshot of tiers earned by a day's data. Categories
// without a tier are omitted.
func CategoryTiers(day *domain.DayRecord) map[domain.Category]domain.Tier {
	ratio := float64(day.Water.Glasses) / float64(max(1, day.Water.TargetGlasses))
	all := map[domain.Category]domain.Tier{
		domain.CatHydration: HydrationTier(ratio),
		domain.CatFruit:     CountTier(len(day.Fruit.Items)),
		domain.CatProtein:   CountTier(len(day.Protein.Items)),
		domain.CatOutdoor:   CountTier(len(day.Outdoor)),
		domain.CatIndoor:    CountTier(len(day.Indoor)),
		domain.CatExam:      ExamTier(day.ExamMin),
	}
	if day.SchoolWork {
		all[domain.CatSchool] = domain.TierBronze
	}
	out := make(map[domain.Category]domain.Tier, len(all))
	for c, t := range all {
		if t != domain.TierNone {
			out[c] = t
		}
	}
	return out
}

// EvaluateBadges raises the profile's recorded tier in every category where
// today's snapshot is higher, stamping the earn date. Recorded tiers never
// go down. It returns the raised badges in display order; calling it again
// on the same state returns nothing.
func EvaluateBadges(p *domain.Profile, day *domain.DayRecord, today time.Time) []domain.BadgeAward {
	snapshot := CategoryTiers(day)
	var raised []domain.BadgeAward
	for _, c := range domain.Categories {
		t, ok := snapshot[c]
		if !ok || t <= p.Badges[c].Tier {
			continue
		}
		p.Badges[c] = domain.Badge{Tier: t, EarnedOn: domain.DayKey(today)}
		raised = append(raised, BadgeFor(c, t))
	}
	return raised
}

// ─── XP Ladder ──────────────────────────────────────────────────────────────

// LadderStep is the cumulative XP between ladder rungs.
const LadderStep int64 = 100

// LadderThreshold returns the XP needed for a ladder rung.
func LadderThreshold(t domain.Tier) int64 {
	return LadderStep * int64(t)
}

// EvaluateLadder unlocks every XP ladder rung the profile has crossed and
// returns the newly unlocked ones. The ladder is independent of category
// badges.
func EvaluateLadder(p *domain.Profile, today time.Time) []domain.BadgeAward {
	var unlocked []domain.BadgeAward
	for _, t := range domain.Tiers {
		if p.XP < LadderThreshold(t) {
			break
		}
		if _, ok := p.XPBadges[t]; ok {
			continue
		}
		p.XPBadges[t] = domain.DayKey(today)
		unlocked = append(unlocked, BadgeFor("", t))
	}
	return unlocked
}

// NextLadderTier returns the lowest rung not yet unlocked, or TierNone when
// the ladder is complete.
func NextLadderTier(p *domain.Profile) domain.Tier {
	for _, t := range domain.Tiers {
		if _, ok := p.XPBadges[t]; !ok {
			return t
		}
	}
	return domain.TierNone
}
