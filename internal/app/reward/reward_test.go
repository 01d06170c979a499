package reward_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bachpan-balance/bachpan/internal/app/reward"
	"github.com/bachpan-balance/bachpan/internal/domain"
)

var today = time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)

// newDay returns a profile and today's record with a 5-glass target.
func newDay(t *testing.T) (*domain.Profile, *domain.DayRecord) {
	t.Helper()
	p := domain.NewProfile("Imad", today)
	day := p.Day(domain.DayKey(today))
	day.Water.TargetGlasses = 5
	day.Water.TargetML = 1200
	return p, day
}

func apply(t *testing.T, p *domain.Profile, day *domain.DayRecord, a domain.Action) int64 {
	t.Helper()
	delta, err := reward.ApplyAction(p, day, a, today)
	if err != nil {
		t.Fatalf("ApplyAction(%s): %v", a.Kind, err)
	}
	return delta
}

// ═══════════════════════════════════════════════════════════════════════════
// XP Award Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestXPFor(t *testing.T) {
	tests := []struct {
		kind domain.ActionKind
		want int64
	}{
		{domain.ActionWater, 5},
		{domain.ActionFruit, 8},
		{domain.ActionProtein, 8},
		{domain.ActionSchool, 10},
		{domain.ActionOutdoor, 10},
		{domain.ActionIndoor, 8},
		{domain.ActionExam, 2},
		{domain.ActionScreen, 4},
		{domain.ActionFinish, 30},
		{"dance_party", 1},
	}
	for _, tt := range tests {
		if got := reward.XPFor(tt.kind); got != tt.want {
			t.Errorf("XPFor(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestApplyAction_Water(t *testing.T) {
	p, day := newDay(t)

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionWater}); d != 5 {
		t.Errorf("one glass delta = %d, want 5", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionWater, Count: 3}); d != 15 {
		t.Errorf("three glasses delta = %d, want 15", d)
	}
	if day.Water.Glasses != 4 {
		t.Errorf("glasses = %d, want 4", day.Water.Glasses)
	}
	if p.XP != 20 {
		t.Errorf("xp = %d, want 20", p.XP)
	}
}

func TestApplyAction_FruitOnce(t *testing.T) {
	p, day := newDay(t)

	d := apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"Apple"}})
	if d != 8 || p.XP != 8 {
		t.Errorf("delta = %d xp = %d, want 8 and 8", d, p.XP)
	}
}

func TestApplyAction_SameFruitTwice(t *testing.T) {
	p, day := newDay(t)

	apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"Apple"}})
	apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"apple"}})

	if p.XP != 16 {
		t.Errorf("xp = %d, want 16", p.XP)
	}
	if got := day.Fruit.Items; len(got) != 2 || got[0] != "Apple" || got[1] != "Apple" {
		t.Errorf("fruit items = %v, want [Apple Apple]", got)
	}
	reward.EvaluateBadges(p, day, today)
	if got := p.Badges[domain.CatFruit].Tier; got != domain.TierSilver {
		t.Errorf("fruit tier = %s, want Silver", got)
	}
}

func TestApplyAction_FruitOther(t *testing.T) {
	p, day := newDay(t)

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Other: "  Dragonfruit "}); d != 8 {
		t.Errorf("other fruit delta = %d, want 8", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"Other"}, Other: "   "}); d != 0 {
		t.Errorf("blank other fruit delta = %d, want 0", d)
	}
	if got := day.Fruit.Items; len(got) != 1 || got[0] != "Dragonfruit" {
		t.Errorf("fruit items = %v, want [Dragonfruit]", got)
	}
}

func TestApplyAction_Protein(t *testing.T) {
	p, day := newDay(t)

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionProtein, Items: []string{"Egg", "paneer"}}); d != 8 {
		t.Errorf("protein delta = %d, want 8", d)
	}
	apply(t, p, day, domain.Action{Kind: domain.ActionProtein, Items: []string{"Egg", "Chickpeas"}})
	if got := day.Protein.Items; len(got) != 3 {
		t.Errorf("protein items = %v, want set of 3", got)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionProtein, Items: []string{"Pizza"}}); d != 0 {
		t.Errorf("off-catalog protein delta = %d, want 0", d)
	}
	if p.XP != 16 {
		t.Errorf("xp = %d, want 16", p.XP)
	}
}

func TestApplyAction_SchoolAwardedOnce(t *testing.T) {
	p, day := newDay(t)

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionSchool, Done: true}); d != 10 {
		t.Errorf("first school delta = %d, want 10", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionSchool, Done: true}); d != 0 {
		t.Errorf("repeat school delta = %d, want 0", d)
	}
	apply(t, p, day, domain.Action{Kind: domain.ActionSchool, Done: false})
	if !day.SchoolWork {
		t.Error("schoolwork should stay done")
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionSchool, Done: true}); d != 0 {
		t.Errorf("school after toggle delta = %d, want 0", d)
	}
}

func TestApplyAction_OutdoorIndoor(t *testing.T) {
	p, day := newDay(t)

	d := apply(t, p, day, domain.Action{
		Kind:  domain.ActionOutdoor,
		Items: []string{"cricket", "Other", "Moonwalk"},
		Other: "Kabaddi",
	})
	if d != 10 {
		t.Errorf("outdoor delta = %d, want 10", d)
	}
	if got := day.Outdoor; len(got) != 2 || got[0] != "Cricket" || got[1] != "Kabaddi" {
		t.Errorf("outdoor = %v, want [Cricket Kabaddi]", got)
	}

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionIndoor, Items: []string{"Chess"}}); d != 8 {
		t.Errorf("indoor delta = %d, want 8", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionIndoor}); d != 0 {
		t.Errorf("empty indoor delta = %d, want 0", d)
	}
	if len(day.Indoor) != 0 {
		t.Errorf("indoor = %v, want cleared", day.Indoor)
	}
}

func TestApplyAction_ExamPositiveDeltaOnly(t *testing.T) {
	p, day := newDay(t)
	day.ExamMin = 10

	if d := apply(t, p, day, domain.Action{Kind: domain.ActionExam, Minutes: 25}); d != 6 {
		t.Errorf("10→25 delta = %d, want 6", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionExam, Minutes: 5}); d != 0 {
		t.Errorf("25→5 delta = %d, want 0", d)
	}
	if day.ExamMin != 5 {
		t.Errorf("exam minutes = %d, want 5", day.ExamMin)
	}
	if p.XP != 6 {
		t.Errorf("xp = %d, want 6 (no claw-back)", p.XP)
	}
}

func TestApplyAction_ExamClamped(t *testing.T) {
	p, day := newDay(t)

	apply(t, p, day, domain.Action{Kind: domain.ActionExam, Minutes: 500})
	if day.ExamMin != reward.ExamMaxMinutes {
		t.Errorf("exam minutes = %d, want %d", day.ExamMin, reward.ExamMaxMinutes)
	}
	apply(t, p, day, domain.Action{Kind: domain.ActionExam, Minutes: -20})
	if day.ExamMin != 0 {
		t.Errorf("exam minutes = %d, want 0", day.ExamMin)
	}
}

func TestApplyAction_Screen(t *testing.T) {
	p, day := newDay(t)

	d := apply(t, p, day, domain.Action{Kind: domain.ActionScreen, Minutes: 25, Fun: 40, Limit: 60})
	if d != 8 {
		t.Errorf("0→25 create delta = %d, want 8", d)
	}
	if !day.Screen.OverLimit() {
		t.Error("25+40 > 60 should be over limit")
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionScreen, Minutes: 10, Limit: 60}); d != 0 {
		t.Errorf("decrease delta = %d, want 0", d)
	}
	if day.Screen.Create != 10 || day.Screen.OverLimit() {
		t.Errorf("screen = %+v, want create 10 within limit", day.Screen)
	}
}

func TestApplyAction_UnknownKind(t *testing.T) {
	p, day := newDay(t)
	if d := apply(t, p, day, domain.Action{Kind: "cartwheel"}); d != 1 {
		t.Errorf("unknown kind delta = %d, want 1", d)
	}
}

func TestIncrementXP(t *testing.T) {
	tests := []struct {
		prev, next, step int
		want             int64
	}{
		{0, 4, 5, 0},
		{0, 5, 5, 2},
		{10, 25, 5, 6},
		{25, 5, 5, 0},
		{0, 29, 10, 8},
		{3, 3, 5, 0},
		{0, 10, 0, 0},
	}
	for _, tt := range tests {
		unit := int64(2)
		if tt.step == 10 {
			unit = 4
		}
		if got := reward.IncrementXP(tt.prev, tt.next, tt.step, unit); got != tt.want {
			t.Errorf("IncrementXP(%d, %d, %d) = %d, want %d", tt.prev, tt.next, tt.step, got, tt.want)
		}
	}
}

func TestXPNeverDecreases(t *testing.T) {
	p, day := newDay(t)
	actions := []domain.Action{
		{Kind: domain.ActionExam, Minutes: 60},
		{Kind: domain.ActionExam, Minutes: 0},
		{Kind: domain.ActionScreen, Minutes: 90},
		{Kind: domain.ActionScreen, Minutes: 0},
		{Kind: domain.ActionOutdoor, Items: []string{"Running"}},
		{Kind: domain.ActionOutdoor},
		{Kind: domain.ActionSchool, Done: false},
		{Kind: domain.ActionFinish},
	}
	prev := p.XP
	for _, a := range actions {
		_, _ = reward.ApplyAction(p, day, a, today)
		if p.XP < prev {
			t.Fatalf("xp decreased after %s: %d < %d", a.Kind, p.XP, prev)
		}
		prev = p.XP
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Badge Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestHydrationTier(t *testing.T) {
	tests := []struct {
		ratio float64
		want  domain.Tier
	}{
		{0, domain.TierNone},
		{0.2499, domain.TierNone},
		{0.25, domain.TierBronze},
		{0.49, domain.TierBronze},
		{0.50, domain.TierSilver},
		{0.79999, domain.TierSilver},
		{0.80, domain.TierGold},
		{4.0 / 5.0, domain.TierGold},
		{0.99, domain.TierGold},
		{1.0, domain.TierLegend},
		{1.6, domain.TierLegend},
	}
	for _, tt := range tests {
		if got := reward.HydrationTier(tt.ratio); got != tt.want {
			t.Errorf("HydrationTier(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}

func TestCountTier(t *testing.T) {
	want := []domain.Tier{domain.TierNone, domain.TierBronze, domain.TierSilver, domain.TierGold, domain.TierLegend, domain.TierLegend}
	for n, w := range want {
		if got := reward.CountTier(n); got != w {
			t.Errorf("CountTier(%d) = %s, want %s", n, got, w)
		}
	}
}

func TestExamTier(t *testing.T) {
	tests := []struct {
		minutes int
		want    domain.Tier
	}{
		{0, domain.TierNone},
		{1, domain.TierBronze},
		{19, domain.TierBronze},
		{20, domain.TierSilver},
		{39, domain.TierSilver},
		{40, domain.TierGold},
		{59, domain.TierGold},
		{60, domain.TierLegend},
		{180, domain.TierLegend},
	}
	for _, tt := range tests {
		if got := reward.ExamTier(tt.minutes); got != tt.want {
			t.Errorf("ExamTier(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}

func TestCategoryTiers_Snapshot(t *testing.T) {
	_, day := newDay(t)
	day.Water.Glasses = 4
	day.Fruit.Items = []string{"Apple", "Kiwi", "Pear"}
	day.SchoolWork = true
	day.ExamMin = 45

	got := reward.CategoryTiers(day)
	want := map[domain.Category]domain.Tier{
		domain.CatHydration: domain.TierGold,
		domain.CatFruit:     domain.TierGold,
		domain.CatSchool:    domain.TierBronze,
		domain.CatExam:      domain.TierGold,
	}
	if len(got) != len(want) {
		t.Fatalf("CategoryTiers = %v, want %v", got, want)
	}
	for c, w := range want {
		if got[c] != w {
			t.Errorf("tier[%s] = %s, want %s", c, got[c], w)
		}
	}
}

func TestEvaluateBadges_HighWaterMark(t *testing.T) {
	p, day := newDay(t)
	day.Outdoor = []string{"Football", "Cricket", "Cycling"}

	raised := reward.EvaluateBadges(p, day, today)
	if len(raised) != 1 || raised[0].Category != domain.CatOutdoor || raised[0].Tier != domain.TierGold {
		t.Fatalf("raised = %+v, want outdoor Gold", raised)
	}
	if raised[0].Title == "" || raised[0].Flavor == "" {
		t.Error("raised badge should carry title and flavor")
	}
	if got := p.Badges[domain.CatOutdoor].EarnedOn; got != "2025-01-02" {
		t.Errorf("earned on = %q, want 2025-01-02", got)
	}

	day.Outdoor = []string{"Football"}
	if again := reward.EvaluateBadges(p, day, today); len(again) != 0 {
		t.Errorf("lower snapshot raised %+v", again)
	}
	if got := p.Badges[domain.CatOutdoor].Tier; got != domain.TierGold {
		t.Errorf("outdoor tier = %s, want Gold kept", got)
	}
}

func TestEvaluateBadges_Idempotent(t *testing.T) {
	p, day := newDay(t)
	day.Water.Glasses = 5
	day.Protein.Items = []string{"Egg"}

	first := reward.EvaluateBadges(p, day, today)
	second := reward.EvaluateBadges(p, day, today)
	if len(first) != 2 {
		t.Errorf("first evaluation raised %d, want 2", len(first))
	}
	if len(second) != 0 {
		t.Errorf("second evaluation raised %d, want 0", len(second))
	}
}

func TestEvaluateLadder(t *testing.T) {
	p, _ := newDay(t)

	p.XP = 99
	if got := reward.EvaluateLadder(p, today); len(got) != 0 {
		t.Errorf("99 XP unlocked %+v", got)
	}

	p.XP = 250
	got := reward.EvaluateLadder(p, today)
	if len(got) != 2 || got[0].Tier != domain.TierBronze || got[1].Tier != domain.TierSilver {
		t.Fatalf("250 XP unlocked %+v, want Bronze and Silver", got)
	}
	if got[0].Category != "" {
		t.Errorf("ladder badge category = %q, want empty", got[0].Category)
	}
	if again := reward.EvaluateLadder(p, today); len(again) != 0 {
		t.Errorf("repeat unlocked %+v", again)
	}

	p.XP = 1000
	if got := reward.EvaluateLadder(p, today); len(got) != 2 {
		t.Errorf("1000 XP unlocked %d more, want 2", len(got))
	}
	if len(p.XPBadges) != 4 {
		t.Errorf("xp badges = %v, want all four", p.XPBadges)
	}
}

func TestNextLadderTier(t *testing.T) {
	p, _ := newDay(t)
	if got := reward.NextLadderTier(p); got != domain.TierBronze {
		t.Errorf("NextLadderTier() = %s, want Bronze", got)
	}
	p.XP = 420
	reward.EvaluateLadder(p, today)
	if got := reward.NextLadderTier(p); got != domain.TierNone {
		t.Errorf("NextLadderTier() = %s, want none", got)
	}
}

func TestBadgeFor_EveryTierTitled(t *testing.T) {
	for _, c := range domain.Categories {
		tiers := domain.Tiers
		if c == domain.CatSchool {
			tiers = []domain.Tier{domain.TierBronze}
		}
		for _, tier := range tiers {
			b := reward.BadgeFor(c, tier)
			if b.Title == "" || b.Flavor == "" {
				t.Errorf("BadgeFor(%s, %s) missing text", c, tier)
			}
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Day Completion & Streak Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestEvaluateDayCompletion_Gate(t *testing.T) {
	_, day := newDay(t)
	day.Water.Glasses = 5
	day.Fruit.Items = []string{"Mango"}
	day.SchoolWork = true

	if !reward.EvaluateDayCompletion(day) {
		t.Error("fruit + schoolwork + hydration should allow completion")
	}

	day.Water.Glasses = 4
	if reward.EvaluateDayCompletion(day) {
		t.Error("hydration unmet should block completion")
	}

	day.Water.Glasses = 5
	day.SchoolWork = false
	day.ExamMin = 9
	if reward.EvaluateDayCompletion(day) {
		t.Error("9 exam minutes should not count as an activity")
	}
	day.ExamMin = 10
	if !reward.EvaluateDayCompletion(day) {
		t.Error("10 exam minutes should count as an activity")
	}
}

func TestCompleteDay_NotEligible(t *testing.T) {
	p, day := newDay(t)
	day.Water.Glasses = 5

	_, err := reward.CompleteDay(p, day, today)
	if !errors.Is(err, domain.ErrDayNotEligible) {
		t.Fatalf("err = %v, want ErrDayNotEligible", err)
	}
	if day.Completed || p.XP != 0 || p.Streak != 0 {
		t.Errorf("ineligible completion changed state: completed=%v xp=%d streak=%d", day.Completed, p.XP, p.Streak)
	}
}

func completable(t *testing.T) (*domain.Profile, *domain.DayRecord) {
	t.Helper()
	p, day := newDay(t)
	day.Water.Glasses = 5
	day.Fruit.Items = []string{"Guava"}
	day.Indoor = []string{"Chess"}
	return p, day
}

func TestCompleteDay_BonusOnce(t *testing.T) {
	p, day := completable(t)

	for i := 0; i < 3; i++ {
		if _, err := reward.CompleteDay(p, day, today); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	if p.XP != reward.XPDayComplete {
		t.Errorf("xp = %d, want %d once", p.XP, reward.XPDayComplete)
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
	if !day.Completed {
		t.Error("day should be completed")
	}
}

func TestCompleteDay_Streak(t *testing.T) {
	tests := []struct {
		name   string
		last   string
		streak int
		today  time.Time
		want   int
	}{
		{"consecutive", "2025-01-01", 4, time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC), 5},
		{"gap resets", "2025-01-01", 4, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC), 1},
		{"first ever", "", 0, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC), 1},
		{"same day resets", "2025-01-05", 3, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC), 1},
		{"month boundary", "2025-01-31", 2, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), 3},
		{"year boundary", "2024-12-31", 9, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), 10},
		{"garbage last", "yesterday", 7, time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, day := completable(t)
			p.LastCompletedDay = tt.last
			p.Streak = tt.streak

			got, err := reward.CompleteDay(p, day, tt.today)
			if err != nil {
				t.Fatalf("CompleteDay: %v", err)
			}
			if got != tt.want || p.Streak != tt.want {
				t.Errorf("streak = %d (profile %d), want %d", got, p.Streak, tt.want)
			}
			if p.LastCompletedDay != domain.DayKey(tt.today) {
				t.Errorf("last completed = %q, want %q", p.LastCompletedDay, domain.DayKey(tt.today))
			}
		})
	}
}

func TestCompleteDay_LongestPreserved(t *testing.T) {
	p, day := completable(t)
	p.Streak = 6
	p.LongestStreak = 6
	p.LastCompletedDay = "2024-12-01"

	_, _ = reward.CompleteDay(p, day, today)
	if p.Streak != 1 || p.LongestStreak != 6 {
		t.Errorf("streak=%d longest=%d, want 1 and 6", p.Streak, p.LongestStreak)
	}
}

func TestDayCompletion_EndToEnd(t *testing.T) {
	p, day := newDay(t)

	for i := 0; i < 5; i++ {
		apply(t, p, day, domain.Action{Kind: domain.ActionWater})
	}
	apply(t, p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"Banana"}})
	apply(t, p, day, domain.Action{Kind: domain.ActionSchool, Done: true})

	if hits := day.ActivityHits(); hits != 2 {
		t.Fatalf("activity hits = %d, want 2", hits)
	}
	if !reward.EvaluateDayCompletion(day) {
		t.Fatal("day should be completable")
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionFinish}); d != 30 {
		t.Errorf("finish delta = %d, want 30", d)
	}
	if d := apply(t, p, day, domain.Action{Kind: domain.ActionFinish}); d != 0 {
		t.Errorf("repeat finish delta = %d, want 0", d)
	}
	if p.XP != 25+8+10+30 {
		t.Errorf("xp = %d, want %d", p.XP, 25+8+10+30)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Reducer Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestApply_Effects(t *testing.T) {
	p, day := newDay(t)
	p.XP = 95

	fx, err := reward.Apply(p, day, domain.Action{Kind: domain.ActionFruit, Items: []string{"Kiwi"}}, today)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if fx.XPDelta != 8 || fx.XP != 103 {
		t.Errorf("delta=%d xp=%d, want 8 and 103", fx.XPDelta, fx.XP)
	}
	if len(fx.Badges) != 1 || fx.Badges[0].Category != domain.CatFruit {
		t.Errorf("badges = %+v, want fruit Bronze", fx.Badges)
	}
	if len(fx.Ladder) != 1 || fx.Ladder[0].Tier != domain.TierBronze {
		t.Errorf("ladder = %+v, want Bronze star", fx.Ladder)
	}
	if fx.Cheer == "" {
		t.Error("expected a cheer message")
	}
}

func TestApply_FinishNotEligible(t *testing.T) {
	p, day := newDay(t)

	fx, err := reward.Apply(p, day, domain.Action{Kind: domain.ActionFinish}, today)
	if !errors.Is(err, domain.ErrDayNotEligible) {
		t.Fatalf("err = %v, want ErrDayNotEligible", err)
	}
	if fx.XPDelta != 0 || fx.Completed {
		t.Errorf("effects = %+v, want no change", fx)
	}
}

func TestApply_FinishCompletes(t *testing.T) {
	p, day := completable(t)

	fx, err := reward.Apply(p, day, domain.Action{Kind: domain.ActionFinish}, today)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !fx.Completed || fx.Streak != 1 || fx.XPDelta != 30 {
		t.Errorf("effects = %+v, want completed streak 1 delta 30", fx)
	}

	fx, _ = reward.Apply(p, day, domain.Action{Kind: domain.ActionFinish}, today)
	if fx.Completed || fx.XPDelta != 0 {
		t.Errorf("repeat effects = %+v, want no-op", fx)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Level Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestLevelForXP(t *testing.T) {
	if got := reward.LevelForXP(0); got != 1 {
		t.Errorf("LevelForXP(0) = %d, want 1", got)
	}
	for level := 2; level <= 20; level++ {
		at := reward.XPForLevel(level)
		if got := reward.LevelForXP(at); got != level {
			t.Errorf("LevelForXP(%d) = %d, want %d", at, got, level)
		}
		if got := reward.LevelForXP(at - 1); got != level-1 {
			t.Errorf("LevelForXP(%d) = %d, want %d", at-1, got, level-1)
		}
	}
	if got := reward.LevelForXP(1 << 40); got != reward.MaxLevel {
		t.Errorf("LevelForXP(huge) = %d, want %d", got, reward.MaxLevel)
	}
}

func TestLevelProgress(t *testing.T) {
	if got := reward.LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %.1f, want 0", got)
	}
	next := reward.XPForLevel(2)
	if got := reward.LevelProgress(next / 2); got < 49 || got > 51 {
		t.Errorf("LevelProgress(half) = %.1f, want about 50", got)
	}
	if got := reward.XPToNextLevel(0); got != next {
		t.Errorf("XPToNextLevel(0) = %d, want %d", got, next)
	}
	if got := reward.XPToNextLevel(1 << 40); got != 0 {
		t.Errorf("XPToNextLevel(huge) = %d, want 0", got)
	}
}
