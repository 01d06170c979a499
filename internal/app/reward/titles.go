package reward

import (
	"fmt"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

type titleKey struct {
	cat  domain.Category
	tier domain.Tier
}

type title struct {
	name, flavor string
}

// badgeTitles is the static (category, tier) lookup shown to the child.
// The empty category holds the XP ladder.
var badgeTitles = map[titleKey]title{
	{domain.CatHydration, domain.TierBronze}: {"Water Sprout", "A quarter of your water is done. Keep sipping!"},
	{domain.CatHydration, domain.TierSilver}: {"Splash Buddy", "Halfway to your water goal."},
	{domain.CatHydration, domain.TierGold}:   {"River Runner", "Almost there, your body thanks you."},
	{domain.CatHydration, domain.TierLegend}: {"Ocean Hero", "Every glass done today!"},

	{domain.CatFruit, domain.TierBronze}: {"Fruit Taster", "One fruit a day keeps you bright."},
	{domain.CatFruit, domain.TierSilver}: {"Fruit Friend", "Two fruits, double the vitamins."},
	{domain.CatFruit, domain.TierGold}:   {"Fruit Explorer", "Three colours on your plate."},
	{domain.CatFruit, domain.TierLegend}: {"Fruit Legend", "A whole fruit basket today!"},

	{domain.CatProtein, domain.TierBronze}: {"Muscle Starter", "Protein helps you grow strong."},
	{domain.CatProtein, domain.TierSilver}: {"Power Eater", "Two kinds of protein, great mix."},
	{domain.CatProtein, domain.TierGold}:   {"Strong Builder", "Your muscles are cheering."},
	{domain.CatProtein, domain.TierLegend}: {"Protein Legend", "Champion food choices today!"},

	{domain.CatSchool, domain.TierBronze}: {"Homework Hero", "School work finished. Fantastic!"},

	{domain.CatOutdoor, domain.TierBronze}: {"Sunshine Player", "Fresh air makes you happy."},
	{domain.CatOutdoor, domain.TierSilver}: {"Field Runner", "Two outdoor games, so active!"},
	{domain.CatOutdoor, domain.TierGold}:   {"Park Champion", "Three ways to play outside."},
	{domain.CatOutdoor, domain.TierLegend}: {"Outdoor Legend", "You own the playground!"},

	{domain.CatIndoor, domain.TierBronze}: {"Creative Spark", "Indoor play grows imagination."},
	{domain.CatIndoor, domain.TierSilver}: {"Idea Maker", "Two creative activities today."},
	{domain.CatIndoor, domain.TierGold}:   {"Little Artist", "So many things made today."},
	{domain.CatIndoor, domain.TierLegend}: {"Indoor Legend", "A full day of creativity!"},

	{domain.CatExam, domain.TierBronze}: {"Study Starter", "Every minute of learning counts."},
	{domain.CatExam, domain.TierSilver}: {"Focus Friend", "Twenty minutes of focus!"},
	{domain.CatExam, domain.TierGold}:   {"Brain Builder", "Forty minutes, brilliant effort."},
	{domain.CatExam, domain.TierLegend}: {"Exam Legend", "A full hour of study!"},

	{"", domain.TierBronze}: {"Bronze Star", "Your first 100 XP!"},
	{"", domain.TierSilver}: {"Silver Star", "200 XP of healthy habits."},
	{"", domain.TierGold}:   {"Gold Star", "300 XP, shining bright."},
	{"", domain.TierLegend}: {"Legend Star", "400 XP. You are a Bachpan Balance legend!"},
}

// BadgeFor returns the badge with its title and flavor text. Pairs missing
// from the table get a generic title.
func BadgeFor(c domain.Category, t domain.Tier) domain.BadgeAward {
	b := domain.BadgeAward{Category: c, Tier: t}
	if tt, ok := badgeTitles[titleKey{c, t}]; ok {
		b.Title, b.Flavor = tt.name, tt.flavor
		return b
	}
	b.Title = fmt.Sprintf("%s %s", t, c)
	b.Flavor = "Well done!"
	return b
}

// Cheer returns the encouragement shown after an action. For fruit the
// last logged fruit's benefit is included.
func Cheer(kind domain.ActionKind, day *domain.DayRecord) string {
	switch kind {
	case domain.ActionWater:
		return "💦 Keep going! Hydration makes you strong!"
	case domain.ActionFruit:
		if n := len(day.Fruit.Items); n > 0 {
			last := day.Fruit.Items[n-1]
			return fmt.Sprintf("🎉 %s: %s", last, domain.FruitBenefit(last))
		}
		return ""
	case domain.ActionProtein:
		return "💪 Strong muscles need protein!"
	case domain.ActionSchool:
		return "🏅 Fantastic! You worked hard today!"
	case domain.ActionOutdoor:
		return "🌞 Amazing! Outdoor play makes you stronger and healthier!"
	case domain.ActionIndoor:
		return "🎨 Awesome! Indoor play boosts your creativity and imagination!"
	case domain.ActionExam:
		if day.ExamMin > 0 {
			return "🏆 Champion work! Daily learning builds a brighter, stronger you, not just for exams!"
		}
		return ""
	case domain.ActionScreen:
		if day.Screen.OverLimit() {
			return "⏰ Screen time is over today's limit. Time for a break!"
		}
		return "📺 Screen time saved."
	case domain.ActionFinish:
		return "🎉 You completed your day!"
	default:
		return ""
	}
}
