package domain

import "strings"

// ─── Catalogs ───────────────────────────────────────────────────────────────

// OtherOption is the placeholder selection that enables free text.
const OtherOption = "Other"

// FruitBenefits maps catalog fruits to a one-line benefit.
var FruitBenefits = map[string]string{
	"Apple":         "Good for heart, fiber for digestion.",
	"Banana":        "Boosts energy and helps digestion.",
	"Orange":        "Vitamin C for immunity.",
	"Mango":         "Vitamin A for eyes.",
	"Grapes":        "Antioxidants for cells.",
	"Pomegranate":   "Iron and antioxidants.",
	"Papaya":        "Great for tummy health.",
	"Guava":         "High in Vitamin C.",
	"Strawberry":    "Good for skin and heart.",
	"Kiwi":          "Boosts immunity.",
	"Litchi":        "Vitamin C & energy.",
	"Pineapple":     "Digestive enzymes inside.",
	"Watermelon":    "Hydrating and refreshing.",
	"Custard Apple": "Energy booster.",
	"Plums":         "Rich in antioxidants.",
	"Maskmelon":     "Vitamin A & hydration.",
	"Pear":          "Fiber-rich.",
	"Jamun":         "Good for blood sugar.",
	"Apricot":       "Vitamin A for eyes.",
}

// DefaultFruitBenefit is shown for fruits outside the catalog.
const DefaultFruitBenefit = "Yummy and healthy!"

// FruitBenefit returns the benefit line for a fruit.
func FruitBenefit(fruit string) string {
	if b, ok := FruitBenefits[fruit]; ok {
		return b
	}
	return DefaultFruitBenefit
}

var (
	ProteinOptions = []string{"Egg", "Paneer", "Dal/Lentils", "Soya Chunks", "Chickpeas", "Peanut Butter"}
	OutdoorOptions = []string{"Football", "Cricket", "Swimming", "Running", "Cycling", "Free Play"}
	IndoorOptions  = []string{"Free Play", "Drawing", "Painting", "Chess", "Carom", "Craft"}
)

// MatchOption returns the catalog spelling of s, compared case-insensitively.
func MatchOption(options []string, s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(o, s) {
			return o, true
		}
	}
	return "", false
}

// Selection builds an activity list from multi-select values: catalog
// entries are kept in catalog spelling, the Other placeholder is dropped,
// and a non-blank free-text entry is appended. Unknown values are dropped.
func Selection(options []string, selected []string, other string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, s := range selected {
		o, ok := MatchOption(options, s)
		if !ok || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	if other = strings.TrimSpace(other); other != "" && !seen[other] {
		out = append(out, other)
	}
	return out
}
