package domain

import "fmt"

// ─── Tiers ──────────────────────────────────────────────────────────────────

// Tier is an ordered badge level. The zero value means no tier.
type Tier int

const (
	TierNone Tier = iota
	TierBronze
	TierSilver
	TierGold
	TierLegend
)

// Tiers lists every awardable tier in ascending order.
var Tiers = []Tier{TierBronze, TierSilver, TierGold, TierLegend}

var tierNames = map[Tier]string{
	TierNone:   "",
	TierBronze: "Bronze",
	TierSilver: "Silver",
	TierGold:   "Gold",
	TierLegend: "Legend",
}

func (t Tier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// ParseTier is the inverse of String.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if name == s {
			return t, nil
		}
	}
	return TierNone, fmt.Errorf("unknown tier %q", s)
}

// MarshalText lets tiers serialize by name, including as map keys.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts tier names. Unknown names decode as TierNone so a
// damaged document still loads.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		*t = TierNone
		return nil
	}
	*t = parsed
	return nil
}

// ─── Categories ─────────────────────────────────────────────────────────────

// Category is a per-activity badge namespace.
type Category string

const (
	CatHydration Category = "hydration"
	CatFruit     Category = "fruit"
	CatProtein   Category = "protein"
	CatSchool    Category = "school"
	CatOutdoor   Category = "outdoor"
	CatIndoor    Category = "indoor"
	CatExam      Category = "exam"
)

// Categories lists the badge categories in display order.
var Categories = []Category{
	CatHydration, CatFruit, CatProtein, CatSchool, CatOutdoor, CatIndoor, CatExam,
}

// BadgeAward reports a tier newly reached in a category, or a ladder rung
// newly unlocked when Category is empty.
type BadgeAward struct {
	Category Category `json:"category,omitempty"`
	Tier     Tier     `json:"tier"`
	Title    string   `json:"title"`
	Flavor   string   `json:"flavor"`
}
