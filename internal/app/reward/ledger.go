package reward

import (
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// Effects describes what one action changed, for the caller to render.
type Effects struct {
	Kind      domain.ActionKind   `json:"kind"`
	XPDelta   int64               `json:"xp_delta"`
	XP        int64               `json:"xp"`
	Level     int                 `json:"level"`
	LevelUp   bool                `json:"level_up"`
	Badges    []domain.BadgeAward `json:"badges,omitempty"`
	Ladder    []domain.BadgeAward `json:"ladder,omitempty"`
	Completed bool                `json:"completed"` // day completed by this action
	Streak    int                 `json:"streak"`
	Cheer     string              `json:"cheer,omitempty"`
}

// Apply is the reducer for one user-triggered action: it applies the XP
// award and state change, then re-evaluates category badges and the XP
// ladder against the updated state.
func Apply(p *domain.Profile, day *domain.DayRecord, a domain.Action, today time.Time) (Effects, error) {
	levelBefore := LevelForXP(p.XP)
	wasCompleted := day.Completed

	delta, err := ApplyAction(p, day, a, today)
	if err != nil {
		return Effects{Kind: a.Kind, XP: p.XP, Level: levelBefore, Streak: p.Streak}, err
	}

	fx := Effects{
		Kind:      a.Kind,
		XPDelta:   delta,
		XP:        p.XP,
		Level:     LevelForXP(p.XP),
		Badges:    EvaluateBadges(p, day, today),
		Ladder:    EvaluateLadder(p, today),
		Completed: day.Completed && !wasCompleted,
		Streak:    p.Streak,
	}
	fx.LevelUp = fx.Level > levelBefore
	if delta > 0 || fx.Completed || a.Kind == domain.ActionScreen {
		fx.Cheer = Cheer(a.Kind, day)
	}
	return fx, nil
}
