package domain

// ActionKind identifies a discrete user-triggered event.
type ActionKind string

const (
	ActionWater   ActionKind = "water_glass"
	ActionFruit   ActionKind = "fruit"
	ActionProtein ActionKind = "protein"
	ActionSchool  ActionKind = "school"
	ActionOutdoor ActionKind = "outdoor"
	ActionIndoor  ActionKind = "indoor"
	ActionExam    ActionKind = "exam"
	ActionScreen  ActionKind = "screen"
	ActionFinish  ActionKind = "day_complete"
)

// Action is one logged event plus its payload. Which fields are read depends
// on Kind:
//
//	water_glass   Count (glasses, default 1)
//	fruit         Items, Other
//	protein       Items
//	school        Done
//	outdoor       Items, Other
//	indoor        Items, Other
//	exam          Minutes (new total for today)
//	screen        Minutes (create), Fun, Limit
//	day_complete  no payload
type Action struct {
	Kind    ActionKind `json:"kind"`
	Count   int        `json:"count,omitempty"`
	Items   []string   `json:"items,omitempty"`
	Other   string     `json:"other,omitempty"`
	Done    bool       `json:"done,omitempty"`
	Minutes int        `json:"minutes,omitempty"`
	Fun     int        `json:"fun,omitempty"`
	Limit   int        `json:"limit,omitempty"`
}

// XPEvent is one journal line: an action that changed the XP total.
type XPEvent struct {
	ID         string     `json:"id"`
	SessionID  string     `json:"session"`
	ProfileKey string     `json:"profile"`
	Day        string     `json:"day"`
	Kind       ActionKind `json:"kind"`
	Delta      int64      `json:"delta"`
	XPAfter    int64      `json:"xp_after"`
	At         int64      `json:"at"` // unix seconds
}
