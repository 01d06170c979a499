package domain

// ─── Day Record ─────────────────────────────────────────────────────────────

// Water tracks hydration for one day. Only Glasses is accumulated truth; the
// targets are recomputed from the profile every session.
type Water struct {
	Glasses       int `json:"glasses"`
	TargetGlasses int `json:"target_glasses"`
	TargetML      int `json:"target_ml"`
}

// Items wraps a list of logged food items.
type Items struct {
	Items []string `json:"items"`
}

// Screen tracks screen time in minutes.
type Screen struct {
	Create int `json:"create"`
	Fun    int `json:"fun"`
	Limit  int `json:"limit"`
}

// OverLimit reports whether total screen time exceeds a parent-set limit.
// A zero limit means no limit was set.
func (s Screen) OverLimit() bool {
	return s.Limit > 0 && s.Create+s.Fun > s.Limit
}

// DayRecord holds the activity counters for one (profile, date) pair.
type DayRecord struct {
	Water      Water    `json:"water"`
	Fruit      Items    `json:"fruit"`
	Protein    Items    `json:"protein"`
	SchoolWork bool     `json:"school_work"`
	Outdoor    []string `json:"outdoor"`
	Indoor     []string `json:"indoor"`
	ExamMin    int      `json:"exam_prep_min"`
	Screen     Screen   `json:"screen"`
	Completed  bool     `json:"completed"`
}

// NewDayRecord returns a zeroed record with empty (non-nil) lists.
func NewDayRecord() *DayRecord {
	d := &DayRecord{}
	d.Normalize()
	return d
}

// Normalize replaces nil lists with empty ones and clamps negative counters.
func (d *DayRecord) Normalize() {
	if d.Fruit.Items == nil {
		d.Fruit.Items = []string{}
	}
	if d.Protein.Items == nil {
		d.Protein.Items = []string{}
	}
	if d.Outdoor == nil {
		d.Outdoor = []string{}
	}
	if d.Indoor == nil {
		d.Indoor = []string{}
	}
	d.Water.Glasses = max(0, d.Water.Glasses)
	d.ExamMin = max(0, d.ExamMin)
	d.Screen.Create = max(0, d.Screen.Create)
	d.Screen.Fun = max(0, d.Screen.Fun)
	d.Screen.Limit = max(0, d.Screen.Limit)
}

// HydrationProgress returns drunk/target capped at 1.
func (d *DayRecord) HydrationProgress() float64 {
	p := float64(d.Water.Glasses) / float64(max(1, d.Water.TargetGlasses))
	return min(1.0, p)
}

// HydrationMet reports whether today's glass target is reached. A target
// below one glass still needs one.
func (d *DayRecord) HydrationMet() bool {
	return d.Water.Glasses >= max(1, d.Water.TargetGlasses)
}

// ActivityHits counts the non-water activities done today:
// fruit, protein, schoolwork, outdoor, indoor and at least 10 exam minutes.
func (d *DayRecord) ActivityHits() int {
	hits := 0
	for _, ok := range []bool{
		len(d.Fruit.Items) > 0,
		len(d.Protein.Items) > 0,
		d.SchoolWork,
		len(d.Outdoor) > 0,
		len(d.Indoor) > 0,
		d.ExamMin >= 10,
	} {
		if ok {
			hits++
		}
	}
	return hits
}

// ActivityTotal is the number of activities counted by ActivityHits.
const ActivityTotal = 6
