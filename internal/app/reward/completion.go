package reward

import (
	"time"

	"github.com/bachpan-balance/bachpan/internal/domain"
)

// MinActivityHits is how many non-water activities a complete day needs.
const MinActivityHits = 2

// EvaluateDayCompletion reports whether the day may be marked complete:
// hydration target met and at least two other activities done.
func EvaluateDayCompletion(day *domain.DayRecord) bool {
	return day.HydrationMet() && day.ActivityHits() >= MinActivityHits
}

// CompleteDay marks the day complete, awards the completion bonus and
// advances the streak. The streak grows only when the last completed day is
// exactly the calendar day before today; anything else restarts it at 1.
//
// A day already completed is left untouched and the current streak is
// returned, so repeated calls award the bonus once.
func CompleteDay(p *domain.Profile, day *domain.DayRecord, today time.Time) (int, error) {
	if day.Completed {
		return p.Streak, nil
	}
	if !EvaluateDayCompletion(day) {
		return p.Streak, domain.ErrDayNotEligible
	}

	day.Completed = true
	p.XP += XPDayComplete

	key := domain.DayKey(today)
	if isDayBefore(p.LastCompletedDay, today) {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastCompletedDay = key
	if p.Streak > p.LongestStreak {
		p.LongestStreak = p.Streak
	}
	return p.Streak, nil
}

// isDayBefore reports whether last names the calendar day before today.
func isDayBefore(last string, today time.Time) bool {
	if last == "" {
		return false
	}
	prev, err := domain.ParseDay(last)
	if err != nil {
		return false
	}
	return domain.DayKey(prev.AddDate(0, 0, 1)) == domain.DayKey(today)
}
