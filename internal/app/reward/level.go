package reward

import "math"

// MaxLevel caps the level curve.
const MaxLevel = 100

// XPForLevel returns the cumulative XP required to reach a given level.
// Uses an exponential curve: 100 * 1.2^(level-1) for level >= 2.
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	return int64(100 * math.Pow(1.2, float64(level-1)))
}

// LevelForXP returns the level for a given XP amount.
func LevelForXP(xp int64) int {
	level := 1
	for level < MaxLevel {
		if xp < XPForLevel(level+1) {
			return level
		}
		level++
	}
	return MaxLevel
}

// LevelProgress returns progress toward the next level as 0.0–100.0.
func LevelProgress(xp int64) float64 {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 100.0
	}
	this, next := XPForLevel(level), XPForLevel(level+1)
	span := next - this
	if span <= 0 {
		return 100.0
	}
	pct := float64(xp-this) / float64(span) * 100.0
	return math.Max(0, math.Min(100, pct))
}

// XPToNextLevel returns XP remaining until the next level.
func XPToNextLevel(xp int64) int64 {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 0
	}
	return max(0, XPForLevel(level+1)-xp)
}
