// Package hydration computes a child's recommended daily water intake.
// Every function here is pure: no clock, no I/O, no hidden state.
package hydration

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GlassML is the fixed glass size used to convert milliliters to glasses.
const GlassML = 250

// MLPerKG is the weight-based daily water allowance.
const MLPerKG = 35

// Substituted when any input is unusable.
const (
	DefaultAge    = 8
	DefaultWeight = 25.0
	DefaultGender = "boy"
)

// Inputs above these bounds are treated as unusable.
const (
	MaxAge    = 120
	MaxWeight = 500.0
)

// Target is a daily water recommendation.
type Target struct {
	ML      int     `json:"ml"`
	Liters  float64 `json:"liters"`
	Glasses int     `json:"glasses"`
	GlassML int     `json:"glass_ml"`
}

// MinimumML returns the age/gender floor in milliliters.
func MinimumML(age int, gender string) int {
	girl := strings.EqualFold(strings.TrimSpace(gender), "girl")
	switch {
	case age <= 3:
		return 1000
	case age <= 8:
		return 1200
	case age <= 13:
		if girl {
			return 1400
		}
		return 1600
	case age <= 18:
		if girl {
			return 1800
		}
		return 2400
	default:
		return 2000
	}
}

// Compute returns max(weight*35, MinimumML(age, gender)) expressed in ml,
// liters (2 decimals) and 250 ml glasses (rounded up). An age outside
// 1..MaxAge or a weight outside (0, MaxWeight] replaces all three inputs
// with the defaults (age 8, 25 kg, boy). Compute never fails.
func Compute(age int, gender string, weight float64) Target {
	if !usable(age, weight) {
		age, gender, weight = DefaultAge, DefaultGender, DefaultWeight
	}

	base := weight * MLPerKG
	ml := math.Max(base, float64(MinimumML(age, gender)))

	liters, _ := decimal.NewFromFloat(ml).Div(decimal.NewFromInt(1000)).Round(2).Float64()

	return Target{
		ML:      int(math.Round(ml)),
		Liters:  liters,
		Glasses: int(math.Ceil(ml / GlassML)),
		GlassML: GlassML,
	}
}

// usable rejects NaN as well, since every comparison with it is false.
func usable(age int, weight float64) bool {
	return age > 0 && age <= MaxAge && weight > 0 && weight <= MaxWeight
}

// ComputeText parses raw form values before calling Compute. Unparseable
// numbers take the same default path as out-of-range ones.
func ComputeText(age, gender, weight string) Target {
	a, errA := strconv.Atoi(strings.TrimSpace(age))
	w, errW := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if errA != nil || errW != nil {
		return Compute(DefaultAge, DefaultGender, DefaultWeight)
	}
	return Compute(a, gender, w)
}
