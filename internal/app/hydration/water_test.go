package hydration_test

import (
	"math"
	"testing"

	"github.com/bachpan-balance/bachpan/internal/app/hydration"
)

func TestMinimumML(t *testing.T) {
	tests := []struct {
		age    int
		gender string
		want   int
	}{
		{1, "boy", 1000},
		{3, "girl", 1000},
		{4, "boy", 1200},
		{8, "girl", 1200},
		{9, "boy", 1600},
		{13, "girl", 1400},
		{13, "GIRL", 1400},
		{14, "boy", 2400},
		{17, "Girl", 1800},
		{18, "other", 2400},
		{19, "boy", 2000},
		{40, "girl", 2000},
	}
	for _, tt := range tests {
		if got := hydration.MinimumML(tt.age, tt.gender); got != tt.want {
			t.Errorf("MinimumML(%d, %q) = %d, want %d", tt.age, tt.gender, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		gender  string
		weight  float64
		ml      int
		liters  float64
		glasses int
	}{
		{"minimum wins", 8, "boy", 25, 1200, 1.2, 5},
		{"weight wins", 10, "boy", 60, 2100, 2.1, 9},
		{"girl 12", 12, "girl", 30, 1400, 1.4, 6},
		{"boy 15 floor", 15, "boy", 50, 2400, 2.4, 10},
		{"fractional weight", 6, "girl", 37.5, 1313, 1.31, 6},
		{"girl 16 floor", 16, "girl", 40, 1800, 1.8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hydration.Compute(tt.age, tt.gender, tt.weight)
			if got.ML != tt.ml {
				t.Errorf("ML = %d, want %d", got.ML, tt.ml)
			}
			if got.Liters != tt.liters {
				t.Errorf("Liters = %v, want %v", got.Liters, tt.liters)
			}
			if got.Glasses != tt.glasses {
				t.Errorf("Glasses = %d, want %d", got.Glasses, tt.glasses)
			}
			if got.GlassML != hydration.GlassML {
				t.Errorf("GlassML = %d, want %d", got.GlassML, hydration.GlassML)
			}
		})
	}
}

func TestCompute_GlassesFormula(t *testing.T) {
	for age := 1; age <= 17; age++ {
		for _, g := range []string{"boy", "girl", "other"} {
			for w := 10.0; w <= 120; w += 2.5 {
				want := int(math.Ceil(math.Max(w*35, float64(hydration.MinimumML(age, g))) / 250))
				if got := hydration.Compute(age, g, w).Glasses; got != want {
					t.Fatalf("Compute(%d, %q, %v).Glasses = %d, want %d", age, g, w, got, want)
				}
			}
		}
	}
}

func TestCompute_MonotonicInWeight(t *testing.T) {
	for _, g := range []string{"boy", "girl"} {
		for age := 1; age <= 17; age++ {
			prev := 0
			for w := 10.0; w <= 120; w += 0.5 {
				got := hydration.Compute(age, g, w).Glasses
				if got < prev {
					t.Fatalf("glasses decreased at age=%d gender=%s weight=%v: %d < %d", age, g, w, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestCompute_InvalidInputsUseDefaults(t *testing.T) {
	want := hydration.Target{ML: 1200, Liters: 1.2, Glasses: 5, GlassML: 250}
	cases := []struct {
		age    int
		gender string
		weight float64
	}{
		{0, "", 0},
		{8, "girl", 0},
		{8, "girl", -3},
		{0, "girl", 40},
		{-5, "boy", 30},
		{10, "boy", math.NaN()},
		{10, "boy", math.Inf(1)},
		{10, "boy", math.Inf(-1)},
		{8, "boy", 1e306},
		{8, "boy", 1e307},
		{8, "boy", math.MaxFloat64},
		{8, "boy", 500.5},
		{121, "girl", 40},
		{math.MaxInt, "boy", 30},
	}
	for _, c := range cases {
		if got := hydration.Compute(c.age, c.gender, c.weight); got != want {
			t.Errorf("Compute(%d, %q, %v) = %+v, want %+v", c.age, c.gender, c.weight, got, want)
		}
	}
}

func TestCompute_Bounds(t *testing.T) {
	got := hydration.Compute(hydration.MaxAge, "boy", hydration.MaxWeight)
	if got.ML != 17500 || got.Glasses != 70 {
		t.Errorf("Compute at the bounds = %+v, want 17500 ml / 70 glasses", got)
	}
	for _, w := range []float64{1, 120, 499.9} {
		if got := hydration.Compute(8, "boy", w); got.Glasses <= 0 || got.ML <= 0 {
			t.Errorf("Compute(8, boy, %v) = %+v, want a positive target", w, got)
		}
	}
}

func TestComputeText(t *testing.T) {
	if got := hydration.ComputeText("12", "Girl", "30"); got.ML != 1400 {
		t.Errorf("ComputeText valid: ML = %d, want 1400", got.ML)
	}
	for _, in := range [][2]string{{"eight", "25"}, {"8", "heavy"}, {"", ""}} {
		got := hydration.ComputeText(in[0], "girl", in[1])
		if got.ML != 1200 || got.Glasses != 5 {
			t.Errorf("ComputeText(%q, %q) = %+v, want defaults", in[0], in[1], got)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := hydration.Compute(11, "girl", 33.3)
	b := hydration.Compute(11, "girl", 33.3)
	if a != b {
		t.Errorf("Compute not deterministic: %+v vs %+v", a, b)
	}
}
