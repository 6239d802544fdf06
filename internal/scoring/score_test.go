package scoring_test

import (
	"testing"

	"eco-wardrobe/internal/model"
	"eco-wardrobe/internal/scoring"
)

func TestUtility(t *testing.T) {
	cases := []struct {
		name      string
		timesWorn int
		want      int
	}{
		{"Never Worn", 0, 0},
		{"Worn Once", 1, 10},
		{"Worn Seven Times", 7, 70},
		{"At The Ceiling", 10, 100},
		{"Beyond The Ceiling", 15, 100},
		{"Far Beyond The Ceiling", 1000, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scoring.Utility(model.Item{TimesWorn: tc.timesWorn})
			if got != tc.want {
				t.Errorf("Utility(timesWorn=%d) = %d, want %d", tc.timesWorn, got, tc.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	cases := []struct {
		name          string
		materialScore int
		timesWorn     int
		want          int
	}{
		{"Eco And Worn", 80, 5, 62},             // round(32 + 30)
		{"Eco Never Worn", 100, 0, 40},          // round(40 + 0)
		{"Poor Material Heavy Wear", 0, 20, 60}, // round(0 + 60)
		{"Balanced Midpoint", 50, 5, 50},        // 20 + 30, no fraction
		{"Fraction Rounds Down", 91, 3, 54},     // 36.4 + 18 = 54.4
		{"Fraction Rounds Up", 89, 2, 48},       // 35.6 + 12 = 47.6
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := model.Item{MaterialScore: tc.materialScore, TimesWorn: tc.timesWorn}
			got := scoring.Total(item)
			if got != tc.want {
				t.Errorf("Total(m=%d, w=%d) = %d, want %d", tc.materialScore, tc.timesWorn, got, tc.want)
			}
		})
	}

	t.Run("Rounding Mode Is math.Round", func(t *testing.T) {
		// With integer inputs the utility term is always an integer and
		// 0.4*m has fractional part in {0, .2, .4, .6, .8}, so an exact
		// .5 boundary is unreachable. The rounding mode is pinned to
		// math.Round (half away from zero) anyway.
		item := model.Item{MaterialScore: 5, TimesWorn: 4}
		if got := scoring.Total(item); got != 26 { // 2 + 24
			t.Errorf("Total(m=5, w=4) = %d, want 26", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		item := model.Item{MaterialScore: 73, TimesWorn: 4}
		first := scoring.Total(item)
		for i := 0; i < 5; i++ {
			if scoring.Total(item) != first {
				t.Fatalf("Total is not referentially transparent")
			}
		}
	})
}
