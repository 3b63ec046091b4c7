package rating

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestStarsForAlwaysFiveGlyphs(t *testing.T) {
	for tenths := int64(0); tenths <= 50; tenths++ {
		rate := decimal.New(tenths, -1)
		t.Run(rate.String(), func(t *testing.T) {
			stars := StarsFor(rate)
			if len(stars) != MaxStars {
				t.Fatalf("StarsFor(%s) returned %d glyphs, want %d", rate, len(stars), MaxStars)
			}
			filled, half, empty := Counts(stars)
			if filled+half+empty != MaxStars {
				t.Fatalf("StarsFor(%s) counts %d+%d+%d != %d", rate, filled, half, empty, MaxStars)
			}
			if want := int(rate.Floor().IntPart()); filled != want {
				t.Fatalf("StarsFor(%s) filled=%d, want %d", rate, filled, want)
			}
		})
	}
}

func TestStarsForEdgeCases(t *testing.T) {
	tests := []struct {
		rate   string
		filled int
		half   int
		empty  int
	}{
		{rate: "0", filled: 0, half: 0, empty: 5},
		{rate: "5", filled: 5, half: 0, empty: 0},
		{rate: "3.5", filled: 3, half: 1, empty: 1},
		{rate: "4.2", filled: 4, half: 1, empty: 0},
		{rate: "2.5", filled: 2, half: 1, empty: 2},
		{rate: "0.1", filled: 0, half: 1, empty: 4},
		{rate: "4.9", filled: 4, half: 1, empty: 0},
		{rate: "3", filled: 3, half: 0, empty: 2},
		{rate: "3.0000", filled: 3, half: 0, empty: 2},
		{rate: "-1", filled: 0, half: 0, empty: 5},
		{rate: "7.5", filled: 5, half: 0, empty: 0},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			stars := StarsFor(decimal.RequireFromString(tt.rate))
			filled, half, empty := Counts(stars)
			if filled != tt.filled || half != tt.half || empty != tt.empty {
				t.Fatalf("StarsFor(%s) = %d/%d/%d, want %d/%d/%d", tt.rate, filled, half, empty, tt.filled, tt.half, tt.empty)
			}
		})
	}
}

func TestStarsForOrder(t *testing.T) {
	got := StarsFor(decimal.RequireFromString("3.5"))
	want := []Star{Filled, Filled, Filled, Half, Empty}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("StarsFor(3.5) = %v, want %v", got, want)
	}
}

func TestStarsForFloatNoise(t *testing.T) {
	// 0.1+0.2 in binary floating point is 0.30000000000000004.
	rate := decimal.NewFromFloat(0.1 + 0.2).Mul(decimal.NewFromInt(10))
	stars := StarsFor(rate)
	if len(stars) != MaxStars {
		t.Fatalf("StarsFor(%s) returned %d glyphs", rate, len(stars))
	}
}

func TestRender(t *testing.T) {
	got := Render(StarsFor(decimal.RequireFromString("2.5")))
	if want := "★★⯪☆☆"; got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
