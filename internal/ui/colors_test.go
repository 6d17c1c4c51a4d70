package ui

import (
	"image/color"
	"testing"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		v, maxV int
		want    float64
	}{
		{50, 100, 0.5},
		{0, 100, 0},
		{150, 100, 1},
		{-5, 100, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := ratio(tc.v, tc.maxV); got != tc.want {
			t.Fatalf("ratio(%d, %d) = %v, want %v", tc.v, tc.maxV, got, tc.want)
		}
	}
}

func TestHealthColor(t *testing.T) {
	low := healthColor(0)
	mid := healthColor(0.5)
	full := healthColor(1)

	if low != (color.RGBA{R: 220, G: 40, B: 30, A: 230}) {
		t.Fatalf("low = %v", low)
	}
	if mid != (color.RGBA{R: 240, G: 200, B: 40, A: 230}) {
		t.Fatalf("mid = %v", mid)
	}
	if full.G <= full.R {
		t.Fatalf("full health should be green, got %v", full)
	}
}

func TestLerpRGBA(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 100, B: 0, A: 255}
	if got := lerpRGBA(a, b, 0.5); got != (color.RGBA{R: 50, G: 100, B: 100, A: 255}) {
		t.Fatalf("lerp = %v", got)
	}
	if got := lerpRGBA(a, b, 2); got != b {
		t.Fatalf("lerp past 1 = %v", got)
	}
}
