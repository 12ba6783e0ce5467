package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Fatalf("DarkenColor() = %v, want %v", got, want)
	}
}

func TestFillRatio(t *testing.T) {
	tests := []struct {
		percent float64
		want    float32
	}{
		{-10, 0},
		{0, 0},
		{50, 0.5},
		{100, 1},
		{150, 1},
	}
	for _, tt := range tests {
		if got := FillRatio(tt.percent); got != tt.want {
			t.Errorf("FillRatio(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(10, 10) || !r.Contains(29, 19) {
		t.Fatal("corners inside should be contained")
	}
	if r.Contains(30, 15) || r.Contains(15, 20) {
		t.Fatal("far edges are outside")
	}
}
