package utils

import "testing"

type fixedFloat float64

func (f fixedFloat) Float64() float64 { return float64(f) }

func TestChooseWeighted(t *testing.T) {
	tests := []struct {
		name    string
		draw    float64
		weights []float64
		want    int
	}{
		{"empty", 0.5, nil, -1},
		{"first bucket", 0.1, []float64{1, 3}, 0},
		{"second bucket", 0.3, []float64{1, 3}, 1},
		{"skips zero weight", 0.0, []float64{0, 2, 2}, 1},
		{"upper edge", 0.9999999, []float64{1, 1, 0}, 1},
		{"all zero", 0.5, []float64{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseWeighted(fixedFloat(tt.draw), tt.weights); got != tt.want {
				t.Fatalf("ChooseWeighted = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
		if a.Intn(100) != b.Intn(100) {
			t.Fatal("same seed produced different ints")
		}
	}
}
