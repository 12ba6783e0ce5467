// pkg/render/bar.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

// FillRatio clamps a percentage to [0, 1].
func FillRatio(percent float64) float32 {
	switch {
	case percent <= 0:
		return 0
	case percent >= 100:
		return 1
	default:
		return float32(percent / 100)
	}
}

// DrawBar draws a gauge filled to percent.
func DrawBar(screen *ebiten.Image, r Rect, percent float64, fill, back color.Color) {
	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, back, true)
	if w := r.W * FillRatio(percent); w > 0 {
		vector.DrawFilledRect(screen, r.X, r.Y, w, r.H, fill, true)
	}
}

// DrawFrame fills r and strokes its border.
func DrawFrame(screen *ebiten.Image, r Rect, fill, border color.Color, width float32) {
	vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, fill, true)
	vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, width, border, true)
}
