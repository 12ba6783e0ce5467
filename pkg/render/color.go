// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors the fight screen is drawn with.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	TextDim    color.RGBA
	Active     color.RGBA
	Target     color.RGBA
	Hover      color.RGBA
	Life       color.RGBA
	Energy     color.RGBA
	Mana       color.RGBA
	BarBack    color.RGBA
	Buff       color.RGBA
	Debuff     color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LifeColor fades from full to red as percent drops.
func LifeColor(full color.RGBA, percent float64) color.RGBA {
	switch {
	case percent <= 25:
		return color.RGBA{220, 50, 50, full.A}
	case percent <= 50:
		return color.RGBA{230, 180, 40, full.A}
	default:
		return full
	}
}
