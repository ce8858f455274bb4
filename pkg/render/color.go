// pkg/render/color.go
package render

import "image/color"

// Darken scales the RGB channels by factor, keeping alpha.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten moves each channel towards white by amount in [0, 1].
func Lighten(c color.RGBA, amount float64) color.RGBA {
	lift := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*amount)
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// WithAlpha scales the color's opacity by fraction. The result stays
// premultiplied, as image/color expects.
func WithAlpha(c color.RGBA, fraction float64) color.RGBA {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * fraction),
		G: uint8(float64(c.G) * fraction),
		B: uint8(float64(c.B) * fraction),
		A: uint8(float64(c.A) * fraction),
	}
}
