// internal/ui/indicator.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CooldownIndicatorRL - диск, который пустеет по часовой стрелке, пока меч
// перезаряжается.
type CooldownIndicatorRL struct {
	X, Y   float32
	Radius float32
	Color  color.RGBA
}

func NewCooldownIndicatorRL(x, y, radius float32, c color.RGBA) *CooldownIndicatorRL {
	return &CooldownIndicatorRL{X: x, Y: y, Radius: radius, Color: c}
}

// Draw принимает оставшуюся долю перезарядки.
func (i *CooldownIndicatorRL) Draw(remaining float64) {
	centre := rl.NewVector2(i.X, i.Y)
	if remaining <= 0 {
		rl.DrawCircleV(centre, i.Radius, colorToRL(i.Color))
	} else {
		rl.DrawCircleV(centre, i.Radius, rl.NewColor(i.Color.R/3, i.Color.G/3, i.Color.B/3, i.Color.A))
		ready := float32(1-remaining) * 360
		rl.DrawCircleSector(centre, i.Radius, -90, -90+ready, 32, colorToRL(i.Color))
	}
	rl.DrawCircleLines(int32(i.X), int32(i.Y), i.Radius, rl.White)
}
