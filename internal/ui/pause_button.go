// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButtonRL ставит симуляцию на паузу во вьювере raylib.
type PauseButtonRL struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButtonRL(x, y, size float32, pauseColor, playColor color.Color) *PauseButtonRL {
	return &PauseButtonRL{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// Draw рисует треугольник на паузе и две полоски во время игры. После клика
// иконка ненадолго увеличивается.
func (b *PauseButtonRL) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	size := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		c := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-size, b.Y-size*1.2)
		p2 := rl.NewVector2(b.X-size, b.Y+size*1.2)
		p3 := rl.NewVector2(b.X+size, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
		return
	}

	c := colorToRL(b.PauseColor)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		rl.DrawRectangleV(rl.NewVector2(x, b.Y-height/2), rl.NewVector2(width, height), c)
		rl.DrawRectangleLines(int32(x), int32(b.Y-height/2), int32(width), int32(height), rl.White)
	}
}

func (b *PauseButtonRL) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5)
}

func (b *PauseButtonRL) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
