// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicatorRL отображает здоровье рядом сердец, по две единицы
// на сердце, во вьювере raylib.
type PlayerHealthIndicatorRL struct {
	Position rl.Vector2
}

func NewPlayerHealthIndicatorRL(x, y float32) *PlayerHealthIndicatorRL {
	return &PlayerHealthIndicatorRL{Position: rl.NewVector2(x, y)}
}

// Draw выделяет светлым тоном сердца, при которых луч доступен.
func (i *PlayerHealthIndicatorRL) Draw(health, maxHealth, tolerance float64) {
	hearts := int(math.Ceil(maxHealth / 2))
	ready := health >= maxHealth-tolerance

	for j := 0; j < hearts; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.Position.X + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		cy := i.Position.Y + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		centre := rl.NewVector2(cx, cy)

		rl.DrawCircleV(centre, HealthCircleRadius, rl.Black)
		fill := heartFill(health, j)
		c := rl.Red
		if ready {
			c = rl.Pink
		}
		switch {
		case fill >= 1:
			rl.DrawCircleV(centre, HealthCircleRadius, c)
		case fill > 0:
			rl.DrawCircleSector(centre, HealthCircleRadius, 90, 270, 16, c)
		}
		rl.DrawCircleLines(int32(cx), int32(cy), HealthCircleRadius, rl.White)
	}

	label := fmt.Sprintf("%.0f/%.0f", health, maxHealth)
	rl.DrawText(label, int32(i.Position.X), int32(i.Position.Y)-22, 20, rl.White)
}

// heartFill - заполненность сердца j: 0, 0.5 или 1.
func heartFill(health float64, j int) float64 {
	points := health - float64(j*2)
	switch {
	case points >= 2:
		return 1
	case points >= 1:
		return 0.5
	}
	return 0
}
