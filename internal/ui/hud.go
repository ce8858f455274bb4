// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"master-quest/internal/component"
	"master-quest/internal/config"
)

// HUDState - данные HUD на текущий кадр.
type HUDState struct {
	Health    float64
	MaxHealth float64
	Tolerance float64
	Cooldown  float64 // оставшаяся доля
	Stats     component.GameState
	Beams     int
	Paused    bool
}

// HUD рисует здоровье, перезарядку меча и счетчики сессии.
type HUD struct {
	X, Y float32
}

func NewHUD(x, y float32) *HUD {
	return &HUD{X: x, Y: y}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	face := basicfont.Face7x13
	ready := s.Health >= s.MaxHealth-s.Tolerance

	hearts := int(math.Ceil(s.MaxHealth / 2))
	step := float32(config.IndicatorRadius*2 + config.IndicatorSpacing)
	for j := 0; j < hearts; j++ {
		cx := h.X + float32(j)*step + config.IndicatorRadius
		cy := h.Y + config.IndicatorRadius
		vector.DrawFilledCircle(screen, cx, cy, config.IndicatorRadius, config.HealthNoneColor, true)

		fill := heartFill(s.Health, j)
		c := config.HealthFullColor
		if ready {
			c = color.RGBA{255, 120, 160, 255}
		}
		switch {
		case fill >= 1:
			vector.DrawFilledCircle(screen, cx, cy, config.IndicatorRadius, c, true)
		case fill > 0:
			vector.DrawFilledRect(screen, cx-config.IndicatorRadius/2, cy-config.IndicatorRadius/2, config.IndicatorRadius, config.IndicatorRadius, c, true)
		}
		vector.StrokeCircle(screen, cx, cy, config.IndicatorRadius, 1, config.TextLightColor, true)
	}
	text.Draw(screen, fmt.Sprintf("%.0f/%.0f", s.Health, s.MaxHealth), face, int(h.X), int(h.Y)-6, config.TextLightColor)

	barY := float32(config.CooldownBarY)
	vector.DrawFilledRect(screen, h.X, barY, config.CooldownBarWidth, 8, config.HealthNoneColor, true)
	vector.DrawFilledRect(screen, h.X, barY, float32(1-s.Cooldown)*config.CooldownBarWidth, 8, config.CooldownColor, true)
	vector.StrokeRect(screen, h.X, barY, config.CooldownBarWidth, 8, 1, config.TextLightColor, true)

	status := "beam ready"
	switch {
	case s.Cooldown > 0:
		status = "cooling down"
	case !ready:
		status = "heal to fire"
	}
	text.Draw(screen, status, face, int(h.X)+config.CooldownBarWidth+10, int(barY)+9, config.TextLightColor)

	stats := fmt.Sprintf("tick %d  fired %d  hits %d  kills %d  beams %d",
		s.Stats.Tick, s.Stats.BeamsFired, s.Stats.Hits, s.Stats.Kills, s.Beams)
	text.Draw(screen, stats, face, int(h.X), int(barY)+32, config.TextLightColor)
	text.Draw(screen, "mouse/arrows aim  WASD move  space fire  H hurt  R reset  M mute  P pause", face,
		int(h.X), config.ScreenHeight-16, config.TextLightColor)

	if s.Paused {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedTint, false)
		msg := "PAUSED"
		text.Draw(screen, msg, face, config.ScreenWidth/2-len(msg)*7/2, config.ScreenHeight/2, config.TextLightColor)
	}
}
