// internal/system/player_system.go
package system

import (
	"master-quest/internal/entity"
	"master-quest/internal/event"
)

// PlayerSystem обновляет счетчики сессии на HUD по боевым событиям.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs}
	eventDispatcher.SubscribeAll(s, event.BeamFired, event.DamageApplied, event.EntityKilled)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	stats := s.ecs.GameState
	switch e.Type {
	case event.BeamFired:
		stats.BeamsFired++
	case event.DamageApplied:
		if d, ok := e.Data.(event.DamageData); ok && d.Attacker != 0 {
			if _, byPlayer := s.ecs.Players[d.Attacker]; byPlayer {
				stats.Hits++
			}
		}
	case event.EntityKilled:
		stats.Kills++
	}
}
