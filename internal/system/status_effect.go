// internal/system/status_effect.go
package system

import (
	"master-quest/internal/config"
	"master-quest/internal/entity"
	"master-quest/internal/event"
	"master-quest/internal/types"
)

// StatusEffectSystem отсчитывает перезарядку предметов и регенерацию игрока
// и убирает мертвые сущности.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, cd := range s.ecs.Cooldowns {
		for item, left := range cd.Remaining {
			if left <= 1 {
				delete(cd.Remaining, item)
				continue
			}
			cd.Remaining[item] = left - 1
		}
	}

	for id, player := range s.ecs.Players {
		h, ok := s.ecs.Healths[id]
		if !ok || h.Dead() || h.Value >= h.Max {
			player.RegenTimer = config.PlayerRegenTicks
			continue
		}
		player.RegenTimer--
		if player.RegenTimer <= 0 {
			h.Value = min(h.Max, h.Value+1)
			player.RegenTimer = config.PlayerRegenTicks
		}
	}

	var dead []types.EntityID
	for id, h := range s.ecs.Healths {
		if _, isPlayer := s.ecs.Players[id]; isPlayer {
			continue
		}
		if h.Dead() {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		s.ecs.Remove(id)
	}
}
