// internal/system/movement.go
package system

import (
	"master-quest/internal/entity"
)

// MovementSystem начинает новый шаг интерполяции для всего, что не луч,
// и интегрирует скорость. Лучи двигаются сами внутри ProjectileSystem.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		if _, isBeam := s.ecs.Projectiles[id]; isBeam {
			continue
		}
		pos.Prev = pos.Current
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		pos.Current = pos.Current.Add(vel.Vec3)
		if vel.Drag > 0 {
			vel.Vec3 = vel.Vec3.Mul(vel.Drag)
		}
	}
}
