// internal/entity/ecs.go
package entity

import (
	"master-quest/internal/component"
	"master-quest/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Rotations     map[types.EntityID]*component.Rotation
	Healths       map[types.EntityID]*component.Health
	Colliders     map[types.EntityID]*component.Collider
	Renderables   map[types.EntityID]*component.Renderable
	Projectiles   map[types.EntityID]*component.Projectile
	Players       map[types.EntityID]*component.Player
	Cooldowns     map[types.EntityID]*component.Cooldowns
	Particles     map[types.EntityID]*component.Particle
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Terrain       map[types.EntityID]*component.Terrain
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Rotations:     make(map[types.EntityID]*component.Rotation),
		Healths:       make(map[types.EntityID]*component.Health),
		Colliders:     make(map[types.EntityID]*component.Collider),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Players:       make(map[types.EntityID]*component.Player),
		Cooldowns:     make(map[types.EntityID]*component.Cooldowns),
		Particles:     make(map[types.EntityID]*component.Particle),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Terrain:       make(map[types.EntityID]*component.Terrain),
		GameState:     &component.GameState{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove удаляет все компоненты сущности.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Rotations, id)
	delete(ecs.Healths, id)
	delete(ecs.Colliders, id)
	delete(ecs.Renderables, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Players, id)
	delete(ecs.Cooldowns, id)
	delete(ecs.Particles, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.Terrain, id)
}

// Exists сообщает, есть ли у сущности еще позиция.
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Positions[id]
	return ok
}
