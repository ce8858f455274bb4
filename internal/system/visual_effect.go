// internal/system/visual_effect.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/component"
	"master-quest/internal/config"
	"master-quest/internal/entity"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
	"master-quest/internal/utils"
)

// VisualEffectSystem управляет частицами и вспышками урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

// Emit создает вспышку частиц: позиции разбрасываются гауссом с масштабом
// по осям, скорости масштабируются скоростью вспышки.
func (s *VisualEffectSystem) Emit(burst projectile.ParticleBurst) []types.EntityID {
	ids := make([]types.EntityID, 0, burst.Count)
	for i := 0; i < burst.Count; i++ {
		id := s.ecs.NewEntity()
		at := burst.At.Add(mgl64.Vec3{
			s.rng.NormFloat64() * burst.Offset.X(),
			s.rng.NormFloat64() * burst.Offset.Y(),
			s.rng.NormFloat64() * burst.Offset.Z(),
		})
		life := s.rng.IntRange(config.ParticleLifeMin, config.ParticleLifeMax)

		s.ecs.Positions[id] = &component.Position{Current: at, Prev: at}
		s.ecs.Velocities[id] = &component.Velocity{
			Vec3: mgl64.Vec3{
				s.rng.NormFloat64() * burst.Speed,
				s.rng.NormFloat64() * burst.Speed,
				s.rng.NormFloat64() * burst.Speed,
			},
			Drag: config.ParticleDrag,
		}
		s.ecs.Particles[id] = &component.Particle{Kind: burst.Kind, Life: life, MaxLife: life}
		ids = append(ids, id)
	}
	return ids
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, p := range s.ecs.Particles {
		p.Life--
		if p.Life <= 0 {
			s.ecs.Remove(id)
		}
	}
	for id, flash := range s.ecs.DamageFlashes {
		flash.Ticks--
		if flash.Ticks <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
