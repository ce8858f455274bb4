// internal/system/projectile.go
package system

import (
	"log/slog"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/config"
	"master-quest/internal/entity"
	"master-quest/internal/event"
	"master-quest/internal/interfaces"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

// Sweeper находит, чего касается движущаяся коробка, начиная с ближнего.
type Sweeper interface {
	Sweep(from, to mgl64.Vec3, half float64) []projectile.Hit
}

// ProjectileSystem ведет каждый луч по тику: сначала столкновения на пути,
// затем шаг, затем удаление завершенного луча.
type ProjectileSystem struct {
	ecs             *entity.ECS
	world           interfaces.World
	collisions      Sweeper
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger
}

func NewProjectileSystem(ecs *entity.ECS, world interfaces.World, collisions Sweeper, eventDispatcher *event.Dispatcher, logger *slog.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		world:           world,
		collisions:      collisions,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := make([]types.EntityID, 0, len(s.ecs.Projectiles))
	for id := range s.ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue
		}
		s.tick(id, proj.Beam)
	}
}

func (s *ProjectileSystem) tick(id types.EntityID, beam *projectile.Beam) {
	if beam.Alive() {
		centre := mgl64.Vec3{0, config.BeamHitboxHeight / 2, 0}
		from := beam.Position.Add(centre)
		to := from.Add(beam.Velocity)
		for _, hit := range s.collisions.Sweep(from, to, config.BeamHitboxWidth/2) {
			effects, terminal := beam.OnCollision(hit)
			s.apply(effects)
			if terminal {
				break
			}
		}
	}
	if beam.Alive() {
		beam.Step()
	}

	if pos, ok := s.ecs.Positions[id]; ok {
		pos.Prev = beam.PrevPosition
		pos.Current = beam.Position
	}
	if rot, ok := s.ecs.Rotations[id]; ok {
		rot.Yaw, rot.Pitch = beam.Yaw, beam.Pitch
	}

	if !beam.State().Terminal() {
		return
	}
	evType := event.BeamExpired
	if beam.State() == projectile.Impacted {
		evType = event.BeamImpacted
	}
	s.eventDispatcher.Dispatch(event.Event{Type: evType, Data: event.BeamData{
		Beam:  id,
		Owner: beam.Owner().ID,
		At:    beam.Position,
		Age:   beam.Age(),
	}})
	s.logger.Debug("beam removed", "beam", id, "state", beam.State(), "age", beam.Age())
	s.world.Remove(id)
}

func (s *ProjectileSystem) apply(e projectile.Effects) {
	if e.Damage != nil {
		s.world.ApplyDamage(e.Damage.Target, e.Damage.Amount, interfaces.DamageSource{
			Kind:     "player_attack",
			Attacker: e.Damage.Attacker,
		})
	}
	if e.Particles.Count > 0 {
		s.world.EmitParticles(e.Particles)
	}
	if e.Sound != nil {
		s.world.PlaySound(e.Sound.At, e.Sound.ID, e.Sound.Volume, e.Sound.Pitch)
	}
}

// LerpMotion применяет к лучу авторитетную поправку скорости.
func (s *ProjectileSystem) LerpMotion(id types.EntityID, velocity mgl64.Vec3) bool {
	proj, ok := s.ecs.Projectiles[id]
	if !ok {
		return false
	}
	proj.Beam.LerpMotion(velocity)
	return true
}
