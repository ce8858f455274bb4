package system

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"master-quest/internal/component"
	"master-quest/internal/config"
	"master-quest/internal/entity"
	"master-quest/internal/event"
	"master-quest/internal/interfaces"
	"master-quest/internal/interfaces/mocks"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

const shooter types.EntityID = 100

type fixture struct {
	ecs    *entity.ECS
	world  *mocks.MockWorld
	sys    *ProjectileSystem
	events []event.Event
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{ecs: entity.NewECS(), world: mocks.NewMockWorld(ctrl)}
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { f.events = append(f.events, e) }),
		event.BeamImpacted, event.BeamExpired)
	f.sys = NewProjectileSystem(f.ecs, f.world, NewCollisionSystem(f.ecs), d, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

// fire ставит луч в начало координат, летящий вдоль +Z.
func (f *fixture) fire() (types.EntityID, *projectile.Beam) {
	b := projectile.NewBeam(projectile.Owner{ID: shooter, Combatant: true}, mgl64.Vec3{0, 1, 0})
	b.NoGravity = true
	b.Shoot(0, 0, config.BeamSpeed, 0, nil)
	id := f.ecs.NewEntity()
	f.ecs.Positions[id] = &component.Position{Current: b.Position, Prev: b.Position}
	f.ecs.Rotations[id] = &component.Rotation{}
	f.ecs.Colliders[id] = &component.Collider{Width: config.BeamHitboxWidth, Height: config.BeamHitboxHeight}
	f.ecs.Projectiles[id] = &component.Projectile{Beam: b}
	return id, b
}

func (f *fixture) rebuild() {
	f.sys.collisions.(*CollisionSystem).Update(0)
}

func TestBeamFliesAndExpires(t *testing.T) {
	f := newFixture(t)
	id, b := f.fire()
	f.world.EXPECT().Remove(id).Times(1)

	for i := 0; i < config.BeamLifetimeTicks; i++ {
		f.sys.Update(config.TickDuration)
		require.Equal(t, projectile.Flying, b.State(), "tick %d", i+1)
	}
	assert.InDelta(t, 40*config.BeamSpeed, f.ecs.Positions[id].Current.Z(), 1e-9)
	assert.InDelta(t, 39*config.BeamSpeed, f.ecs.Positions[id].Prev.Z(), 1e-9)

	f.sys.Update(config.TickDuration)
	assert.Equal(t, projectile.Expired, b.State())
	require.Len(t, f.events, 1)
	assert.Equal(t, event.BeamExpired, f.events[0].Type)
	assert.Equal(t, 41, f.events[0].Data.(event.BeamData).Age)
}

func TestBeamSkipsShooterAndHitsLivingTarget(t *testing.T) {
	f := newFixture(t)

	// Стрелок стоит там, где начинается луч.
	f.ecs.Positions[shooter] = &component.Position{}
	f.ecs.Colliders[shooter] = &component.Collider{Width: 0.6, Height: 1.8}
	f.ecs.Healths[shooter] = &component.Health{Value: 20, Max: 20}
	target := addBody(f.ecs, mgl64.Vec3{0, 0, 1.6}, true)
	addBody(f.ecs, mgl64.Vec3{0, 0, 1.9}, true)
	f.rebuild()

	id, b := f.fire()
	gomock.InOrder(
		f.world.EXPECT().ApplyDamage(target, config.BeamDamage, interfaces.DamageSource{Kind: "player_attack", Attacker: shooter}),
		f.world.EXPECT().EmitParticles(gomock.Any()).Do(func(burst projectile.ParticleBurst) {
			assert.Equal(t, config.ParticleGlow, burst.Kind)
			assert.Equal(t, config.ImpactParticleCount, burst.Count)
		}),
		f.world.EXPECT().PlaySound(gomock.Any(), config.SoundBeamImpact, config.ImpactVolume, config.ImpactPitch),
		f.world.EXPECT().Remove(id),
	)

	f.sys.Update(config.TickDuration) // только стрелок, мы уже внутри
	assert.Equal(t, projectile.Flying, b.State())

	f.sys.Update(config.TickDuration) // долетает до цели; та, что сзади, не тронута
	assert.Equal(t, projectile.Impacted, b.State())
	require.Len(t, f.events, 1)
	assert.Equal(t, event.BeamImpacted, f.events[0].Type)
}

func TestBeamStopsOnTerrain(t *testing.T) {
	f := newFixture(t)
	wall := f.ecs.NewEntity()
	f.ecs.Terrain[wall] = &component.Terrain{Min: mgl64.Vec3{-2, 0, 0.8}, Max: mgl64.Vec3{2, 3, 1.2}}
	f.rebuild()

	id, b := f.fire()
	f.world.EXPECT().EmitParticles(gomock.Any())
	f.world.EXPECT().Remove(id)

	f.sys.Update(config.TickDuration)
	assert.Equal(t, projectile.Impacted, b.State())
	assert.Equal(t, 0, b.Age(), "an impacted beam does not step")
}

func TestBeamPassesThroughNonLiving(t *testing.T) {
	f := newFixture(t)
	addBody(f.ecs, mgl64.Vec3{0, 0, 0.5}, false)
	f.rebuild()

	_, b := f.fire()
	f.sys.Update(config.TickDuration)
	assert.Equal(t, projectile.Flying, b.State())
	assert.Equal(t, 1, b.Age())
}

func TestLerpMotion(t *testing.T) {
	f := newFixture(t)
	id, b := f.fire()

	assert.True(t, f.sys.LerpMotion(id, mgl64.Vec3{0, 0, 1.75}))
	assert.InDelta(t, 1.25, b.Velocity.Z(), 1e-9)
	assert.False(t, f.sys.LerpMotion(id+1000, mgl64.Vec3{}))
}
