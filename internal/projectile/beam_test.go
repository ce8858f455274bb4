package projectile

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"master-quest/internal/config"
	"master-quest/internal/types"
)

const (
	shooter types.EntityID = 1
	dummy   types.EntityID = 2
)

func newTestBeam() *Beam {
	b := NewBeam(Owner{ID: shooter, Combatant: true}, mgl64.Vec3{0, 1.5, 0})
	b.NoGravity = true
	b.Shoot(0, 0, config.BeamSpeed, 0, nil)
	return b
}

func TestNewBeamStartsFlying(t *testing.T) {
	b := newTestBeam()
	assert.Equal(t, Flying, b.State())
	assert.Equal(t, 0, b.Age())
	assert.True(t, b.Alive())
	assert.False(t, b.Persistent())
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, msgAndArgs...)
	}
}

func TestShootFollowsAim(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float64
		want       mgl64.Vec3
	}{
		{"forward", 0, 0, mgl64.Vec3{0, 0, 0.75}},
		{"turned right", 0, 90, mgl64.Vec3{-0.75, 0, 0}},
		{"looking down", 90, 0, mgl64.Vec3{0, -0.75, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBeam(Owner{ID: shooter}, mgl64.Vec3{})
			b.Shoot(tt.pitch, tt.yaw, config.BeamSpeed, 0, nil)
			assertVecNear(t, tt.want, b.Velocity, "got %v", b.Velocity)
		})
	}
}

func TestStepAgesAndMoves(t *testing.T) {
	b := newTestBeam()
	start := b.Position

	require.Equal(t, Flying, b.Step())
	assert.Equal(t, 1, b.Age())
	assert.Equal(t, start, b.PrevPosition)
	assert.InDelta(t, start.Z()+0.75, b.Position.Z(), 1e-9)
	assert.InDelta(t, start.Y(), b.Position.Y(), 1e-9, "no gravity")
}

func TestStepAppliesGravityWhenEnabled(t *testing.T) {
	b := newTestBeam()
	b.NoGravity = false
	b.Step()
	assert.Less(t, b.Position.Y(), 1.5)
}

func TestBeamExpiresAfterLifetime(t *testing.T) {
	b := newTestBeam()
	for i := 0; i < config.BeamLifetimeTicks; i++ {
		require.Equal(t, Flying, b.Step(), "tick %d", i+1)
	}
	assert.Equal(t, config.BeamLifetimeTicks, b.Age())

	assert.Equal(t, Expired, b.Step())
	assert.Equal(t, config.BeamLifetimeTicks+1, b.Age())
	assert.False(t, b.Alive())

	age := b.Age()
	pos := b.Position
	assert.Equal(t, Expired, b.Step(), "terminal states do not step")
	assert.Equal(t, age, b.Age())
	assert.Equal(t, pos, b.Position)
}

func TestExpiryIgnoresCollisionHistory(t *testing.T) {
	b := newTestBeam()
	for i := 0; i < config.BeamLifetimeTicks; i++ {
		b.OnCollision(EntityHit(shooter, true, b.Position))
		b.OnCollision(Hit{Kind: HitOther})
		b.Step()
	}
	assert.Equal(t, Expired, b.Step())
}

func TestSelfHitIsSuppressed(t *testing.T) {
	b := newTestBeam()
	effects, terminal := b.OnCollision(EntityHit(shooter, true, b.Position))
	assert.False(t, terminal)
	assert.True(t, effects.Empty())
	assert.Equal(t, Flying, b.State())
}

func TestLivingHitDamagesOnce(t *testing.T) {
	b := newTestBeam()
	point := mgl64.Vec3{0, 1.5, 3}

	effects, terminal := b.OnCollision(EntityHit(dummy, true, point))
	require.True(t, terminal)
	assert.Equal(t, Impacted, b.State())

	require.NotNil(t, effects.Damage)
	assert.Equal(t, 10.0, effects.Damage.Amount)
	assert.Equal(t, dummy, effects.Damage.Target)
	assert.Equal(t, shooter, effects.Damage.Attacker)

	assert.Equal(t, config.ImpactParticleCount, effects.Particles.Count)
	assert.Equal(t, config.ParticleGlow, effects.Particles.Kind)
	assert.Equal(t, point, effects.Particles.At)

	require.NotNil(t, effects.Sound)
	assert.Equal(t, config.SoundBeamImpact, effects.Sound.ID)
	assert.Equal(t, 0.8, effects.Sound.Volume)
	assert.Equal(t, 1.4, effects.Sound.Pitch)

	again, terminal := b.OnCollision(EntityHit(dummy, true, point))
	assert.False(t, terminal)
	assert.True(t, again.Empty())
	assert.Equal(t, Impacted, b.State())
}

func TestBlockHitBurstsWithoutDamageOrSound(t *testing.T) {
	b := newTestBeam()
	effects, terminal := b.OnCollision(BlockHit(mgl64.Vec3{0, 1.5, 6}))
	require.True(t, terminal)
	assert.Equal(t, Impacted, b.State())
	assert.Nil(t, effects.Damage)
	assert.Nil(t, effects.Sound)
	assert.Equal(t, config.ImpactParticleCount, effects.Particles.Count)
}

func TestIgnoredCollisions(t *testing.T) {
	tests := []struct {
		name  string
		owner Owner
		hit   Hit
	}{
		{"non-living entity", Owner{ID: shooter, Combatant: true}, EntityHit(dummy, false, mgl64.Vec3{})},
		{"non-combatant owner", Owner{ID: shooter}, EntityHit(dummy, true, mgl64.Vec3{})},
		{"other kind", Owner{ID: shooter, Combatant: true}, Hit{Kind: HitOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBeam(tt.owner, mgl64.Vec3{})
			effects, terminal := b.OnCollision(tt.hit)
			assert.False(t, terminal)
			assert.True(t, effects.Empty())
			assert.Equal(t, Flying, b.State())
		})
	}
}

func TestImpactedBeamDoesNotExpire(t *testing.T) {
	b := newTestBeam()
	b.OnCollision(BlockHit(mgl64.Vec3{}))
	for i := 0; i < 50; i++ {
		assert.Equal(t, Impacted, b.Step())
	}
}

func TestLerpMotionConvergesWithoutOvershoot(t *testing.T) {
	b := NewBeam(Owner{ID: shooter}, mgl64.Vec3{})
	target := mgl64.Vec3{2, 0, 0}

	b.LerpMotion(target)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, b.Velocity)

	b.LerpMotion(target)
	assert.Equal(t, mgl64.Vec3{1.5, 0, 0}, b.Velocity)

	for i := 0; i < 20; i++ {
		b.LerpMotion(target)
		assert.LessOrEqual(t, b.Velocity.X(), 2.0)
	}
}

func TestSnapshots(t *testing.T) {
	b := newTestBeam()
	b.Step()
	assert.Equal(t, b.Position, b.Snapshot().Position)
	assert.Equal(t, b.PrevPosition, b.Previous().Position)
	assert.InDelta(t, 0.0, b.Snapshot().Yaw, 1e-9)
	assert.InDelta(t, 0.0, b.Snapshot().Pitch, 1e-9)
}
