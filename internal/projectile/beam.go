// Package projectile holds the Master Sword beam: a short-lived projectile
// that flies until it hits something or runs out of time.
package projectile

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/config"
	"master-quest/internal/types"
)

// State is the lifecycle state of a beam.
type State int

const (
	Flying State = iota
	Expired
	Impacted
)

func (s State) String() string {
	switch s {
	case Flying:
		return "flying"
	case Expired:
		return "expired"
	case Impacted:
		return "impacted"
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s != Flying
}

// Owner is a weak reference to whoever fired the beam.
type Owner struct {
	ID types.EntityID
	// Combatant owners get damage attributed to them; others deal none.
	Combatant bool
}

// Gaussian is the random source used to spread an inaccurate shot.
type Gaussian interface {
	NormFloat64() float64
}

// Snapshot is the part of the beam the renderer needs for one frame.
type Snapshot struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees
	Pitch    float64 // degrees, positive is up
}

// Simulated is what the host adapter drives every tick.
type Simulated interface {
	Step() State
	OnCollision(hit Hit) (Effects, bool)
	Snapshot() Snapshot
}

var _ Simulated = (*Beam)(nil)

// Beam is the projectile state machine. Only the simulation thread mutates
// it; renderers read snapshots between ticks.
type Beam struct {
	owner Owner
	state State
	age   int

	Position     mgl64.Vec3
	PrevPosition mgl64.Vec3
	Velocity     mgl64.Vec3
	Yaw          float64
	Pitch        float64
	PrevYaw      float64
	PrevPitch    float64
	NoGravity    bool
}

// NewBeam creates a flying beam of age zero at pos.
func NewBeam(owner Owner, pos mgl64.Vec3) *Beam {
	return &Beam{
		owner:        owner,
		state:        Flying,
		Position:     pos,
		PrevPosition: pos,
	}
}

func (b *Beam) Owner() Owner { return b.owner }
func (b *Beam) State() State { return b.state }
func (b *Beam) Age() int     { return b.age }
func (b *Beam) Alive() bool  { return b.state == Flying }

// Persistent is always false: beams are never written to save data.
func (b *Beam) Persistent() bool { return false }

// Shoot sets the velocity from an aim rotation in degrees. Yaw 0 faces +Z
// and a positive pitch looks down, like the wielder's head rotation.
func (b *Beam) Shoot(pitch, yaw, speed, inaccuracy float64, rng Gaussian) {
	p := mgl64.DegToRad(pitch)
	y := mgl64.DegToRad(yaw)
	dir := mgl64.Vec3{
		-math.Sin(y) * math.Cos(p),
		-math.Sin(p),
		math.Cos(y) * math.Cos(p),
	}.Normalize()

	if inaccuracy != 0 && rng != nil {
		dir = dir.Add(mgl64.Vec3{
			rng.NormFloat64() * 0.0075 * inaccuracy,
			rng.NormFloat64() * 0.0075 * inaccuracy,
			rng.NormFloat64() * 0.0075 * inaccuracy,
		})
	}

	b.Velocity = dir.Mul(speed)
	b.faceVelocity()
	b.PrevYaw, b.PrevPitch = b.Yaw, b.Pitch
}

// Step advances a flying beam by one tick and expires it once its age
// passes the lifetime.
func (b *Beam) Step() State {
	if b.state != Flying {
		return b.state
	}

	b.PrevPosition = b.Position
	b.PrevYaw, b.PrevPitch = b.Yaw, b.Pitch
	b.age++

	if !b.NoGravity {
		b.Velocity[1] -= config.BeamGravity
	}
	b.Position = b.Position.Add(b.Velocity)
	b.faceVelocity()

	if b.age > config.BeamLifetimeTicks {
		b.state = Expired
	}
	return b.state
}

// OnCollision applies the impact policy for hit. It returns the effects to
// carry out and whether the beam reached a terminal state.
func (b *Beam) OnCollision(hit Hit) (Effects, bool) {
	if b.state != Flying {
		return Effects{}, false
	}
	if hit.Kind == HitEntity && hit.Entity == b.owner.ID {
		return Effects{}, false
	}

	switch hit.Kind {
	case HitEntity:
		if !hit.Living || !b.owner.Combatant {
			return Effects{}, false
		}
		b.state = Impacted
		return Effects{
			Damage: &Damage{
				Target:   hit.Entity,
				Attacker: b.owner.ID,
				Amount:   config.BeamDamage,
			},
			Particles: impactBurst(hit.Point),
			Sound: &Sound{
				At:     hit.Point,
				ID:     config.SoundBeamImpact,
				Volume: config.ImpactVolume,
				Pitch:  config.ImpactPitch,
			},
		}, true
	case HitBlock:
		b.state = Impacted
		return Effects{Particles: impactBurst(hit.Point)}, true
	case HitOther:
		return Effects{}, false
	}
	return Effects{}, false
}

// LerpMotion blends an authoritative velocity into the current one so a
// correction does not snap the beam onto a new course.
func (b *Beam) LerpMotion(target mgl64.Vec3) {
	b.Velocity = b.Velocity.Add(target.Sub(b.Velocity).Mul(config.MotionSmoothing))
}

// Snapshot returns the current render state.
func (b *Beam) Snapshot() Snapshot {
	return Snapshot{Position: b.Position, Yaw: b.Yaw, Pitch: b.Pitch}
}

// Previous returns the render state from the start of the last tick.
func (b *Beam) Previous() Snapshot {
	return Snapshot{Position: b.PrevPosition, Yaw: b.PrevYaw, Pitch: b.PrevPitch}
}

func (b *Beam) faceVelocity() {
	v := b.Velocity
	if v.Len() == 0 {
		return
	}
	horizontal := math.Sqrt(v[0]*v[0] + v[2]*v[2])
	b.Yaw = mgl64.RadToDeg(math.Atan2(v[0], v[2]))
	b.Pitch = mgl64.RadToDeg(math.Atan2(v[1], horizontal))
}

func impactBurst(at mgl64.Vec3) ParticleBurst {
	return ParticleBurst{
		At:     at,
		Kind:   config.ParticleGlow,
		Count:  config.ImpactParticleCount,
		Offset: mgl64.Vec3{config.ImpactParticleOffset, config.ImpactParticleOffset, config.ImpactParticleOffset},
		Speed:  config.ImpactParticleSpeed,
	}
}
