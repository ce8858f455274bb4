// internal/interfaces/world.go
package interfaces

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World,Wielder

import (
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

// DamageSource attributes damage to whoever caused it.
type DamageSource struct {
	Kind     string // "player_attack", "generic"
	Attacker types.EntityID
}

// World is the set of host services the mod content calls into.
type World interface {
	Spawn(beam *projectile.Beam) types.EntityID
	Remove(id types.EntityID)
	ApplyDamage(target types.EntityID, amount float64, source DamageSource)
	PlaySound(at mgl64.Vec3, sound string, volume, pitch float64)
	EmitParticles(burst projectile.ParticleBurst)
	StartCooldown(actor types.EntityID, item string, ticks int)
}

// Wielder is the entity holding and using an item.
type Wielder interface {
	ID() types.EntityID
	Position() mgl64.Vec3
	EyeY() float64
	Pitch() float64 // degrees, positive looks down
	Yaw() float64   // degrees, 0 faces +Z
	Health() float64
	MaxHealth() float64
	// Combatant reports whether damage can be attributed to the wielder.
	Combatant() bool
}
