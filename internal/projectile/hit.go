package projectile

import (
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/types"
)

// HitKind tags what a collision touched.
type HitKind int

const (
	HitOther HitKind = iota
	HitEntity
	HitBlock
)

func (k HitKind) String() string {
	switch k {
	case HitEntity:
		return "entity"
	case HitBlock:
		return "block"
	}
	return "other"
}

// Hit is a single collision reported by the host. Entity is only set for
// HitEntity; a block hit has no entity behind it.
type Hit struct {
	Kind   HitKind
	Entity types.EntityID
	Living bool
	Point  mgl64.Vec3
}

// EntityHit builds a hit against an entity.
func EntityHit(id types.EntityID, living bool, point mgl64.Vec3) Hit {
	return Hit{Kind: HitEntity, Entity: id, Living: living, Point: point}
}

// BlockHit builds a hit against terrain.
func BlockHit(point mgl64.Vec3) Hit {
	return Hit{Kind: HitBlock, Point: point}
}

// Damage asks the host to hurt Target on behalf of Attacker.
type Damage struct {
	Target   types.EntityID
	Attacker types.EntityID
	Amount   float64
}

// Sound asks the host to play a sound at a position.
type Sound struct {
	At     mgl64.Vec3
	ID     string
	Volume float64
	Pitch  float64
}

// ParticleBurst asks the host to emit Count particles of Kind around At.
// Offset is the per-axis random spread, Speed the velocity multiplier.
type ParticleBurst struct {
	At     mgl64.Vec3
	Kind   string
	Count  int
	Offset mgl64.Vec3
	Speed  float64
}

// Effects is what a collision produced. The zero value means nothing
// happened.
type Effects struct {
	Damage    *Damage
	Particles ParticleBurst
	Sound     *Sound
}

// Empty reports whether the effects carry nothing to apply.
func (e Effects) Empty() bool {
	return e.Damage == nil && e.Sound == nil && e.Particles.Count == 0
}
