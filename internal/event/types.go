// internal/event/types.go
package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/types"
)

const (
	BeamFired        EventType = "BeamFired"
	BeamImpacted     EventType = "BeamImpacted"
	BeamExpired      EventType = "BeamExpired"
	DamageApplied    EventType = "DamageApplied"
	EntityKilled     EventType = "EntityKilled"
	SoundPlayed      EventType = "SoundPlayed"
	ParticlesEmitted EventType = "ParticlesEmitted"
	CooldownStarted  EventType = "CooldownStarted"
)

// BeamData передается с BeamFired, BeamImpacted и BeamExpired.
type BeamData struct {
	Beam  types.EntityID
	Owner types.EntityID
	At    mgl64.Vec3
	Age   int
}

// DamageData передается с DamageApplied.
type DamageData struct {
	Target   types.EntityID
	Attacker types.EntityID
	Amount   float64
	Kind     string
	Health   float64 // после удара
}

// KilledData передается с EntityKilled.
type KilledData struct {
	Entity types.EntityID
	Killer types.EntityID
}

// SoundData передается с SoundPlayed.
type SoundData struct {
	At     mgl64.Vec3
	ID     string
	Volume float64
	Pitch  float64
}

// ParticlesData передается с ParticlesEmitted.
type ParticlesData struct {
	At    mgl64.Vec3
	Kind  string
	Count int
}

// CooldownData передается с CooldownStarted.
type CooldownData struct {
	Actor types.EntityID
	Item  string
	Ticks int
}
