// internal/item/master_sword.go
package item

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/config"
	"master-quest/internal/defs"
	"master-quest/internal/interfaces"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

// Outcome is what the host is told about an interaction.
type Outcome int

const (
	Pass Outcome = iota
	Success
)

// Result of using the sword. Outcome is Success even when nothing fired so
// the host still plays the swing animation.
type Result struct {
	Outcome Outcome
	Fired   bool
	Beam    types.EntityID
}

// MasterSword is an unbreakable sword that fires a beam when its wielder
// is at (or within a point of) full health.
type MasterSword struct {
	def    defs.ItemDefinition
	tier   defs.Tier
	rng    projectile.Gaussian
	logger *slog.Logger
}

// NewMasterSword builds the sword from its definition. The definition must
// carry an activation block.
func NewMasterSword(def defs.ItemDefinition, tier defs.Tier, rng projectile.Gaussian, logger *slog.Logger) *MasterSword {
	return &MasterSword{def: def, tier: tier, rng: rng, logger: logger}
}

// ID returns the item's definition ID.
func (s *MasterSword) ID() string { return s.def.ID }

// Definition returns the definition the sword was built from.
func (s *MasterSword) Definition() defs.ItemDefinition { return s.def }

// CanBeDepleted is false: the sword has infinite durability.
func (s *MasterSword) CanBeDepleted() bool { return false }

// HurtEnemy reports whether hitting an enemy costs durability. It never does.
func (s *MasterSword) HurtEnemy(target, attacker types.EntityID) bool { return false }

// MineBlock reports whether breaking a block costs durability. It never does.
func (s *MasterSword) MineBlock(pos mgl64.Vec3, miner types.EntityID) bool { return false }

// AttackDamage is the melee damage shown on the tooltip: player base,
// tier bonus and the item's own modifier.
func (s *MasterSword) AttackDamage() float64 {
	return config.PlayerBaseAttack + s.tier.AttackDamageBonus + float64(s.def.AttackDamage)
}

// AttackSpeed is swings per second.
func (s *MasterSword) AttackSpeed() float64 {
	return config.PlayerBaseAttackRate + s.def.AttackSpeed
}

// Use fires a beam along the wielder's aim if they are at full health.
func (s *MasterSword) Use(w interfaces.Wielder, world interfaces.World) Result {
	act := s.def.Activation
	if act == nil {
		return Result{Outcome: Pass}
	}

	atFullHealth := w.Health() >= w.MaxHealth()-act.HealthTolerance
	if !atFullHealth {
		return Result{Outcome: Success}
	}

	pos := w.Position()
	beam := projectile.NewBeam(
		projectile.Owner{ID: w.ID(), Combatant: w.Combatant()},
		mgl64.Vec3{pos.X(), w.EyeY() - act.EyeOffset, pos.Z()},
	)
	beam.NoGravity = true
	beam.Shoot(w.Pitch(), w.Yaw(), act.Speed, act.Inaccuracy, s.rng)

	id := world.Spawn(beam)
	world.PlaySound(pos, act.Sound, act.SoundVolume, act.SoundPitch)
	world.StartCooldown(w.ID(), s.def.ID, act.CooldownTicks)

	s.logger.Debug("beam fired", "wielder", w.ID(), "beam", id, "yaw", w.Yaw(), "pitch", w.Pitch())
	return Result{Outcome: Success, Fired: true, Beam: id}
}
