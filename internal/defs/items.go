// internal/defs/items.go
package defs

import "master-quest/internal/config"

// ItemDefinition holds the static data for an item the mod registers.
type ItemDefinition struct {
	ID           string         `json:"id"`
	Tier         string         `json:"tier"`
	AttackDamage int            `json:"attack_damage"`
	AttackSpeed  float64        `json:"attack_speed"`
	Unbreakable  bool           `json:"unbreakable"`
	CreativeTab  string         `json:"creative_tab"`
	TabAfter     string         `json:"tab_after"`
	Activation   *ActivationDef `json:"activation,omitempty"`
}

// ActivationDef describes the projectile an item fires on use.
type ActivationDef struct {
	Entity          string  `json:"entity"`
	HealthTolerance float64 `json:"health_tolerance"`
	Speed           float64 `json:"speed"`
	Inaccuracy      float64 `json:"inaccuracy"`
	EyeOffset       float64 `json:"eye_offset"`
	CooldownTicks   int     `json:"cooldown_ticks"`
	Sound           string  `json:"sound"`
	SoundVolume     float64 `json:"sound_volume"`
	SoundPitch      float64 `json:"sound_pitch"`
}

// DefaultItems returns the built-in item definitions.
func DefaultItems() []ItemDefinition {
	return []ItemDefinition{
		{
			ID:           config.SwordID,
			Tier:         "NETHERITE",
			AttackDamage: config.SwordAttackDamage,
			AttackSpeed:  config.SwordAttackSpeed,
			Unbreakable:  true,
			CreativeTab:  config.CombatTab,
			TabAfter:     config.TabAnchorID,
			Activation: &ActivationDef{
				Entity:          config.BeamEntityID,
				HealthTolerance: config.FullHealthTolerance,
				Speed:           config.BeamSpeed,
				Inaccuracy:      config.BeamInaccuracy,
				EyeOffset:       config.BeamEyeOffset,
				CooldownTicks:   config.SwordCooldownTicks,
				Sound:           config.SoundBeamShoot,
				SoundVolume:     config.ShootVolume,
				SoundPitch:      config.ShootPitch,
			},
		},
	}
}
