// internal/defs/types.go
package defs

// Category groups entity types the way the host spawner does.
type Category string

const (
	CategoryMisc     Category = "MISC"
	CategoryCreature Category = "CREATURE"
)

// Tier holds the material stats shared by every tool of that material.
type Tier struct {
	ID                string  `json:"id"`
	Uses              int     `json:"uses"`
	Speed             float64 `json:"speed"`
	AttackDamageBonus float64 `json:"attack_damage_bonus"`
	Level             int     `json:"level"`
	Enchantability    int     `json:"enchantability"`
}

// DefaultTiers mirrors the vanilla tool tiers the mod can build on.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: "WOOD", Uses: 59, Speed: 2.0, AttackDamageBonus: 0, Level: 0, Enchantability: 15},
		{ID: "STONE", Uses: 131, Speed: 4.0, AttackDamageBonus: 1, Level: 1, Enchantability: 5},
		{ID: "IRON", Uses: 250, Speed: 6.0, AttackDamageBonus: 2, Level: 2, Enchantability: 14},
		{ID: "DIAMOND", Uses: 1561, Speed: 8.0, AttackDamageBonus: 3, Level: 3, Enchantability: 10},
		{ID: "GOLD", Uses: 32, Speed: 12.0, AttackDamageBonus: 0, Level: 0, Enchantability: 22},
		{ID: "NETHERITE", Uses: 2031, Speed: 9.0, AttackDamageBonus: 4, Level: 4, Enchantability: 15},
	}
}
