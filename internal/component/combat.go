// internal/component/combat.go
package component

// Health - здоровье живой сущности. Сущности без него неживые.
type Health struct {
	Value float64
	Max   float64
}

// Dead сообщает, закончилось ли здоровье.
func (h *Health) Dead() bool { return h.Value <= 0 }

// Collider - хитбокс по осям, стоящий на позиции сущности.
type Collider struct {
	Width  float64
	Height float64
}

// Cooldowns хранит оставшиеся тики перезарядки по предметам.
type Cooldowns struct {
	Remaining map[string]int
}

// Active сообщает, идет ли еще перезарядка предмета.
func (c *Cooldowns) Active(item string) bool {
	return c.Remaining[item] > 0
}

// Fraction - оставшаяся доля перезарядки для HUD.
func (c *Cooldowns) Fraction(item string, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(c.Remaining[item]) / float64(total)
}
