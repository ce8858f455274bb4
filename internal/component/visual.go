// internal/component/visual.go
package component

// Particle - короткоживущая искра.
type Particle struct {
	Kind    string
	Life    int // осталось тиков
	MaxLife int
}

// DamageFlash подсвечивает сущность несколько тиков после урона.
type DamageFlash struct {
	Ticks int
}
