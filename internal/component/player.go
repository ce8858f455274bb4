// internal/component/player.go
package component

// Player - компонент игрока, которым управляет ввод.
type Player struct {
	EyeHeight  float64
	RegenTimer int // тиков до возврата следующей единицы здоровья
	// Урон засчитывается игрокам-бойцам.
	Combatant bool
}
