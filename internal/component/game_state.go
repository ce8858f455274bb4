// internal/component/game_state.go
package component

// GameState хранит счетчики сессии для HUD.
type GameState struct {
	Tick       int64
	BeamsFired int
	Hits       int
	Kills      int
}
