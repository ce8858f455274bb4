// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует под собой игру с
// затемнением паузы.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	wasMuted      bool
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

// Enter останавливает часы и глушит звук до конца паузы.
func (s *PauseState) Enter() {
	if !s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
	if sounds := s.previousState.sounds; sounds != nil {
		s.wasMuted = sounds.Muted()
		sounds.SetMuted(true)
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

// Draw полагается на HUD игры, который сам добавляет затемнение на паузе.
func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
}

func (s *PauseState) Exit() {
	if s.previousState.game.IsPaused() {
		s.previousState.game.TogglePause()
	}
	if sounds := s.previousState.sounds; sounds != nil {
		sounds.SetMuted(s.wasMuted)
	}
}
