// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-space-marine/internal/config"
	"go-space-marine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — экран результатов с итоговым счётом
type GameOverState struct {
	sm      *StateMachine
	session SessionFactory
	score   int
}

func NewGameOverState(sm *StateMachine, session SessionFactory, score int) *GameOverState {
	return &GameOverState{sm: sm, session: session, score: score}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.SetState(NewGameState(s.sm, s.session))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cy := screen.Bounds().Dy() / 2
	ui.DrawCentered(screen, "GAME OVER", cy-24)
	ui.DrawCentered(screen, fmt.Sprintf("Score: %d", s.score), cy)
	ui.DrawCentered(screen, "CLICK TO RESTART", cy+24)
}

func (s *GameOverState) Exit() {}
