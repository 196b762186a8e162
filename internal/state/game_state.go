// internal/state/game_state.go
package state

import (
	"go-space-marine/internal/app"
	"go-space-marine/internal/input"
	"go-space-marine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SessionFactory создаёт новую партию.
type SessionFactory func() *app.Game

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session SessionFactory
	game    *app.Game
	hud     *ui.HUD

	over       bool
	finalScore int
}

func NewGameState(sm *StateMachine, session SessionFactory) *GameState {
	g := session()
	p := g.PlayerState()
	gs := &GameState{
		sm:      sm,
		session: session,
		game:    g,
		hud:     ui.NewHUD(g.EventDispatcher, g.Score(), p.CurrentHealth, p.InitialHealth, p.Lives),
	}
	g.OnGameOver(func(score int) {
		gs.over = true
		gs.finalScore = score
	})
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Tick(deltaTime, input.Read())

	if g.over {
		g.sm.SetState(NewGameOverState(g.sm, g.session, g.finalScore))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	g.hud.Draw(screen)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
