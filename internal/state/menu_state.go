// internal/state/menu_state.go
package state

import (
	"image/color"
	"math"

	"go-space-marine/internal/config"
	"go-space-marine/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuState — стартовый экран
type MenuState struct {
	sm      *StateMachine
	session SessionFactory
	elapsed float64 // Секунды с входа на экран
}

func NewMenuState(sm *StateMachine, session SessionFactory) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Enter() {
	m.elapsed = 0
}

func (m *MenuState) Update(deltaTime float64) {
	m.advance(deltaTime)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	w := float32(screen.Bounds().Dx())
	cy := float32(screen.Bounds().Dy()) / 2
	vector.DrawFilledRect(screen, 0, cy-60, w, 120, config.MenuBandColor, false)
	vector.DrawFilledRect(screen, 0, cy-40, w, 80, config.MenuStripColor, false)
	ui.DrawCentered(screen, "SPACE MARINE", int(cy)-8)
	if m.promptVisible() {
		ui.DrawCentered(screen, "CLICK TO START", int(cy)+16)
	}
	if a := m.fadeAlpha(); a > 0 {
		vector.DrawFilledRect(screen, 0, 0, w, cy*2, color.RGBA{A: uint8(a * 255)}, false)
	}
}

func (m *MenuState) advance(deltaTime float64) {
	m.elapsed += deltaTime
}

// fadeAlpha — непрозрачность чёрной шторки, проявляющей экран.
func (m *MenuState) fadeAlpha() float64 {
	return max(0, 1-m.elapsed/config.MenuFadeInSeconds)
}

// promptVisible мигает надписью: видна первую и последнюю четверть периода.
func (m *MenuState) promptVisible() bool {
	phase := math.Mod(m.elapsed, config.MenuBlinkPeriodSeconds) / config.MenuBlinkPeriodSeconds
	return phase < 0.25 || phase >= 0.75
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
