// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-space-marine/internal/config"
	"go-space-marine/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD показывает счёт, здоровье и жизни. Значения обновляются по событиям,
// сам HUD в состояние партии не заглядывает.
type HUD struct {
	fontFace  font.Face
	health    *PlayerHealthIndicator
	Score     int
	Health    int
	MaxHealth int
	Lives     int
}

// NewHUD создаёт HUD с начальными значениями и подписывает его на события.
func NewHUD(dispatcher *event.Dispatcher, score, health, maxHealth, lives int) *HUD {
	h := &HUD{
		fontFace:  basicfont.Face7x13,
		health:    NewPlayerHealthIndicator(config.HUDMarginX, config.HUDHealthY+6),
		Score:     score,
		Health:    health,
		MaxHealth: maxHealth,
		Lives:     lives,
	}
	dispatcher.Subscribe(event.ScoreChanged, h)
	dispatcher.Subscribe(event.PlayerHealthChanged, h)
	dispatcher.Subscribe(event.PlayerLivesChanged, h)
	return h
}

func (h *HUD) OnEvent(e event.Event) {
	v, ok := e.Data.(int)
	if !ok {
		return
	}
	switch e.Type {
	case event.ScoreChanged:
		h.Score = v
	case event.PlayerHealthChanged:
		h.Health = v
	case event.PlayerLivesChanged:
		h.Lives = v
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	text.Draw(screen, fmt.Sprintf("Score: %d", h.Score), h.fontFace, config.HUDMarginX, config.HUDScoreY, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Health: %d", h.Health), h.fontFace, config.HUDMarginX, config.HUDHealthY, config.TextLightColor)
	h.health.Draw(screen, h.Health, h.MaxHealth)
	text.Draw(screen, fmt.Sprintf("Lives: %d", h.Lives), h.fontFace, config.HUDMarginX, config.HUDLivesY, config.TextLightColor)
}

// DrawCentered выводит строку по центру экрана на высоте y.
func DrawCentered(screen *ebiten.Image, s string, y int) {
	bounds := text.BoundString(basicfont.Face7x13, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, config.TextLightColor)
}
