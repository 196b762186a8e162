// internal/ui/player_health_indicator.go
package ui

import (
	"go-space-marine/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		X:      x,
		Y:      y,
		Width:  config.HealthBarWidth,
		Height: config.HealthBarHeight,
	}
}

// Fill — доля заполненной полосы, 0..1.
func (i *PlayerHealthIndicator) Fill(health, maxHealth int) float32 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float32(health) / float32(maxHealth)
}

// Draw рисует подложку и заполненную часть полосы.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width, i.Height, config.HealthBarBack, false)
	if w := i.Width * i.Fill(health, maxHealth); w > 0 {
		vector.DrawFilledRect(screen, i.X, i.Y, w, i.Height, config.HealthBarColor, false)
	}
}
