package app

import (
	"go-space-marine/internal/event"

	"go.uber.org/zap"
)

// GameEventListener слушает события партии
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameOver:
		score, _ := e.Data.(int)
		// Новых врагов и бонусов больше не будет
		l.game.WaveSystem.Stop()
		l.game.PickupSystem.Stop()
		l.game.log.Info("run finished", zap.Int("score", score), zap.Duration("duration", l.game.Now()))
		for _, fn := range l.game.onGameOver {
			fn(score)
		}
	}
}
