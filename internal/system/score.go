package system

import (
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
)

// ScoreSystem ведёт счёт партии. Счёт растёт из двух источников:
// бонус за убийство (событие EnemyKilled) и очки за каждое попадание.
type ScoreSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// Add начисляет очки и обновляет отображение счёта.
func (s *ScoreSystem) Add(points int) {
	if points == 0 {
		return
	}
	s.ecs.GameState.Score += points
	s.eventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: s.ecs.GameState.Score})
}

func (s *ScoreSystem) Score() int {
	return s.ecs.GameState.Score
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		s.Add(data.Score)
	}
}
