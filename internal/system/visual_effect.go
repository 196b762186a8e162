// internal/system/visual_effect.go
package system

import (
	"time"

	"go-space-marine/internal/component"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
// Вспышку снимает отложенный вызов планировщика.
type VisualEffectSystem struct {
	ecs   *entity.ECS
	sched *timer.Scheduler
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, sched *timer.Scheduler) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, sched: sched}
}

// Flash закрашивает сущность на cycles полупериодов длиной period.
// Новая вспышка заменяет текущую; снятие старой её не затронет.
func (s *VisualEffectSystem) Flash(id types.EntityID, period time.Duration, cycles int) {
	if !s.ecs.Alive(id) || period <= 0 || cycles <= 0 {
		return
	}
	flash := &component.DamageFlash{
		Started: s.sched.Now(),
		Period:  period,
		Cycles:  cycles,
	}
	s.ecs.DamageFlashes[id] = flash
	s.sched.After(period*time.Duration(cycles), func() {
		if s.ecs.DamageFlashes[id] == flash {
			delete(s.ecs.DamageFlashes, id)
		}
	})
}

// Flashing сообщает, закрашена ли сущность прямо сейчас.
func (s *VisualEffectSystem) Flashing(id types.EntityID) bool {
	flash, ok := s.ecs.DamageFlashes[id]
	return ok && flash.Visible(s.sched.Now())
}
