// internal/system/enemy.go
package system

import (
	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"
)

// EnemySystem управляет наземными врагами: преследование цели, покачивание
// при беге, урон и уничтожение. Враги создаются и удаляются поштучно, без пула.
type EnemySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	visuals         *VisualEffectSystem
	def             defs.EnemyDefinition
	bounds          Bounds
}

func NewEnemySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, visuals *VisualEffectSystem, def defs.EnemyDefinition, bounds Bounds) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		visuals:         visuals,
		def:             def,
		bounds:          bounds,
	}
}

// Spawn создаёт врага. Если точка ниже пола, враг ставится на пол.
func (s *EnemySystem) Spawn(x, y float64) types.EntityID {
	body := &component.Body{
		X:                  x,
		Y:                  y,
		W:                  s.def.Body.W,
		H:                  s.def.Body.H,
		GravityY:           s.def.Gravity,
		AllowGravity:       true,
		CollideWorldBounds: true,
		CollidesWithFloor:  true,
	}
	if body.Bottom() >= s.bounds.FloorY {
		body.Y = s.bounds.FloorY - body.H/2
		body.OnFloor = true
	}

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = body
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:        s.def.ID,
		Health:       s.def.Health,
		Speed:        s.def.Speed,
		RunStartY:    body.Y,
		RunAmplitude: s.def.RunAmplitude,
		RunFrequency: s.def.RunFrequency,
		ScoreValue:   s.def.ScoreValue,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyColor, Visible: true}
	return id
}

// SetTarget запоминает цель по идентификатору, не владея ею.
func (s *EnemySystem) SetTarget(id, target types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}
	enemy.Target = target
	return true
}

// Update двигает врагов к цели по горизонтали. Уничтоженная цель
// считается отсутствующей.
func (s *EnemySystem) Update() {
	for id, enemy := range s.ecs.Enemies {
		body := s.ecs.Bodies[id]

		if target, ok := s.targetBody(enemy); ok {
			dir, nonZero := utils.Vec2{X: target.X - body.X, Y: target.Y - body.Y}.Normalize()
			if nonZero {
				body.VX = dir.X * enemy.Speed
				enemy.FacingLeft = dir.X < 0
			} else {
				body.VX = 0
			}
		} else {
			enemy.Target = types.NoEntity
		}

		enemy.RunTime += enemy.RunFrequency

		// Враги не прыгают и не подскакивают
		if !body.OnFloor {
			body.VY = 0
		}
	}
}

func (s *EnemySystem) targetBody(enemy *component.Enemy) (*component.Body, bool) {
	body, ok := s.ecs.Bodies[enemy.Target]
	return body, ok && enemy.Target != types.NoEntity
}

// TakeDamage снимает одну единицу здоровья. При смерти начисляет награду
// (через EnemyKilled) и уничтожает врага ровно один раз.
func (s *EnemySystem) TakeDamage(id types.EntityID) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return false
	}
	enemy.Health--
	s.visuals.Flash(id, s.def.FlashDuration(), 1)

	if enemy.Health <= 0 {
		score := enemy.ScoreValue
		s.Destroy(id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{ID: id, Score: score},
		})
	}
	return true
}

// Destroy удаляет врага без награды. Повторный вызов ничего не делает.
func (s *EnemySystem) Destroy(id types.EntityID) bool {
	if _, ok := s.ecs.Enemies[id]; !ok {
		return false
	}
	return s.ecs.Destroy(id)
}

func (s *EnemySystem) Alive(id types.EntityID) bool {
	_, ok := s.ecs.Enemies[id]
	return ok
}

func (s *EnemySystem) Count() int {
	return len(s.ecs.Enemies)
}
