// internal/system/pickup.go
package system

import (
	"image/color"
	"time"

	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"

	"go.uber.org/zap"
)

// PickupSystem сбрасывает бонусы сверху по таймеру. Для каждого вида
// число бонусов в полёте и на полу ограничено ёмкостью из определения.
type PickupSystem struct {
	ecs    *entity.ECS
	sched  *timer.Scheduler
	rng    *utils.PRNGService
	log    *zap.Logger
	bounds Bounds
	kinds  map[defs.PickupKind]defs.PickupDefinition
	timers []timer.Handle
}

func NewPickupSystem(ecs *entity.ECS, sched *timer.Scheduler, rng *utils.PRNGService, bounds Bounds, log *zap.Logger) *PickupSystem {
	return &PickupSystem{
		ecs:    ecs,
		sched:  sched,
		rng:    rng,
		log:    log,
		bounds: bounds,
		kinds:  make(map[defs.PickupKind]defs.PickupDefinition),
	}
}

// Start запускает повторяющийся таймер для вида бонуса.
func (s *PickupSystem) Start(def defs.PickupDefinition, interval time.Duration) {
	s.kinds[def.Kind] = def
	s.timers = append(s.timers, s.sched.Every(interval, func() {
		s.Spawn(def.Kind)
	}))
}

// Stop снимает таймеры сброса.
func (s *PickupSystem) Stop() {
	for _, h := range s.timers {
		s.sched.Cancel(h)
	}
	s.timers = nil
}

// Spawn сбрасывает один бонус в случайной точке верхней границы.
// Если ёмкость вида исчерпана, ничего не происходит.
func (s *PickupSystem) Spawn(kind defs.PickupKind) (types.EntityID, bool) {
	def, ok := s.kinds[kind]
	if !ok || s.Count(kind) >= def.Capacity {
		return types.NoEntity, false
	}
	x := s.rng.Float64() * s.bounds.Width

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{
		X:                  x,
		Y:                  0,
		W:                  def.Body.W,
		H:                  def.Body.H,
		VY:                 def.FallSpeed,
		CollideWorldBounds: true,
		CollidesWithFloor:  true,
	}
	s.ecs.Pickups[id] = &component.Pickup{Kind: kind}
	s.ecs.Renderables[id] = &component.Renderable{Color: pickupColor(kind), Visible: true}
	s.log.Debug("pickup spawned", zap.String("kind", string(kind)), zap.Float64("x", x))
	return id, true
}

// Consume уничтожает бонус и возвращает его вид. Повторный вызов ничего не делает.
func (s *PickupSystem) Consume(id types.EntityID) (defs.PickupKind, bool) {
	pickup, ok := s.ecs.Pickups[id]
	if !ok {
		return "", false
	}
	kind := pickup.Kind
	s.ecs.Destroy(id)
	return kind, true
}

// Count — число живых бонусов вида kind.
func (s *PickupSystem) Count(kind defs.PickupKind) int {
	n := 0
	for _, p := range s.ecs.Pickups {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func pickupColor(kind defs.PickupKind) color.RGBA {
	if kind == defs.PickupBoost {
		return config.BoostPickupColor
	}
	return config.HealthPickupColor
}
