// internal/system/player_system.go
package system

import (
	"time"

	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
	"go-space-marine/internal/input"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"

	"go.uber.org/zap"
)

// PlayerSystem отвечает за игрока: движение, прицел, стрельбу, урон,
// жизни и временные усиления.
type PlayerSystem struct {
	ecs             *entity.ECS
	sched           *timer.Scheduler
	eventDispatcher *event.Dispatcher
	visuals         *VisualEffectSystem
	projectiles     *ProjectilePool
	log             *zap.Logger
	def             defs.PlayerDefinition
	playerID        types.EntityID
}

func NewPlayerSystem(ecs *entity.ECS, sched *timer.Scheduler, eventDispatcher *event.Dispatcher, visuals *VisualEffectSystem, projectiles *ProjectilePool, def defs.PlayerDefinition, log *zap.Logger) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		sched:           sched,
		eventDispatcher: eventDispatcher,
		visuals:         visuals,
		projectiles:     projectiles,
		log:             log,
		def:             def,
	}
}

// Spawn создаёт игрока и его прицел. Игрок в партии один.
func (s *PlayerSystem) Spawn(x, y float64) types.EntityID {
	reticleID := s.ecs.NewEntity()
	s.ecs.Bodies[reticleID] = &component.Body{
		X:                  x,
		Y:                  y,
		W:                  config.ReticleSize,
		H:                  config.ReticleSize,
		CollideWorldBounds: true,
	}
	s.ecs.Renderables[reticleID] = &component.Renderable{Color: config.ReticleColor, Visible: true}

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{
		X:                  x,
		Y:                  y,
		W:                  s.def.Body.W,
		H:                  s.def.Body.H,
		GravityY:           s.def.Gravity,
		AllowGravity:       true,
		CollideWorldBounds: true,
		CollidesWithFloor:  true,
		Bounce:             s.def.Bounce,
	}
	s.ecs.Players[id] = &component.PlayerStateComponent{
		InitialHealth: s.def.InitialHealth,
		CurrentHealth: s.def.InitialHealth,
		Lives:         s.def.Lives,
		InitialSpeed:  s.def.Speed,
		Speed:         s.def.Speed,
		ReticleID:     reticleID,
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PlayerColor, Visible: true}
	s.playerID = id
	return id
}

func (s *PlayerSystem) PlayerID() types.EntityID {
	return s.playerID
}

// State возвращает состояние игрока или nil, если игрока нет.
func (s *PlayerSystem) State() *component.PlayerStateComponent {
	return s.ecs.Players[s.playerID]
}

// Update применяет ввод за кадр.
func (s *PlayerSystem) Update(in input.State) {
	p := s.State()
	if p == nil || p.Dead {
		return
	}
	body := s.ecs.Bodies[s.playerID]
	now := s.sched.Now()

	switch {
	case in.Left:
		body.VX = -p.Speed
		p.FacingLeft = true
	case in.Right:
		body.VX = p.Speed
		p.FacingLeft = false
	default:
		body.VX = 0
	}

	p.Propulsion = false
	if in.Jump && body.OnFloor {
		body.VY = s.def.JumpVelocity
		p.Propulsion = true
	}

	// Прицел догоняет указатель, а не прыгает к нему
	if reticle, ok := s.ecs.Bodies[p.ReticleID]; ok {
		reticle.SetVelocity(
			(in.PointerX-reticle.X)*config.ReticleGain,
			(in.PointerY-reticle.Y)*config.ReticleGain,
		)
	}

	if in.PointerDown {
		s.Fire()
	}

	if p.IsInvulnerable && now > p.InvulnerabilityUntil {
		p.IsInvulnerable = false
	}
}

// Fire выпускает снаряд в сторону прицела не чаще раза в FireCooldown.
// Если пул исчерпан, выстрел молча пропадает и кулдаун не начинается.
func (s *PlayerSystem) Fire() bool {
	p := s.State()
	if p == nil || p.Dead {
		return false
	}
	now := s.sched.Now()
	if now <= p.NextFireAt {
		return false
	}
	body := s.ecs.Bodies[s.playerID]
	target := utils.Vec2{X: body.X, Y: body.Y}
	if reticle, ok := s.ecs.Bodies[p.ReticleID]; ok {
		target = utils.Vec2{X: reticle.X, Y: reticle.Y}
	}
	if _, ok := s.projectiles.Fire(utils.Vec2{X: body.X, Y: body.Y}, target); !ok {
		s.log.Debug("shot dropped: projectile pool exhausted", zap.Int("capacity", s.projectiles.Capacity()))
		return false
	}
	p.NextFireAt = now + s.def.FireCooldown()
	return true
}

// TakeDamage наносит урон игроку. Возвращает false, если урон не применён:
// игрок неуязвим, уже без здоровья или без жизней.
func (s *PlayerSystem) TakeDamage(amount int) bool {
	p := s.State()
	if p == nil || p.Dead || p.IsInvulnerable || p.CurrentHealth <= 0 || p.Lives <= 0 || amount <= 0 {
		return false
	}
	now := s.sched.Now()

	p.CurrentHealth = utils.Clamp(p.CurrentHealth-amount, 0, p.InitialHealth)
	s.visuals.Flash(s.playerID, s.def.FlashDuration(), 2*(s.def.FlashRepeats+1))

	if p.CurrentHealth == 0 {
		p.Lives--
		if p.Lives > 0 {
			// Жизнь стоит полного здоровья
			p.CurrentHealth = p.InitialHealth
			s.log.Info("player lost a life", zap.Int("lives", p.Lives))
		} else {
			s.gameOver(p)
		}
	}

	// Окно неуязвимости даётся даже за смертельный удар
	p.IsInvulnerable = true
	p.InvulnerabilityUntil = now + s.def.Invulnerability()
	return true
}

func (s *PlayerSystem) gameOver(p *component.PlayerStateComponent) {
	if p.Dead {
		return
	}
	p.Dead = true
	p.Propulsion = false
	if p.BoostTimer != 0 {
		s.sched.Cancel(p.BoostTimer)
		p.BoostTimer = 0
	}
	s.ecs.GameState.Phase = component.GameOverPhase
	score := s.ecs.GameState.Score
	s.log.Info("game over", zap.Int("score", score))
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: score})
}

// IncreaseHealth лечит игрока, не превышая начального здоровья.
func (s *PlayerSystem) IncreaseHealth(amount int) {
	p := s.State()
	if p == nil || p.Dead {
		return
	}
	p.CurrentHealth = utils.Clamp(p.CurrentHealth+amount, 0, p.InitialHealth)
}

// GrantSpeedBoost поднимает скорость до speed на duration. Повторное усиление
// перезапускает окно: сброс к начальной скорости произойдёт один раз,
// через duration после последнего вызова.
func (s *PlayerSystem) GrantSpeedBoost(duration time.Duration, speed float64) {
	p := s.State()
	if p == nil || p.Dead {
		return
	}
	if p.BoostTimer != 0 {
		s.sched.Cancel(p.BoostTimer)
	}
	p.Speed = speed
	p.SpeedBoostUntil = s.sched.Now() + duration
	p.BoostTimer = s.sched.After(duration, func() {
		p.Speed = p.InitialSpeed
		p.SpeedBoostUntil = 0
		p.BoostTimer = 0
	})
}

// Bump отбрасывает игрока от точки from с фиксированной скоростью.
func (s *PlayerSystem) Bump(from utils.Vec2, speed float64) {
	body, ok := s.ecs.Bodies[s.playerID]
	if !ok {
		return
	}
	dir, nonZero := utils.Vec2{X: body.X, Y: body.Y}.Sub(from).Normalize()
	if !nonZero {
		dir = utils.Vec2{Y: -1}
	}
	body.SetVelocity(dir.X*speed, dir.Y*speed)
}

// Heal / Boost — параметры бонусов по умолчанию.
func (s *PlayerSystem) Heal() {
	s.IncreaseHealth(s.def.HealAmount)
}

func (s *PlayerSystem) Boost() {
	s.GrantSpeedBoost(s.def.BoostDuration(), s.def.BoostSpeed)
}
