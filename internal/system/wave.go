// internal/system/wave.go
package system

import (
	"time"

	"go-space-marine/internal/config"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"

	"go.uber.org/zap"
)

// WaveSystem — режиссёр столкновений: по таймеру выпускает пачки врагов
// с краёв поля и каждый тик сокращает интервал до нижней границы.
type WaveSystem struct {
	sched   *timer.Scheduler
	enemies *EnemySystem
	rng     *utils.PRNGService
	log     *zap.Logger
	bounds  Bounds

	spawnDelay time.Duration
	minDelay   time.Duration
	step       time.Duration
	timer      timer.Handle
	target     func() types.EntityID
	floorHit   bool
}

// NewWaveSystem создаёт режиссёра. target возвращает текущую цель врагов (игрока).
func NewWaveSystem(sched *timer.Scheduler, enemies *EnemySystem, rng *utils.PRNGService, bounds Bounds, initialDelay, minDelay, step time.Duration, target func() types.EntityID, log *zap.Logger) *WaveSystem {
	return &WaveSystem{
		sched:      sched,
		enemies:    enemies,
		rng:        rng,
		log:        log,
		bounds:     bounds,
		spawnDelay: initialDelay,
		minDelay:   minDelay,
		step:       step,
		target:     target,
	}
}

// Start запускает таймер появления врагов. Повторный вызов ничего не делает.
func (s *WaveSystem) Start() {
	if s.Running() {
		return
	}
	s.timer = s.sched.Every(s.spawnDelay, s.spawnBatch)
}

// Stop снимает таймер. Уже появившиеся враги остаются.
func (s *WaveSystem) Stop() {
	if s.timer != 0 {
		s.sched.Cancel(s.timer)
		s.timer = 0
	}
}

// Running сообщает, взведён ли таймер появления.
func (s *WaveSystem) Running() bool {
	return s.timer != 0 && s.sched.Pending(s.timer)
}

// Update сокращает интервал появления на один шаг, не ниже минимума.
func (s *WaveSystem) Update() {
	if s.spawnDelay <= s.minDelay {
		return
	}
	s.spawnDelay -= s.step
	if s.spawnDelay < s.minDelay {
		s.spawnDelay = s.minDelay
	}
	if s.timer != 0 {
		s.sched.SetInterval(s.timer, s.spawnDelay)
	}
	if s.spawnDelay == s.minDelay && !s.floorHit {
		s.floorHit = true
		s.log.Info("spawn delay reached its floor", zap.Duration("delay", s.spawnDelay))
	}
}

// SpawnDelay — текущий интервал появления.
func (s *WaveSystem) SpawnDelay() time.Duration {
	return s.spawnDelay
}

// BatchSize — сколько врагов выходит за одно срабатывание: целые секунды
// текущего интервала, но не меньше одного.
func (s *WaveSystem) BatchSize() int {
	return max(1, int(s.spawnDelay/time.Second))
}

func (s *WaveSystem) spawnBatch() {
	n := s.BatchSize()
	y := s.bounds.Height - config.EnemySpawnOffsetY
	target := types.NoEntity
	if s.target != nil {
		target = s.target()
	}
	for range n {
		x := 0.0
		if s.rng.Chance(0.5) {
			x = s.bounds.Width
		}
		id := s.enemies.Spawn(x, y)
		s.enemies.SetTarget(id, target)
	}
	s.log.Debug("enemy batch spawned", zap.Int("count", n), zap.Duration("delay", s.spawnDelay))
}
