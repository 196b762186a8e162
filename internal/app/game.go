// internal/app/game.go
package app

import (
	"math"
	"time"

	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
	"go-space-marine/internal/input"
	"go-space-marine/internal/system"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/utils"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game — одна партия: реестр сущностей, системы и порядок тика.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scheduler       *timer.Scheduler
	Rng             *utils.PRNGService
	Bounds          system.Bounds

	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem
	ProjectilePool     *system.ProjectilePool
	ScoreSystem        *system.ScoreSystem
	EnemySystem        *system.EnemySystem
	PlayerSystem       *system.PlayerSystem
	PickupSystem       *system.PickupSystem
	WaveSystem         *system.WaveSystem
	CollisionSystem    *system.CollisionSystem
	RenderSystem       *system.RenderSystem

	log        *zap.Logger
	runID      string
	onGameOver []func(score int)
}

// NewGame собирает партию и запускает таймеры врагов и бонусов.
func NewGame(settings *config.Settings, lib *defs.Library, log *zap.Logger) *Game {
	runID := uuid.NewString()
	log = log.With(zap.String("run", runID))

	ecs := entity.NewECS()
	ecs.GameState.RunID = runID
	eventDispatcher := event.NewDispatcher()
	sched := timer.NewScheduler()
	rng := utils.NewPRNGService(settings.RNG.Seed)
	bounds := system.Bounds{
		Width:  float64(settings.Screen.Width),
		Height: float64(settings.Screen.Height),
		FloorY: settings.Screen.FloorY,
	}

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       sched,
		Rng:             rng,
		Bounds:          bounds,
		log:             log,
		runID:           runID,
	}
	g.MovementSystem = system.NewMovementSystem(ecs, bounds)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, sched)
	g.ProjectilePool = system.NewProjectilePool(ecs, lib.Projectile, bounds)
	g.ScoreSystem = system.NewScoreSystem(ecs, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher, g.VisualEffectSystem, lib.Enemy, bounds)
	g.PlayerSystem = system.NewPlayerSystem(ecs, sched, eventDispatcher, g.VisualEffectSystem, g.ProjectilePool, lib.Player, log)
	g.PickupSystem = system.NewPickupSystem(ecs, sched, rng, bounds, log)
	g.WaveSystem = system.NewWaveSystem(sched, g.EnemySystem, rng, bounds,
		settings.Director.InitialSpawnDelay.Duration,
		settings.Director.MinSpawnDelay.Duration,
		settings.Director.SpawnDelayStep.Duration,
		g.PlayerSystem.PlayerID, log)
	g.CollisionSystem = system.NewCollisionSystem(ecs, eventDispatcher, bounds, g.PlayerSystem, g.EnemySystem, g.ProjectilePool, g.PickupSystem, g.ScoreSystem)
	g.RenderSystem = system.NewRenderSystem(ecs, g.VisualEffectSystem, bounds)

	eventDispatcher.Subscribe(event.GameOver, &GameEventListener{game: g})

	g.PlayerSystem.Spawn(config.PlayerSpawnX, bounds.Height-config.PlayerSpawnOffsetY)
	if def, ok := lib.Pickup(defs.PickupHealth); ok {
		g.PickupSystem.Start(def, settings.Pickups.HealthInterval.Duration)
	}
	if def, ok := lib.Pickup(defs.PickupBoost); ok {
		g.PickupSystem.Start(def, settings.Pickups.BoostInterval.Duration)
	}
	g.WaveSystem.Start()

	log.Info("run started",
		zap.Duration("spawn_delay", settings.Director.InitialSpawnDelay.Duration),
		zap.Int64("seed", settings.RNG.Seed))
	return g
}

// Tick продвигает партию на deltaTime секунд. После конца игры ничего не делает.
func (g *Game) Tick(deltaTime float64, in input.State) {
	if g.Over() {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	// Таймеры: пачки врагов, бонусы, окончание неуязвимости и ускорения
	g.Scheduler.Advance(time.Duration(math.Round(deltaTime * float64(time.Second))))
	g.WaveSystem.Update()

	g.PlayerSystem.Update(in)
	g.EnemySystem.Update()

	g.MovementSystem.Update(deltaTime)
	g.ProjectilePool.Update()

	// Эффекты столкновений только после движения всех тел
	g.CollisionSystem.Update()
}

// Draw рисует сцену партии.
func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
}

// OnGameOver регистрирует обработчик конца игры с итоговым счётом.
func (g *Game) OnGameOver(fn func(score int)) {
	g.onGameOver = append(g.onGameOver, fn)
}

func (g *Game) Score() int {
	return g.ScoreSystem.Score()
}

func (g *Game) PlayerState() *component.PlayerStateComponent {
	return g.PlayerSystem.State()
}

func (g *Game) Over() bool {
	return g.ECS.GameState.Phase == component.GameOverPhase
}

func (g *Game) RunID() string {
	return g.runID
}

// Now — время симуляции с начала партии.
func (g *Game) Now() time.Duration {
	return g.Scheduler.Now()
}
