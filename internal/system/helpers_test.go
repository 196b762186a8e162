package system

import (
	"testing"
	"time"

	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testBounds = Bounds{Width: 960, Height: 540, FloorY: 500}

// world — собранный набор систем без ebiten-оболочки.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	sched      *timer.Scheduler
	rng        *utils.PRNGService
	lib        *defs.Library

	visuals   *VisualEffectSystem
	pool      *ProjectilePool
	score     *ScoreSystem
	enemies   *EnemySystem
	player    *PlayerSystem
	pickups   *PickupSystem
	collision *CollisionSystem
	movement  *MovementSystem

	gameOvers []int
}

func newWorld(t *testing.T) *world {
	t.Helper()
	lib, err := defs.Default()
	require.NoError(t, err)

	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		sched:      timer.NewScheduler(),
		rng:        utils.NewPRNGService(42),
		lib:        lib,
	}
	log := zap.NewNop()
	w.visuals = NewVisualEffectSystem(w.ecs, w.sched)
	w.pool = NewProjectilePool(w.ecs, lib.Projectile, testBounds)
	w.score = NewScoreSystem(w.ecs, w.dispatcher)
	w.enemies = NewEnemySystem(w.ecs, w.dispatcher, w.visuals, lib.Enemy, testBounds)
	w.player = NewPlayerSystem(w.ecs, w.sched, w.dispatcher, w.visuals, w.pool, lib.Player, log)
	w.pickups = NewPickupSystem(w.ecs, w.sched, w.rng, testBounds, log)
	w.collision = NewCollisionSystem(w.ecs, w.dispatcher, testBounds, w.player, w.enemies, w.pool, w.pickups, w.score)
	w.movement = NewMovementSystem(w.ecs, testBounds)

	w.dispatcher.SubscribeFunc(event.GameOver, func(e event.Event) {
		w.gameOvers = append(w.gameOvers, e.Data.(int))
	})
	return w
}

// spawnPlayer ставит игрока на пол в точке x.
func (w *world) spawnPlayer(x float64) types.EntityID {
	id := w.player.Spawn(x, testBounds.FloorY-w.lib.Player.Body.H/2)
	w.ecs.Bodies[id].OnFloor = true
	return id
}

func (w *world) advance(d time.Duration) {
	w.sched.Advance(d)
}
