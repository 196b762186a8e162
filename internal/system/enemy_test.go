package system

import (
	"testing"

	"go-space-marine/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyLethalHitAwardsScoreOnce(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 480)
	w.ecs.Enemies[id].Health = 1

	require.True(t, w.enemies.TakeDamage(id))

	assert.False(t, w.enemies.Alive(id))
	assert.False(t, w.ecs.Alive(id))
	assert.Equal(t, 10, w.score.Score())
	assert.False(t, w.enemies.TakeDamage(id))
	assert.Equal(t, 10, w.score.Score())
}

func TestEnemyKilledByThirdHit(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 480)

	w.enemies.TakeDamage(id)
	w.enemies.TakeDamage(id)
	assert.True(t, w.enemies.Alive(id))
	assert.Equal(t, 1, w.ecs.Enemies[id].Health)
	assert.Equal(t, 0, w.score.Score())

	w.enemies.TakeDamage(id)
	assert.False(t, w.enemies.Alive(id))
	assert.Equal(t, 10, w.score.Score())
}

func TestEnemyHitFlashes(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 480)

	w.enemies.TakeDamage(id)
	assert.True(t, w.visuals.Flashing(id))

	w.advance(w.lib.Enemy.FlashDuration())
	assert.False(t, w.visuals.Flashing(id))
	assert.NotContains(t, w.ecs.DamageFlashes, id)
}

func TestEnemySpawnSnapsToFloor(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(0, testBounds.Height-50)
	body := w.ecs.Bodies[id]

	assert.Equal(t, testBounds.FloorY-body.H/2, body.Y)
	assert.True(t, body.OnFloor)
	assert.Equal(t, body.Y, w.ecs.Enemies[id].RunStartY)
}

func TestEnemySeeksTargetHorizontally(t *testing.T) {
	w := newWorld(t)
	playerID := w.spawnPlayer(400)
	left := w.enemies.Spawn(0, 480)
	right := w.enemies.Spawn(960, 480)
	w.enemies.SetTarget(left, playerID)
	w.enemies.SetTarget(right, playerID)

	w.enemies.Update()

	// Направление берётся по полному вектору, поэтому небольшая разница
	// высот слегка уменьшает горизонтальную скорость
	assert.InDelta(t, 300, w.ecs.Bodies[left].VX, 0.1)
	assert.False(t, w.ecs.Enemies[left].FacingLeft)
	assert.InDelta(t, -300, w.ecs.Bodies[right].VX, 0.1)
	assert.True(t, w.ecs.Enemies[right].FacingLeft)
	assert.Equal(t, 0.0, w.ecs.Bodies[left].VY)
}

func TestEnemyWithDestroyedTargetIsTargetless(t *testing.T) {
	w := newWorld(t)
	playerID := w.spawnPlayer(400)
	id := w.enemies.Spawn(0, 480)
	w.enemies.SetTarget(id, playerID)
	w.ecs.Destroy(playerID)

	assert.NotPanics(t, w.enemies.Update)
	assert.Equal(t, types.NoEntity, w.ecs.Enemies[id].Target)
}

func TestEnemyAirborneVerticalVelocityForcedToZero(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 200)
	body := w.ecs.Bodies[id]
	body.VY = 350

	w.enemies.Update()

	assert.Equal(t, 0.0, body.VY)
}

func TestEnemyBobIsCosmetic(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 480)
	enemy := w.ecs.Enemies[id]
	body := w.ecs.Bodies[id]
	y := body.Y

	for range 20 {
		w.enemies.Update()
		assert.InDelta(t, enemy.RunStartY, enemy.DrawY(), enemy.RunAmplitude+1e-9)
	}
	assert.InDelta(t, 20*w.lib.Enemy.RunFrequency, enemy.RunTime, 1e-9)
	assert.Equal(t, y, body.Y)
}

func TestEnemyDestroyWithoutScore(t *testing.T) {
	w := newWorld(t)
	id := w.enemies.Spawn(100, 480)

	assert.True(t, w.enemies.Destroy(id))
	assert.False(t, w.enemies.Destroy(id))
	assert.Equal(t, 0, w.score.Score())
	assert.Equal(t, 0, w.enemies.Count())
}
