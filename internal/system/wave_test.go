package system

import (
	"testing"
	"time"

	"go-space-marine/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWave(w *world, initial time.Duration, target types.EntityID) *WaveSystem {
	return NewWaveSystem(w.sched, w.enemies, w.rng, testBounds,
		initial, 2*time.Second, 10*time.Millisecond,
		func() types.EntityID { return target }, zap.NewNop())
}

func TestWaveBatchSize(t *testing.T) {
	w := newWorld(t)

	cases := []struct {
		delay time.Duration
		want  int
	}{
		{5 * time.Second, 5},
		{2999 * time.Millisecond, 2},
		{2 * time.Second, 2},
		{1500 * time.Millisecond, 1},
		{500 * time.Millisecond, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, newTestWave(w, c.delay, types.NoEntity).BatchSize(), c.delay.String())
	}
}

func TestWaveSpawnsBatchAtEdgesTargetingPlayer(t *testing.T) {
	w := newWorld(t)
	playerID := w.spawnPlayer(400)
	wave := newTestWave(w, 2*time.Second, playerID)
	wave.Start()

	w.advance(1999 * time.Millisecond)
	assert.Equal(t, 0, w.enemies.Count())

	w.advance(time.Millisecond)
	require.Equal(t, 2, w.enemies.Count())
	for id, enemy := range w.ecs.Enemies {
		body := w.ecs.Bodies[id]
		assert.Contains(t, []float64{0, testBounds.Width}, body.X)
		assert.Equal(t, testBounds.FloorY-body.H/2, body.Y)
		assert.Equal(t, playerID, enemy.Target)
	}

	w.advance(2 * time.Second)
	assert.Equal(t, 4, w.enemies.Count())
}

func TestWaveRampShrinksIntervalToFloor(t *testing.T) {
	w := newWorld(t)
	wave := newTestWave(w, 5*time.Second, types.NoEntity)
	wave.Start()

	wave.Update()
	assert.Equal(t, 4990*time.Millisecond, wave.SpawnDelay())
	// Новый интервал действует уже на текущий цикл
	w.advance(4989 * time.Millisecond)
	assert.Equal(t, 0, w.enemies.Count())
	w.advance(time.Millisecond)
	assert.Equal(t, wave.BatchSize(), w.enemies.Count())

	prev := wave.SpawnDelay()
	for range 400 {
		wave.Update()
		assert.LessOrEqual(t, wave.SpawnDelay(), prev)
		assert.GreaterOrEqual(t, wave.SpawnDelay(), 2*time.Second)
		prev = wave.SpawnDelay()
	}
	assert.Equal(t, 2*time.Second, wave.SpawnDelay())
	assert.Equal(t, 2, wave.BatchSize())
}

func TestWaveRampInertAtDefaultDelay(t *testing.T) {
	w := newWorld(t)
	wave := newTestWave(w, 2*time.Second, types.NoEntity)
	wave.Start()

	for range 100 {
		wave.Update()
	}

	assert.Equal(t, 2*time.Second, wave.SpawnDelay())
}

func TestWaveStop(t *testing.T) {
	w := newWorld(t)
	wave := newTestWave(w, 2*time.Second, types.NoEntity)
	wave.Start()
	wave.Start()
	assert.True(t, wave.Running())
	wave.Stop()
	assert.False(t, wave.Running())

	w.advance(10 * time.Second)

	assert.Equal(t, 0, w.enemies.Count())
}
