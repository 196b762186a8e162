package system

import (
	"testing"
	"time"

	"go-space-marine/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pastInvulnerability сдвигает часы за окно неуязвимости и снимает флаг.
func (w *world) pastInvulnerability() {
	w.advance(2*time.Second + time.Millisecond)
	w.player.Update(input.State{})
}

func TestPlayerHealthStaysClamped(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	steps := []struct {
		damage, heal int
	}{
		{damage: 30}, {heal: 50}, {damage: 95}, {heal: 10}, {heal: 200}, {damage: 1000}, {heal: 10},
	}
	for _, s := range steps {
		if s.damage > 0 {
			w.player.TakeDamage(s.damage)
		} else {
			w.player.IncreaseHealth(s.heal)
		}
		assert.GreaterOrEqual(t, p.CurrentHealth, 0)
		assert.LessOrEqual(t, p.CurrentHealth, p.InitialHealth)
		w.pastInvulnerability()
	}
}

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	require.True(t, w.player.TakeDamage(10))
	assert.Equal(t, 90, p.CurrentHealth)
	assert.True(t, p.IsInvulnerable)
	assert.Equal(t, 2*time.Second, p.InvulnerabilityUntil)

	w.advance(1999 * time.Millisecond)
	w.player.Update(input.State{})
	assert.False(t, w.player.TakeDamage(10))
	assert.Equal(t, 90, p.CurrentHealth)

	w.advance(2 * time.Millisecond)
	w.player.Update(input.State{})
	assert.False(t, p.IsInvulnerable)
	assert.True(t, w.player.TakeDamage(10))
	assert.Equal(t, 80, p.CurrentHealth)
}

func TestPlayerLivesDecreaseAndGameOverFiresOnce(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	lives := p.Lives
	for range 6 {
		w.player.TakeDamage(p.InitialHealth)
		assert.LessOrEqual(t, p.Lives, lives)
		lives = p.Lives
		w.pastInvulnerability()
	}

	assert.Equal(t, 0, p.Lives)
	assert.Equal(t, 0, p.CurrentHealth)
	assert.True(t, p.Dead)
	assert.Len(t, w.gameOvers, 1)
	assert.False(t, w.player.TakeDamage(10))
	assert.Len(t, w.gameOvers, 1)
}

func TestPlayerLifeLossRefillsHealth(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	w.player.TakeDamage(150)

	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, p.InitialHealth, p.CurrentHealth)
	assert.True(t, p.IsInvulnerable)
	assert.Empty(t, w.gameOvers)
}

func TestGameOverCarriesFinalScore(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()
	p.Lives = 1
	w.score.Add(70)

	w.player.TakeDamage(500)

	assert.Equal(t, []int{70}, w.gameOvers)
}

func TestSpeedBoostRegrantResetsOnceAtLastExpiry(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	w.player.GrantSpeedBoost(5*time.Second, 600)
	assert.Equal(t, 600.0, p.Speed)

	w.advance(3 * time.Second)
	w.player.GrantSpeedBoost(5*time.Second, 700)
	assert.Equal(t, 700.0, p.Speed)

	// Первый таймер истёк бы здесь
	w.advance(2500 * time.Millisecond)
	assert.Equal(t, 700.0, p.Speed)

	w.advance(2500 * time.Millisecond)
	assert.Equal(t, p.InitialSpeed, p.Speed)
	assert.False(t, w.sched.Pending(p.BoostTimer))
}

func TestSpeedBoostDrivesMovement(t *testing.T) {
	w := newWorld(t)
	id := w.spawnPlayer(400)

	w.player.Boost()
	w.player.Update(input.State{Left: true})

	assert.Equal(t, -w.lib.Player.BoostSpeed, w.ecs.Bodies[id].VX)
	assert.True(t, w.player.State().FacingLeft)
}

func TestPlayerJumpOnlyFromFloor(t *testing.T) {
	w := newWorld(t)
	id := w.spawnPlayer(400)
	body := w.ecs.Bodies[id]
	p := w.player.State()

	w.player.Update(input.State{Jump: true})
	assert.Equal(t, w.lib.Player.JumpVelocity, body.VY)
	assert.True(t, p.Propulsion)

	body.OnFloor = false
	body.VY = -100
	w.player.Update(input.State{Jump: true})
	assert.Equal(t, -100.0, body.VY)
	assert.False(t, p.Propulsion)
}

func TestReticlePursuesPointer(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	reticle := w.ecs.Bodies[w.player.State().ReticleID]
	reticle.X, reticle.Y = 100, 100

	w.player.Update(input.State{PointerX: 110, PointerY: 80})

	assert.Equal(t, 100.0, reticle.VX)
	assert.Equal(t, -200.0, reticle.VY)
	assert.Equal(t, 100.0, reticle.X)
}

func TestFireCooldown(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	w.advance(time.Millisecond)

	require.True(t, w.player.Fire())
	assert.False(t, w.player.Fire())

	w.advance(200 * time.Millisecond)
	assert.False(t, w.player.Fire())

	w.advance(time.Millisecond)
	assert.True(t, w.player.Fire())
	assert.Equal(t, 2, w.pool.ActiveCount())
}

func TestFireTowardReticle(t *testing.T) {
	w := newWorld(t)
	id := w.spawnPlayer(400)
	body := w.ecs.Bodies[id]
	reticle := w.ecs.Bodies[w.player.State().ReticleID]
	reticle.X, reticle.Y = body.X, body.Y-100
	w.advance(time.Millisecond)

	require.True(t, w.player.Fire())
	proj := w.ecs.Bodies[w.pool.Slots()[0]]
	assert.Equal(t, body.X, proj.X)
	assert.InDelta(t, 0, proj.VX, 1e-9)
	assert.InDelta(t, -w.lib.Projectile.Speed, proj.VY, 1e-9)
}

func TestDroppedShotKeepsCooldown(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	p := w.player.State()

	for range w.pool.Capacity() {
		w.advance(201 * time.Millisecond)
		require.True(t, w.player.Fire())
	}
	w.advance(201 * time.Millisecond)
	nextFireAt := p.NextFireAt

	assert.False(t, w.player.Fire())
	assert.Equal(t, w.pool.Capacity(), w.pool.ActiveCount())
	assert.Equal(t, nextFireAt, p.NextFireAt)
}

func TestHeldFireUsesUpdate(t *testing.T) {
	w := newWorld(t)
	w.spawnPlayer(400)
	w.advance(time.Millisecond)

	w.player.Update(input.State{PointerDown: true, PointerX: 900, PointerY: 100})

	assert.Equal(t, 1, w.pool.ActiveCount())
}
