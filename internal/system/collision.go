// internal/system/collision.go
package system

import (
	"cmp"
	"slices"

	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/event"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"
	"go-space-marine/pkg/broadphase"
)

// ContactKind — сочетание групп в паре столкновения.
type ContactKind int

const (
	ProjectileEnemy ContactKind = iota
	PlayerEnemy
	PlayerHealthPickup
	PlayerBoostPickup
	ProjectileWorldBounds // B не используется
)

// Contact — пара сущностей, пересёкшихся на этом тике.
type Contact struct {
	Kind ContactKind
	A, B types.EntityID
}

const broadphaseCell = 32

var (
	playerTag       = broadphase.NewTag("player")
	enemyTag        = broadphase.NewTag("enemy")
	projectileTag   = broadphase.NewTag("projectile")
	healthPickupTag = broadphase.NewTag("health_pickup")
	boostPickupTag  = broadphase.NewTag("boost_pickup")
)

// CollisionSystem находит пересечения через broadphase и применяет их эффекты.
// Обработчики перепроверяют живость сущностей, поэтому уничтоженная
// в этом тике сущность не участвует в последующих парах.
type CollisionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	space           *broadphase.Space[types.EntityID]
	player          *PlayerSystem
	enemies         *EnemySystem
	projectiles     *ProjectilePool
	pickups         *PickupSystem
	score           *ScoreSystem
}

func NewCollisionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, bounds Bounds, player *PlayerSystem, enemies *EnemySystem, projectiles *ProjectilePool, pickups *PickupSystem, score *ScoreSystem) *CollisionSystem {
	return &CollisionSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		space:           broadphase.NewSpace[types.EntityID](int(bounds.Width), int(bounds.Height), broadphaseCell),
		player:          player,
		enemies:         enemies,
		projectiles:     projectiles,
		pickups:         pickups,
		score:           score,
	}
}

// Update находит и сразу разрешает столкновения тика.
func (s *CollisionSystem) Update() {
	s.Resolve(s.Detect())
}

// Detect синхронизирует broadphase с телами и возвращает пары тика
// в детерминированном порядке.
func (s *CollisionSystem) Detect() []Contact {
	s.sync()

	var contacts []Contact
	collect := func(kind ContactKind, a, b broadphase.Tag) {
		pairs := s.space.Pairs(a, b)
		slices.SortFunc(pairs, func(x, y broadphase.Pair[types.EntityID]) int {
			return cmp.Or(cmp.Compare(x.A, y.A), cmp.Compare(x.B, y.B))
		})
		for _, p := range pairs {
			contacts = append(contacts, Contact{Kind: kind, A: p.A, B: p.B})
		}
	}
	collect(ProjectileEnemy, projectileTag, enemyTag)
	collect(PlayerEnemy, playerTag, enemyTag)
	collect(PlayerHealthPickup, playerTag, healthPickupTag)
	collect(PlayerBoostPickup, playerTag, boostPickupTag)

	for _, id := range s.projectiles.Slots() {
		if s.projectiles.IsActive(id) && s.ecs.Bodies[id].AtWorldBounds {
			contacts = append(contacts, Contact{Kind: ProjectileWorldBounds, A: id})
		}
	}
	return contacts
}

func (s *CollisionSystem) sync() {
	s.space.Retain(func(id types.EntityID) bool {
		_, ok := s.tagOf(id)
		return ok
	})
	for id, body := range s.ecs.Bodies {
		if tag, ok := s.tagOf(id); ok {
			s.space.Set(id, tag, body.X, body.Y, body.W, body.H)
		}
	}
}

// tagOf возвращает группу сущности или false, если она не участвует в столкновениях.
func (s *CollisionSystem) tagOf(id types.EntityID) (broadphase.Tag, bool) {
	if !s.ecs.Alive(id) {
		return 0, false
	}
	if p, ok := s.ecs.Players[id]; ok {
		return playerTag, !p.Dead
	}
	if _, ok := s.ecs.Enemies[id]; ok {
		return enemyTag, true
	}
	if p, ok := s.ecs.Projectiles[id]; ok {
		return projectileTag, p.Active
	}
	if p, ok := s.ecs.Pickups[id]; ok {
		if p.Kind == defs.PickupBoost {
			return boostPickupTag, true
		}
		return healthPickupTag, true
	}
	return 0, false
}

// Resolve применяет эффекты пар по порядку.
func (s *CollisionSystem) Resolve(contacts []Contact) {
	for _, c := range contacts {
		switch c.Kind {
		case ProjectileEnemy:
			s.projectileHitsEnemy(c.A, c.B)
		case PlayerEnemy:
			s.enemyTouchesPlayer(c.B)
		case PlayerHealthPickup, PlayerBoostPickup:
			s.playerTakesPickup(c.B)
		case ProjectileWorldBounds:
			s.projectiles.Release(c.A)
		}
	}
}

func (s *CollisionSystem) projectileHitsEnemy(projectileID, enemyID types.EntityID) {
	if !s.projectiles.IsActive(projectileID) || !s.enemies.Alive(enemyID) {
		return
	}
	s.projectiles.Release(projectileID)
	s.enemies.TakeDamage(enemyID)
	s.score.Add(config.HitScore)
}

func (s *CollisionSystem) enemyTouchesPlayer(enemyID types.EntityID) {
	p := s.player.State()
	if p == nil || p.Dead || !s.enemies.Alive(enemyID) {
		return
	}
	enemyBody := s.ecs.Bodies[enemyID]
	from := utils.Vec2{X: enemyBody.X, Y: enemyBody.Y}

	healthBefore, livesBefore := p.CurrentHealth, p.Lives
	s.player.TakeDamage(config.ContactDamage)
	s.player.Bump(from, config.BumpVelocity)
	s.enemies.Destroy(enemyID)

	if p.CurrentHealth != healthBefore {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHealthChanged, Data: p.CurrentHealth})
	}
	if p.Lives != livesBefore {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLivesChanged, Data: p.Lives})
	}
}

func (s *CollisionSystem) playerTakesPickup(pickupID types.EntityID) {
	p := s.player.State()
	if p == nil || p.Dead {
		return
	}
	kind, ok := s.pickups.Consume(pickupID)
	if !ok {
		return
	}
	switch kind {
	case defs.PickupHealth:
		s.player.Heal()
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHealthChanged, Data: p.CurrentHealth})
	case defs.PickupBoost:
		s.player.Boost()
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PickupConsumed, Data: kind})
}
