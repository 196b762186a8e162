// internal/entity/ecs.go
package entity

import (
	"go-space-marine/internal/component"
	"go-space-marine/internal/types"
)

// ECS — реестр сущностей партии. Сущность жива, пока у неё есть тело.
type ECS struct {
	NextID        types.EntityID
	Bodies        map[types.EntityID]*component.Body
	Renderables   map[types.EntityID]*component.Renderable
	Players       map[types.EntityID]*component.PlayerStateComponent
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Pickups       map[types.EntityID]*component.Pickup
	DamageFlashes map[types.EntityID]*component.DamageFlash
	GameState     *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Bodies:        make(map[types.EntityID]*component.Body),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Players:       make(map[types.EntityID]*component.PlayerStateComponent),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Pickups:       make(map[types.EntityID]*component.Pickup),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		GameState:     &component.GameState{Phase: component.PlayingPhase},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Alive сообщает, существует ли сущность. Уничтоженные идентификаторы
// никогда не выдаются повторно, поэтому устаревший дескриптор безопасен.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if id == types.NoEntity {
		return false
	}
	_, ok := ecs.Bodies[id]
	return ok
}

// Destroy удаляет все компоненты сущности. Повторный вызов возвращает false.
func (ecs *ECS) Destroy(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	delete(ecs.Bodies, id)
	delete(ecs.Renderables, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Pickups, id)
	delete(ecs.DamageFlashes, id)
	return true
}
