// internal/system/projectile.go
package system

import (
	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/defs"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/types"
	"go-space-marine/internal/utils"
)

// ProjectilePool — пул снарядов фиксированной ёмкости. Слоты создаются один раз
// и переиспользуются: вылетевший за поле или попавший снаряд лишь деактивируется.
type ProjectilePool struct {
	ecs    *entity.ECS
	def    defs.ProjectileDefinition
	bounds Bounds
	slots  []types.EntityID
}

func NewProjectilePool(ecs *entity.ECS, def defs.ProjectileDefinition, bounds Bounds) *ProjectilePool {
	p := &ProjectilePool{
		ecs:    ecs,
		def:    def,
		bounds: bounds,
		slots:  make([]types.EntityID, def.Capacity),
	}
	for i := range p.slots {
		id := ecs.NewEntity()
		ecs.Bodies[id] = &component.Body{
			W:                 def.Body.W,
			H:                 def.Body.H,
			ReportWorldBounds: true,
		}
		ecs.Projectiles[id] = &component.Projectile{Slot: i, Speed: def.Speed}
		ecs.Renderables[id] = &component.Renderable{Color: config.ProjectileColor}
		p.slots[i] = id
	}
	return p
}

// Fire занимает свободный слот и запускает снаряд из origin в сторону target.
// Если свободных слотов нет, возвращает false: выстрел пропадает.
func (p *ProjectilePool) Fire(origin, target utils.Vec2) (types.EntityID, bool) {
	for _, id := range p.slots {
		proj := p.ecs.Projectiles[id]
		if proj.Active {
			continue
		}
		dir, ok := target.Sub(origin).Normalize()
		if !ok {
			dir = utils.Vec2{X: 1}
		}
		vel := dir.Scale(proj.Speed)

		body := p.ecs.Bodies[id]
		body.X, body.Y = origin.X, origin.Y
		body.SetVelocity(vel.X, vel.Y)
		body.AtWorldBounds = false

		proj.Active = true
		p.ecs.Renderables[id].Visible = true
		return id, true
	}
	return types.NoEntity, false
}

// Update возвращает в пул снаряды, вылетевшие за поле с запасом.
func (p *ProjectilePool) Update() {
	for _, id := range p.slots {
		if !p.ecs.Projectiles[id].Active {
			continue
		}
		body := p.ecs.Bodies[id]
		if !p.bounds.Contains(body.X, body.Y, config.ProjectileBoundsMargin) {
			p.Release(id)
		}
	}
}

// Release деактивирует снаряд. Повторный вызов возвращает false.
func (p *ProjectilePool) Release(id types.EntityID) bool {
	proj, ok := p.ecs.Projectiles[id]
	if !ok || !proj.Active {
		return false
	}
	proj.Active = false
	p.ecs.Renderables[id].Visible = false
	body := p.ecs.Bodies[id]
	body.SetVelocity(0, 0)
	body.AtWorldBounds = false
	return true
}

// IsActive сообщает, летит ли снаряд.
func (p *ProjectilePool) IsActive(id types.EntityID) bool {
	proj, ok := p.ecs.Projectiles[id]
	return ok && proj.Active
}

func (p *ProjectilePool) ActiveCount() int {
	n := 0
	for _, id := range p.slots {
		if p.ecs.Projectiles[id].Active {
			n++
		}
	}
	return n
}

func (p *ProjectilePool) Capacity() int {
	return len(p.slots)
}

// Slots возвращает идентификаторы всех слотов пула.
func (p *ProjectilePool) Slots() []types.EntityID {
	return p.slots
}
