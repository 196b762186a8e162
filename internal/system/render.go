// internal/system/render.go
package system

import (
	"cmp"
	"slices"

	"go-space-marine/internal/component"
	"go-space-marine/internal/config"
	"go-space-marine/internal/entity"
	"go-space-marine/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs     *entity.ECS
	visuals *VisualEffectSystem
	bounds  Bounds
}

func NewRenderSystem(ecs *entity.ECS, visuals *VisualEffectSystem, bounds Bounds) *RenderSystem {
	return &RenderSystem{ecs: ecs, visuals: visuals, bounds: bounds}
}

// Слои отрисовки снизу вверх. Прицел всегда рисуется последним.
const (
	layerPickup = iota
	layerEnemy
	layerPlayer
	layerProjectile
	layerReticle
)

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// Пол
	vector.DrawFilledRect(screen, 0, float32(s.bounds.FloorY), float32(s.bounds.Width), float32(s.bounds.Height-s.bounds.FloorY), config.FloorColor, false)

	for _, id := range s.drawOrder() {
		body := s.ecs.Bodies[id]
		if s.layer(id) == layerReticle {
			half := float32(body.W / 2)
			vector.StrokeRect(screen, float32(body.X)-half, float32(body.Y)-half, half*2, half*2, 2, config.ReticleColor, false)
			continue
		}
		// Пламя двигателя под игроком
		if p, ok := s.ecs.Players[id]; ok && p.Propulsion && !p.Dead {
			vector.DrawFilledCircle(screen, float32(body.X), float32(body.Y+config.PropulsionOffsetY), 8, config.PropulsionColor, true)
		}
		y := body.Y
		if enemy, isEnemy := s.ecs.Enemies[id]; isEnemy {
			y = enemy.DrawY()
		}
		col := s.ecs.Renderables[id].Color
		if s.visuals.Flashing(id) {
			col = config.DamageColor
		}
		x0 := float32(body.X - body.W/2)
		y0 := float32(y - body.H/2)
		if l := s.layer(id); l == layerPickup || l == layerProjectile {
			vector.DrawFilledCircle(screen, float32(body.X), float32(y), float32(body.W/2), col, true)
			continue
		}
		vector.DrawFilledRect(screen, x0, y0, float32(body.W), float32(body.H), col, false)
		if facingLeft, ok := s.facing(id); ok {
			s.drawVisor(screen, x0, y0, float32(body.W), facingLeft)
		}
	}
}

// drawOrder возвращает видимые сущности с телом по слоям, внутри слоя по ID.
// Порядок не зависит от обхода карт, поэтому кадр не мерцает при перекрытии.
func (s *RenderSystem) drawOrder() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.ecs.Renderables))
	for id, render := range s.ecs.Renderables {
		if _, ok := s.ecs.Bodies[id]; !ok || !render.Visible {
			continue
		}
		if owner := s.reticleOwner(id); owner != nil && owner.Dead {
			continue
		}
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b types.EntityID) int {
		return cmp.Or(cmp.Compare(s.layer(a), s.layer(b)), cmp.Compare(a, b))
	})
	return ids
}

func (s *RenderSystem) layer(id types.EntityID) int {
	switch {
	case s.reticleOwner(id) != nil:
		return layerReticle
	case s.ecs.Projectiles[id] != nil:
		return layerProjectile
	case s.ecs.Players[id] != nil:
		return layerPlayer
	case s.ecs.Enemies[id] != nil:
		return layerEnemy
	default:
		return layerPickup
	}
}

// facing возвращает направление взгляда игрока или врага.
func (s *RenderSystem) facing(id types.EntityID) (bool, bool) {
	if p, ok := s.ecs.Players[id]; ok {
		return p.FacingLeft, true
	}
	if e, ok := s.ecs.Enemies[id]; ok {
		return e.FacingLeft, true
	}
	return false, false
}

// drawVisor рисует полоску на стороне, куда смотрит сущность.
func (s *RenderSystem) drawVisor(screen *ebiten.Image, x0, y0, w float32, facingLeft bool) {
	const visorW, visorH = 6, 4
	x := x0 + w - visorW
	if facingLeft {
		x = x0
	}
	vector.DrawFilledRect(screen, x, y0+visorH, visorW, visorH, config.TextLightColor, false)
}

// reticleOwner возвращает игрока, которому принадлежит прицел id.
func (s *RenderSystem) reticleOwner(id types.EntityID) *component.PlayerStateComponent {
	for _, p := range s.ecs.Players {
		if p.ReticleID == id {
			return p
		}
	}
	return nil
}
