// internal/system/movement.go
package system

import (
	"go-space-marine/internal/config"
	"go-space-marine/internal/entity"
)

// Bounds — размеры игрового поля и уровень пола.
type Bounds struct {
	Width, Height float64
	FloorY        float64
}

// Contains сообщает, лежит ли точка в поле, расширенном на margin.
func (b Bounds) Contains(x, y, margin float64) bool {
	return x > -margin && x < b.Width+margin && y > -margin && y < b.Height+margin
}

// MovementSystem интегрирует тела: гравитация, скорость, пол, границы мира.
type MovementSystem struct {
	ecs    *entity.ECS
	bounds Bounds
}

func NewMovementSystem(ecs *entity.ECS, bounds Bounds) *MovementSystem {
	return &MovementSystem{ecs: ecs, bounds: bounds}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, b := range s.ecs.Bodies {
		if b.AllowGravity {
			b.VY += b.GravityY * deltaTime
		}
		b.X += b.VX * deltaTime
		b.Y += b.VY * deltaTime
		b.OnFloor = false

		if b.CollidesWithFloor && b.Bottom() >= s.bounds.FloorY && b.VY >= 0 {
			b.Y = s.bounds.FloorY - b.H/2
			b.VY = rebound(b.VY, b.Bounce)
			b.OnFloor = true
		}

		if b.CollideWorldBounds {
			halfW, halfH := b.W/2, b.H/2
			if b.X < halfW {
				b.X = halfW
				if b.VX < 0 {
					b.VX = rebound(b.VX, b.Bounce)
				}
			} else if b.X > s.bounds.Width-halfW {
				b.X = s.bounds.Width - halfW
				if b.VX > 0 {
					b.VX = rebound(b.VX, b.Bounce)
				}
			}
			if b.Y < halfH {
				b.Y = halfH
				if b.VY < 0 {
					b.VY = rebound(b.VY, b.Bounce)
				}
			} else if b.Y > s.bounds.Height-halfH {
				b.Y = s.bounds.Height - halfH
				if b.VY > 0 {
					b.VY = rebound(b.VY, b.Bounce)
				}
				b.OnFloor = true
			}
		}

		// Тело целиком покинуло поле
		b.AtWorldBounds = b.ReportWorldBounds &&
			(b.X+b.W/2 < 0 || b.X-b.W/2 > s.bounds.Width || b.Y+b.H/2 < 0 || b.Y-b.H/2 > s.bounds.Height)
	}
}

// rebound отражает скорость после удара с коэффициентом bounce.
// Отскок слабее config.MinBounceSpeed гасится, иначе тело дрожит на полу.
func rebound(v, bounce float64) float64 {
	v = -v * bounce
	if v < config.MinBounceSpeed && v > -config.MinBounceSpeed {
		return 0
	}
	return v
}
