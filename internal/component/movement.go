// component/movement.go
package component

// Body — физическое тело. X, Y — центр тела.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	GravityY     float64
	AllowGravity bool

	CollideWorldBounds bool // Зажимать тело в границах мира
	CollidesWithFloor  bool
	OnFloor            bool    // Тело стоит на полу (blocked down)
	Bounce             float64 // Доля скорости, сохраняемая при ударе о пол или границу

	// ReportWorldBounds — сообщать о выходе за границы мира без зажима.
	ReportWorldBounds bool
	AtWorldBounds     bool // Касание границ мира на этом тике
}

// Bottom возвращает нижнюю грань тела.
func (b *Body) Bottom() float64 {
	return b.Y + b.H/2
}

// SetVelocity задаёт скорость сразу по обеим осям.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX, b.VY = vx, vy
}
