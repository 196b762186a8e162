package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Read опрашивает клавиатуру и мышь. A/D двигают, пробел прыгает,
// левая кнопка мыши стреляет.
func Read() State {
	x, y := ebiten.CursorPosition()
	return State{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:        ebiten.IsKeyPressed(ebiten.KeySpace),
		PointerX:    float64(x),
		PointerY:    float64(y),
		PointerDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}
