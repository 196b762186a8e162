// internal/input/input.go
package input

// State — снимок ввода за один кадр.
type State struct {
	Left, Right bool
	Jump        bool

	PointerX, PointerY float64
	PointerDown        bool // Зажата ли кнопка огня
}
