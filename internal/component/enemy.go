package component

import (
	"math"

	"go-space-marine/internal/types"
)

// Enemy представляет наземного врага.
type Enemy struct {
	DefID  string
	Health int // Убывает до уничтожения
	Speed  float64

	Target     types.EntityID // Слабая ссылка на цель, только для поиска
	FacingLeft bool

	// Косметическое покачивание при беге, не связано с физикой
	RunStartY    float64
	RunTime      float64
	RunAmplitude float64
	RunFrequency float64

	ScoreValue int
}

// DrawY — вертикальная позиция отрисовки с учётом покачивания.
func (e *Enemy) DrawY() float64 {
	return e.RunStartY + e.RunAmplitude*math.Sin(e.RunTime)
}
