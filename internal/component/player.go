// internal/component/player.go
package component

import (
	"time"

	"go-space-marine/internal/timer"
	"go-space-marine/internal/types"
)

// PlayerStateComponent хранит состояние игрока: здоровье, жизни,
// неуязвимость и временные усиления.
type PlayerStateComponent struct {
	InitialHealth int
	CurrentHealth int // 0..InitialHealth
	Lives         int

	InitialSpeed float64
	Speed        float64 // Текущая скорость, может быть усилена

	IsInvulnerable       bool
	InvulnerabilityUntil time.Duration

	SpeedBoostUntil time.Duration // 0, если усиления нет
	BoostTimer      timer.Handle  // Отложенный сброс скорости

	NextFireAt time.Duration // Выстрел разрешён строго после этого момента

	ReticleID  types.EntityID
	FacingLeft bool
	Propulsion bool // Виден ли огонь ранца на этом тике
	Dead       bool // Терминальное состояние
}
