// internal/event/types.go
package event

import "go-space-marine/internal/types"

const (
	EnemyKilled         EventType = "EnemyKilled"         // Data: EnemyKilledData
	ScoreChanged        EventType = "ScoreChanged"        // Data: int, новый счёт
	PlayerHealthChanged EventType = "PlayerHealthChanged" // Data: int
	PlayerLivesChanged  EventType = "PlayerLivesChanged"  // Data: int
	PickupConsumed      EventType = "PickupConsumed"      // Data: defs.PickupKind
	GameOver            EventType = "GameOver"            // Data: int, итоговый счёт
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	ID    types.EntityID
	Score int
}
