package component

// GamePhase — фаза партии
type GamePhase int

const (
	PlayingPhase GamePhase = iota
	GameOverPhase
)

// GameState — общее состояние партии
type GameState struct {
	Phase GamePhase
	Score int
	RunID string
}
