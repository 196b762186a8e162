// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for the ground enemy.
type EnemyDefinition struct {
	ID           string  `yaml:"id"`
	Health       int     `yaml:"health"`
	Speed        float64 `yaml:"speed"`
	Gravity      float64 `yaml:"gravity"`
	ScoreValue   int     `yaml:"score_value"`   // Награда за убийство
	RunAmplitude float64 `yaml:"run_amplitude"` // Амплитуда покачивания при беге
	RunFrequency float64 `yaml:"run_frequency"` // Шаг фазы за тик
	FlashMillis  int     `yaml:"flash_ms"`
	Body         Size    `yaml:"body"`
}
