// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed data/defs.yaml
var defaultDefs []byte

// ErrInvalidDefinition возвращается, если определение не проходит проверку.
var ErrInvalidDefinition = errors.New("invalid definition")

// Default разбирает встроенные определения.
func Default() (*Library, error) {
	return Parse(defaultDefs)
}

// LoadFile reads a definitions file and validates it.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes YAML definitions and validates them.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate проверяет, что все величины имеют смысл для симуляции.
func (l *Library) Validate() error {
	p := l.Player
	switch {
	case p.InitialHealth <= 0:
		return fmt.Errorf("%w: player initial_health must be positive", ErrInvalidDefinition)
	case p.Lives <= 0:
		return fmt.Errorf("%w: player lives must be positive", ErrInvalidDefinition)
	case p.Speed <= 0 || p.BoostSpeed <= 0:
		return fmt.Errorf("%w: player speeds must be positive", ErrInvalidDefinition)
	case p.FireCooldownMillis < 0 || p.InvulnerableMillis < 0 || p.BoostMillis <= 0:
		return fmt.Errorf("%w: player timings out of range", ErrInvalidDefinition)
	case p.Bounce < 0 || p.Bounce >= 1:
		return fmt.Errorf("%w: player bounce must be in [0, 1)", ErrInvalidDefinition)
	}
	e := l.Enemy
	if e.Health <= 0 || e.Speed <= 0 {
		return fmt.Errorf("%w: enemy %q health and speed must be positive", ErrInvalidDefinition, e.ID)
	}
	if l.Projectile.Capacity <= 0 || l.Projectile.Speed <= 0 {
		return fmt.Errorf("%w: projectile capacity and speed must be positive", ErrInvalidDefinition)
	}
	for _, kind := range []PickupKind{PickupHealth, PickupBoost} {
		pd, ok := l.Pickup(kind)
		if !ok {
			return fmt.Errorf("%w: pickup %s is not defined", ErrInvalidDefinition, kind)
		}
		if pd.Capacity <= 0 {
			return fmt.Errorf("%w: pickup %s capacity must be positive", ErrInvalidDefinition, kind)
		}
	}
	return nil
}

func millis(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func (p PlayerDefinition) FireCooldown() time.Duration    { return millis(p.FireCooldownMillis) }
func (p PlayerDefinition) Invulnerability() time.Duration { return millis(p.InvulnerableMillis) }
func (p PlayerDefinition) BoostDuration() time.Duration   { return millis(p.BoostMillis) }
func (p PlayerDefinition) FlashDuration() time.Duration   { return millis(p.FlashMillis) }
func (e EnemyDefinition) FlashDuration() time.Duration    { return millis(e.FlashMillis) }
