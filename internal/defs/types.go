// internal/defs/types.go
package defs

// PickupKind — разновидность падающего бонуса.
type PickupKind string

const (
	PickupHealth PickupKind = "HEALTH"
	PickupBoost  PickupKind = "BOOST"
)

// Size — габариты тела в пикселях.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Library — все определения контента одной партии.
type Library struct {
	Player     PlayerDefinition     `yaml:"player"`
	Enemy      EnemyDefinition      `yaml:"enemy"`
	Projectile ProjectileDefinition `yaml:"projectile"`
	Pickups    []PickupDefinition   `yaml:"pickups"`
}

// Pickup возвращает определение бонуса по виду.
func (l *Library) Pickup(kind PickupKind) (PickupDefinition, bool) {
	for _, p := range l.Pickups {
		if p.Kind == kind {
			return p, true
		}
	}
	return PickupDefinition{}, false
}
