package defs

// PlayerDefinition — стартовые параметры игрока.
type PlayerDefinition struct {
	InitialHealth      int     `yaml:"initial_health"`
	Lives              int     `yaml:"lives"`
	Speed              float64 `yaml:"speed"`
	JumpVelocity       float64 `yaml:"jump_velocity"` // Отрицательная вверх
	Gravity            float64 `yaml:"gravity"`
	Bounce             float64 `yaml:"bounce"`
	FireCooldownMillis int     `yaml:"fire_cooldown_ms"`
	InvulnerableMillis int     `yaml:"invulnerable_ms"`
	HealAmount         int     `yaml:"heal_amount"`
	BoostMillis        int     `yaml:"boost_ms"`
	BoostSpeed         float64 `yaml:"boost_speed"`
	FlashMillis        int     `yaml:"flash_ms"`
	FlashRepeats       int     `yaml:"flash_repeats"`
	Body               Size    `yaml:"body"`
}

// ProjectileDefinition — параметры снаряда и размер пула.
type ProjectileDefinition struct {
	Speed    float64 `yaml:"speed"`
	Capacity int     `yaml:"capacity"`
	Body     Size    `yaml:"body"`
}

// PickupDefinition — параметры одного вида бонуса.
type PickupDefinition struct {
	Kind      PickupKind `yaml:"kind"`
	FallSpeed float64    `yaml:"fall_speed"`
	Capacity  int        `yaml:"capacity"`
	Body      Size       `yaml:"body"`
}
