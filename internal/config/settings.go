package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings — параметры запуска, которые можно переопределить файлом configs/game.toml.
type Settings struct {
	Screen   ScreenSettings   `toml:"screen"`
	Logging  LoggingConfig    `toml:"logging"`
	RNG      RNGSettings      `toml:"rng"`
	Director DirectorSettings `toml:"director"`
	Pickups  PickupSettings   `toml:"pickups"`
	Defs     DefsSettings     `toml:"defs"`
}

type ScreenSettings struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	FloorY float64 `toml:"floor_y"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" или "console"
}

type RNGSettings struct {
	Seed int64 `toml:"seed"` // 0: сид от текущего времени
}

// DirectorSettings управляет кривой сложности.
type DirectorSettings struct {
	InitialSpawnDelay Duration `toml:"initial_spawn_delay"`
	MinSpawnDelay     Duration `toml:"min_spawn_delay"`
	SpawnDelayStep    Duration `toml:"spawn_delay_step"` // уменьшение за один тик
}

type PickupSettings struct {
	HealthInterval Duration `toml:"health_interval"`
	BoostInterval  Duration `toml:"boost_interval"`
}

type DefsSettings struct {
	Path string `toml:"path"` // Пусто: встроенные определения
}

// Duration декодирует строки вида "2s" / "200ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// Defaults возвращает параметры оригинальной сцены.
func Defaults() *Settings {
	return &Settings{
		Screen: ScreenSettings{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			FloorY: FloorY,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Director: DirectorSettings{
			// Стартовая задержка совпадает с полом, поэтому ветка уменьшения
			// в WaveSystem.Update при этих значениях не срабатывает. Кривая
			// сложности, судя по всему, задумывалась со старта выше пола
			// (например, 5s), задаётся в configs/game.toml.
			InitialSpawnDelay: Duration{2000 * time.Millisecond},
			MinSpawnDelay:     Duration{2000 * time.Millisecond},
			SpawnDelayStep:    Duration{10 * time.Millisecond},
		},
		Pickups: PickupSettings{
			HealthInterval: Duration{10 * time.Second},
			BoostInterval:  Duration{15 * time.Second},
		},
	}
}

// Load читает TOML поверх значений по умолчанию. Отсутствующий файл не ошибка.
func Load(path string) (*Settings, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (s *Settings) validate() error {
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height)
	}
	if s.Director.MinSpawnDelay.Duration <= 0 {
		return errors.New("director.min_spawn_delay must be positive")
	}
	if s.Director.InitialSpawnDelay.Duration < s.Director.MinSpawnDelay.Duration {
		return errors.New("director.initial_spawn_delay must not be below min_spawn_delay")
	}
	if s.Pickups.HealthInterval.Duration <= 0 || s.Pickups.BoostInterval.Duration <= 0 {
		return errors.New("pickup intervals must be positive")
	}
	return nil
}
