// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	FloorY       = 500.0 // Верхняя граница пола
	MaxDeltaTime = 0.06

	// Границы, за которыми снаряд возвращается в пул
	ProjectileBoundsMargin = 32.0

	EnemySpawnOffsetY  = 50.0 // Враги появляются на высоте ScreenHeight-50
	PlayerSpawnX       = 400.0
	PlayerSpawnOffsetY = 80.0

	MinBounceSpeed = 30.0 // Более слабый отскок гасится

	BumpVelocity  = 200.0 // Отбрасывание игрока от врага
	ContactDamage = 10
	HitScore      = 10 // Очки за попадание снарядом

	ReticleGain       = 10.0
	ReticleSize       = 25.0
	PropulsionOffsetY = 16.0

	MenuFadeInSeconds      = 1.0
	MenuBlinkPeriodSeconds = 1.6 // Полный цикл «видно → скрыто → видно»

	HUDMarginX      = 16
	HUDScoreY       = 16
	HUDHealthY      = 48
	HUDLivesY       = 80
	HealthBarWidth  = 160
	HealthBarHeight = 8
)

var (
	BackgroundColor   = color.RGBA{18, 20, 34, 255}
	FloorColor        = color.RGBA{70, 60, 55, 255}
	PlayerColor       = color.RGBA{90, 170, 250, 255}
	ReticleColor      = color.RGBA{240, 240, 240, 200}
	PropulsionColor   = color.RGBA{255, 140, 30, 255}
	EnemyColor        = color.RGBA{90, 170, 70, 255}
	ProjectileColor   = color.RGBA{255, 230, 90, 255}
	HealthPickupColor = color.RGBA{220, 50, 60, 255}
	BoostPickupColor  = color.RGBA{60, 200, 230, 255}
	DamageColor       = color.RGBA{255, 0, 0, 255} // Вспышка урона
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	HealthBarColor    = color.RGBA{220, 60, 60, 220}
	HealthBarBack     = color.RGBA{20, 20, 30, 220}
	MenuBandColor     = color.RGBA{255, 255, 255, 204}
	MenuStripColor    = color.RGBA{0, 0, 0, 204}
)
