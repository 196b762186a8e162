// internal/component/visual.go
package component

import "time"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Started time.Duration // Момент начала вспышки
	Period  time.Duration // Длительность одного полупериода
	Cycles  int           // Число полупериодов (yoyo-повторы)
}

// Visible сообщает, закрашена ли сущность в момент now.
func (f *DamageFlash) Visible(now time.Duration) bool {
	if f.Period <= 0 {
		return false
	}
	elapsed := now - f.Started
	if elapsed < 0 {
		return false
	}
	half := int(elapsed / f.Period)
	if half >= f.Cycles {
		return false
	}
	// Чётные полупериоды закрашены
	return half%2 == 0
}
