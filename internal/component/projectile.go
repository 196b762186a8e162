// internal/component/projectile.go
package component

// Projectile — слот пула снарядов. Неактивный слот невидим и свободен для выстрела.
type Projectile struct {
	Slot   int
	Active bool
	Speed  float64
}
