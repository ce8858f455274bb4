// internal/component/projectile.go
package component

import "master-quest/internal/projectile"

// Projectile привязывает автомат состояний луча к сущности.
type Projectile struct {
	Beam *projectile.Beam
}
