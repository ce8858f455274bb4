// internal/component/terrain.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Terrain - твердый объем блоков. Лучи на нем останавливаются.
type Terrain struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}
