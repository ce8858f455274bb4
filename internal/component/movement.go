// internal/component/movement.go
package component

import "github.com/go-gl/mathgl/mgl64"

// Position - позиция ног сущности. Prev - позиция в начале прошлого тика,
// нужна для интерполяции при отрисовке.
type Position struct {
	Current mgl64.Vec3
	Prev    mgl64.Vec3
}

// Velocity - скорость в блоках за тик.
type Velocity struct {
	mgl64.Vec3
	Drag float64 // множитель на каждом тике, 0 не меняет скорость
}

// Rotation - поворот головы в градусах. Yaw 0 смотрит в +Z, положительный
// pitch смотрит вниз.
type Rotation struct {
	Yaw   float64
	Pitch float64
}
