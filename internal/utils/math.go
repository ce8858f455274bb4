// internal/utils/math.go
package utils

import "math"

// Lerp - обычная линейная интерполяция.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle интерполирует между двумя углами в градусах по кратчайшему пути.
func LerpAngle(from, to, t float64) float64 {
	diff := WrapDegrees(to - from)
	return WrapDegrees(from + diff*t)
}

// WrapDegrees приводит угол к [-180, 180).
func WrapDegrees(angle float64) float64 {
	a := math.Mod(angle+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
