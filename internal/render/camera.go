package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/config"
)

// Camera is a perspective camera that maps world points to screen pixels.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FovY   float64 // degrees
	Near   float64
	Far    float64
	Width  float64
	Height float64
}

// NewCamera returns a camera for a screen of the given size.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Eye:    mgl64.Vec3{0, config.CameraHeight, -config.CameraDistance},
		FovY:   config.CameraFovY,
		Near:   config.CameraNear,
		Far:    config.CameraFar,
		Width:  width,
		Height: height,
	}
}

// Forward is the horizontal facing for a yaw in degrees (0 faces +Z).
func Forward(yaw float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	return mgl64.Vec3{-math.Sin(y), 0, math.Cos(y)}
}

// Follow places the camera behind and above target, looking along yaw.
func (c *Camera) Follow(target mgl64.Vec3, yaw float64) {
	fwd := Forward(yaw)
	c.Target = target.Add(fwd.Mul(config.CameraDistance * 0.5))
	c.Eye = target.Sub(fwd.Mul(config.CameraDistance)).Add(mgl64.Vec3{0, config.CameraHeight, 0})
}

// ViewProjection is the combined world-to-clip matrix.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Width/c.Height, c.Near, c.Far)
	view := mgl64.LookAtV(c.Eye, c.Target, mgl64.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// Project maps a world point to screen pixels. ok is false for points
// behind the near plane.
func (c *Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	return c.ProjectWith(c.ViewProjection(), p)
}

// ProjectWith is Project with a precomputed view-projection matrix.
func (c *Camera) ProjectWith(vp mgl64.Mat4, p mgl64.Vec3) (x, y float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= c.Near {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) / 2 * c.Width
	y = (1 - ndcY) / 2 * c.Height
	return x, y, true
}
