// Package render turns beam snapshots into textured geometry. It has no
// window or GPU dependency; the ebiten and raylib front ends consume Frames.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/config"
	"master-quest/internal/projectile"
)

// Vertex is one corner of a beam quad in world space.
type Vertex struct {
	Pos    mgl64.Vec3
	U, V   float64
	Alpha  uint8
	Normal mgl64.Vec3
}

// Quad is four vertices wound (-w,0,0) (w,0,0) (w,0,L) (-w,0,L) in beam space.
type Quad [4]Vertex

// Frame is everything needed to draw one beam for one frame.
type Frame struct {
	Origin  mgl64.Vec3
	Alpha   float64
	Scroll  float64
	Texture string
	Quads   [2]Quad
}

// Indices triangulates a quad for indexed draw calls.
var Indices = [6]uint16{0, 1, 2, 0, 2, 3}

// Lerp is standard linear interpolation.
func Lerp(t, from, to float64) float64 {
	return from + (to-from)*t
}

// Interpolate blends two positions per axis.
func Interpolate(prev, cur mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(t, prev.X(), cur.X()),
		Lerp(t, prev.Y(), cur.Y()),
		Lerp(t, prev.Z(), cur.Z()),
	}
}

// Alpha fades the beam linearly over its lifetime but never below the floor,
// so it stays visible until it is removed.
func Alpha(age int) float64 {
	return math.Max(1.0-float64(age)/float64(config.BeamLifetimeTicks), config.BeamAlphaFloor)
}

// TextureScroll is the V offset of the looping energy texture.
func TextureScroll(age int, partialTick float64) float64 {
	return math.Mod((float64(age)+partialTick)*config.BeamScrollRate, 1.0)
}

// BeamRenderer draws the cross-billboard beam.
type BeamRenderer struct {
	Texture   string
	HalfWidth float64
	Length    float64
}

// NewBeamRenderer returns a renderer with the standard beam size.
func NewBeamRenderer(texture string) *BeamRenderer {
	return &BeamRenderer{
		Texture:   texture,
		HalfWidth: config.BeamHalfWidth,
		Length:    config.BeamLength,
	}
}

// Render builds the frame for a beam. It is pure: the same inputs always
// give the same frame.
func (r *BeamRenderer) Render(cur, prev projectile.Snapshot, partialTick float64, age int) Frame {
	origin := Interpolate(prev.Position, cur.Position, partialTick)
	alpha := Alpha(age)
	scroll := TextureScroll(age, partialTick)

	pose := mgl64.Translate3D(origin.X(), origin.Y()-config.BeamRenderYOffset, origin.Z()).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(cur.Yaw))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(-cur.Pitch))).
		Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(config.BeamRollDegrees)))

	minU, maxU := 0.0, 1.0
	minV := scroll
	maxV := minV + config.BeamVSpan
	a := uint8(alpha * 255)

	frame := Frame{Origin: origin, Alpha: alpha, Scroll: scroll, Texture: r.Texture}
	for i, rotation := range [2]float64{0, 90} {
		// The second plane is rotated on top of the first.
		pose = pose.Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(rotation)))
		normal := pose.Mat3().Mul3x1(mgl64.Vec3{0, 1, 0}).Normalize()

		corners := [4]struct{ x, z, u, v float64 }{
			{-r.HalfWidth, 0, minU, minV},
			{r.HalfWidth, 0, maxU, minV},
			{r.HalfWidth, r.Length, maxU, maxV},
			{-r.HalfWidth, r.Length, minU, maxV},
		}
		for j, c := range corners {
			frame.Quads[i][j] = Vertex{
				Pos:    pose.Mul4x1(mgl64.Vec4{c.x, 0, c.z, 1}).Vec3(),
				U:      c.u,
				V:      c.v,
				Alpha:  a,
				Normal: normal,
			}
		}
	}
	return frame
}
