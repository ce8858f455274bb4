// internal/ui/scene.go
package ui

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"master-quest/internal/config"
	"master-quest/internal/entity"
	"master-quest/internal/render"
	pkgrender "master-quest/pkg/render"
)

// SceneRenderer рисует мир через перспективную камеру. Лучи - текстурными
// треугольниками, остальное линиями и кругами.
type SceneRenderer struct {
	ecs     *entity.ECS
	camera  *render.Camera
	beams   *render.BeamRenderer
	texture *ebiten.Image
}

func NewSceneRenderer(ecs *entity.ECS, camera *render.Camera, beams *render.BeamRenderer, texture *ebiten.Image) *SceneRenderer {
	return &SceneRenderer{ecs: ecs, camera: camera, beams: beams, texture: texture}
}

func (s *SceneRenderer) Draw(screen *ebiten.Image, partialTick float64) {
	vp := s.camera.ViewProjection()

	s.drawGrid(screen, vp)

	for _, t := range s.ecs.Terrain {
		s.drawBox(screen, vp, t.Min, t.Max, config.WallColor)
	}

	for id, col := range s.ecs.Colliders {
		if _, isBeam := s.ecs.Projectiles[id]; isBeam {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		clr := config.DummyColor
		if r, ok := s.ecs.Renderables[id]; ok {
			clr = r.Color
		}
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			clr = pkgrender.Lighten(clr, 0.6)
		}
		feet := render.Interpolate(pos.Prev, pos.Current, partialTick)
		head := feet.Add(mgl64.Vec3{0, col.Height, 0})
		x0, y0, ok0 := s.camera.ProjectWith(vp, feet)
		x1, y1, ok1 := s.camera.ProjectWith(vp, head)
		if !ok0 || !ok1 {
			continue
		}
		height := math.Hypot(x1-x0, y1-y0)
		radius := float32(math.Max(height*col.Width/col.Height/2, 2))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), radius, pkgrender.Darken(clr, 0.5), true)
		vector.DrawFilledCircle(screen, float32(x1), float32(y1), radius, clr, true)
	}

	for id, p := range s.ecs.Particles {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y, ok := s.camera.ProjectWith(vp, render.Interpolate(pos.Prev, pos.Current, partialTick))
		if !ok {
			continue
		}
		fade := float64(p.Life) / float64(max(p.MaxLife, 1))
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2, pkgrender.WithAlpha(config.ParticleColor, fade), true)
	}

	for _, proj := range s.ecs.Projectiles {
		b := proj.Beam
		s.drawBeam(screen, vp, s.beams.Render(b.Snapshot(), b.Previous(), partialTick, b.Age()))
	}
}

func (s *SceneRenderer) drawGrid(screen *ebiten.Image, vp mgl64.Mat4) {
	const g = config.GridHalfExtent
	for i := -g; i <= g; i += 2 {
		f := float64(i)
		s.drawLine(screen, vp, mgl64.Vec3{f, 0, -g}, mgl64.Vec3{f, 0, g}, config.GridColor)
		s.drawLine(screen, vp, mgl64.Vec3{-g, 0, f}, mgl64.Vec3{g, 0, f}, config.GridColor)
	}
}

func (s *SceneRenderer) drawLine(screen *ebiten.Image, vp mgl64.Mat4, a, b mgl64.Vec3, clr color.Color) {
	x0, y0, ok0 := s.camera.ProjectWith(vp, a)
	x1, y1, ok1 := s.camera.ProjectWith(vp, b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
}

func (s *SceneRenderer) drawBox(screen *ebiten.Image, vp mgl64.Mat4, lo, hi mgl64.Vec3, clr color.Color) {
	corner := func(i int) mgl64.Vec3 {
		c := lo
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[1] = hi[1]
		}
		if i&4 != 0 {
			c[2] = hi[2]
		}
		return c
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				s.drawLine(screen, vp, corner(i), corner(i|bit), clr)
			}
		}
	}
}

// drawBeam рисует обе плоскости луча с аддитивным смешиванием. Плоскость,
// угол которой за камерой, пропускается.
func (s *SceneRenderer) drawBeam(screen *ebiten.Image, vp mgl64.Mat4, frame render.Frame) {
	w, h := s.texture.Bounds().Dx(), s.texture.Bounds().Dy()
	tint := config.BeamTint
	indices := render.Indices[:]

	for _, quad := range frame.Quads {
		vs := make([]ebiten.Vertex, 0, 4)
		for _, v := range quad {
			x, y, ok := s.camera.ProjectWith(vp, v.Pos)
			if !ok {
				break
			}
			vs = append(vs, ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   float32(v.U * float64(w)),
				SrcY:   float32(v.V * float64(h)),
				ColorR: float32(tint.R) / 255,
				ColorG: float32(tint.G) / 255,
				ColorB: float32(tint.B) / 255,
				ColorA: float32(v.Alpha) / 255,
			})
		}
		if len(vs) != 4 {
			continue
		}
		screen.DrawTriangles(vs, indices, s.texture, &ebiten.DrawTrianglesOptions{
			Address: ebiten.AddressRepeat,
			Blend:   ebiten.BlendLighter,
		})
	}
}
