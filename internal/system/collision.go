// internal/system/collision.go
package system

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/go-gl/mathgl/mgl64"

	"master-quest/internal/entity"
	"master-quest/internal/projectile"
	"master-quest/internal/types"
)

const minExtent = 1e-6

// body - один объем в дереве широкой фазы.
type body struct {
	id      types.EntityID
	terrain bool
	min     mgl64.Vec3
	max     mgl64.Vec3
	rect    rtreego.Rect
}

func (b *body) Bounds() rtreego.Rect { return b.rect }

// CollisionSystem держит R-дерево всех хитбоксов и блоков и отвечает на
// запросы заметания для летящих снарядов.
type CollisionSystem struct {
	ecs  *entity.ECS
	tree *rtreego.Rtree
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	s := &CollisionSystem{ecs: ecs}
	s.rebuild()
	return s
}

// Update перестраивает дерево по текущим позициям.
func (s *CollisionSystem) Update(deltaTime float64) {
	s.rebuild()
}

func (s *CollisionSystem) rebuild() {
	s.tree = rtreego.NewTree(3, 25, 50)
	for id, col := range s.ecs.Colliders {
		if _, isBeam := s.ecs.Projectiles[id]; isBeam {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		p := pos.Current
		hw := col.Width / 2
		s.insert(&body{
			id:  id,
			min: mgl64.Vec3{p.X() - hw, p.Y(), p.Z() - hw},
			max: mgl64.Vec3{p.X() + hw, p.Y() + col.Height, p.Z() + hw},
		})
	}
	for id, t := range s.ecs.Terrain {
		s.insert(&body{id: id, terrain: true, min: t.Min, max: t.Max})
	}
}

func (s *CollisionSystem) insert(b *body) {
	rect, err := boxRect(b.min, b.max)
	if err != nil {
		return
	}
	b.rect = rect
	s.tree.Insert(b)
}

func boxRect(lo, hi mgl64.Vec3) (rtreego.Rect, error) {
	lengths := make([]float64, 3)
	for i := range lengths {
		lengths[i] = math.Max(hi[i]-lo[i], minExtent)
	}
	return rtreego.NewRect(rtreego.Point{lo[0], lo[1], lo[2]}, lengths)
}

type candidate struct {
	hit projectile.Hit
	t   float64
}

// Sweep возвращает все, чего касается коробка с данной полуразмерностью,
// пока ее центр идет из одной точки в другую, по порядку входа.
func (s *CollisionSystem) Sweep(from, to mgl64.Vec3, half float64) []projectile.Hit {
	pad := mgl64.Vec3{half, half, half}
	lo := mgl64.Vec3{math.Min(from[0], to[0]), math.Min(from[1], to[1]), math.Min(from[2], to[2])}.Sub(pad)
	hi := mgl64.Vec3{math.Max(from[0], to[0]), math.Max(from[1], to[1]), math.Max(from[2], to[2])}.Add(pad)
	bb, err := boxRect(lo, hi)
	if err != nil {
		return nil
	}

	dir := to.Sub(from)
	var found []candidate
	for _, obj := range s.tree.SearchIntersect(bb) {
		b := obj.(*body)
		t, ok := segmentBox(from, dir, b.min.Sub(pad), b.max.Add(pad))
		if !ok {
			continue
		}
		point := from.Add(dir.Mul(t))
		var hit projectile.Hit
		if b.terrain {
			hit = projectile.BlockHit(point)
		} else {
			hit = projectile.EntityHit(b.id, s.living(b.id), point)
		}
		found = append(found, candidate{hit: hit, t: t})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].t != found[j].t {
			return found[i].t < found[j].t
		}
		return found[i].hit.Entity < found[j].hit.Entity
	})
	hits := make([]projectile.Hit, len(found))
	for i, c := range found {
		hits[i] = c.hit
	}
	return hits
}

func (s *CollisionSystem) living(id types.EntityID) bool {
	h, ok := s.ecs.Healths[id]
	return ok && !h.Dead()
}

// segmentBox - slab-тест для отрезка from + dir*t, t в [0,1].
// Возвращает время входа.
func segmentBox(from, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin, tmax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if from[i] < lo[i] || from[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - from[i]) * inv
		t2 := (hi[i] - from[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
