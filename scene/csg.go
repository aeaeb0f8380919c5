package scene

import (
	"github.com/otmanesabir/OpenRT/types"
)

// BoolOp selects how a composite combines the interiors of its two
// children.
type BoolOp int

const (
	OpUnion BoolOp = iota
	OpIntersection
	OpDifference
)

func (op BoolOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	}
	return "unknown"
}

// Small slack applied when comparing interval endpoints from the two
// children. With it, subtracting a solid from an identically tessellated
// copy of itself yields the empty solid instead of a shell of coincident
// surfaces.
const csgEpsilon float32 = types.Epsilon

// Composite combines two solids with a boolean set operation and exposes
// the result as a single Primitive, so composites nest as children of
// other composites. Each child keeps its own BSP tree; trees are rebuilt
// lazily after a transform invalidates them.
type Composite struct {
	op BoolOp

	primsA []Primitive
	primsB []Primitive

	accelA *BSPTree
	accelB *BSPTree
	dirty  bool

	maxDepth int
	minPrims int

	origin types.Vec3
}

// NewComposite builds a composite of two solids. The BSP parameters are
// shared by both children. The transform origin starts at the center of
// the composite bound.
func NewComposite(op BoolOp, a, b *Solid, maxDepth, minPrims int) *Composite {
	c := &Composite{
		op:       op,
		primsA:   a.Primitives(),
		primsB:   b.Primitives(),
		maxDepth: maxDepth,
		minPrims: minPrims,
		dirty:    true,
	}
	c.rebuild()
	c.origin = c.Bounds().Center()
	return c
}

// NewCompositeOfPrimitives nests an existing primitive (typically another
// composite) with a solid or a second primitive.
func NewCompositeOfPrimitives(op BoolOp, a, b Primitive, maxDepth, minPrims int) *Composite {
	c := &Composite{
		op:       op,
		primsA:   []Primitive{a},
		primsB:   []Primitive{b},
		maxDepth: maxDepth,
		minPrims: minPrims,
		dirty:    true,
	}
	c.rebuild()
	c.origin = c.Bounds().Center()
	return c
}

func (c *Composite) rebuild() {
	if !c.dirty {
		return
	}
	c.accelA = BuildBSP(c.primsA, c.maxDepth, c.minPrims)
	c.accelB = BuildBSP(c.primsB, c.maxDepth, c.minPrims)
	c.dirty = false
}

// Bounds returns a conservative bound for the composite. For differences
// the bound of the minuend is used unchanged; for intersections the two
// child bounds are clipped against each other; for unions they are
// merged.
func (c *Composite) Bounds() BoundingBox {
	boxA := boundsOf(c.primsA)
	switch c.op {
	case OpUnion:
		boxA.ExtendBox(boundsOf(c.primsB))
		return boxA
	case OpIntersection:
		boxB := boundsOf(c.primsB)
		var out BoundingBox
		for i := 0; i < 3; i++ {
			out.Min[i] = max32(boxA.Min[i], boxB.Min[i])
			out.Max[i] = min32(boxA.Max[i], boxB.Max[i])
		}
		return out
	default:
		return boxA
	}
}

func boundsOf(prims []Primitive) BoundingBox {
	box := NewBoundingBox()
	for _, prim := range prims {
		box.ExtendBox(prim.Bounds())
	}
	return box
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Origin returns the point rigid transforms of the composite compose
// about.
func (c *Composite) Origin() types.Vec3 {
	return c.origin
}

// SetOrigin overrides the transform origin.
func (c *Composite) SetOrigin(origin types.Vec3) {
	c.origin = origin
}

// Transform applies a rigid transform to both children, composed about
// the composite's origin, and invalidates their spatial indices.
func (c *Composite) Transform(m types.Mat4) {
	if !m.IsRigid() {
		panic("scene: composite transform must be rigid")
	}
	t := types.Translate4(c.origin).Mul4(m).Mul4(types.Translate4(c.origin.Mul(-1)))
	for _, prim := range c.primsA {
		prim.Transform(t)
	}
	for _, prim := range c.primsB {
		prim.Transform(t)
	}
	c.origin = c.origin.Add(m.Translation())
	c.dirty = true
}

// interval is one child's coverage of the ray: the front-facing entry (if
// any) and the most distant exit.
type interval struct {
	hasNear bool
	near    Ray

	hasFar bool
	far    Ray
}

// probe intersects one child's tree with both query directions. The
// nearest hit only counts as an entry when the ray meets the surface from
// outside; a backface nearest hit means the ray origin is inside the
// child, and only the exit remains meaningful.
func probe(accel *BSPTree, org, dir types.Vec3) interval {
	var iv interval

	near := NewRay(org, dir)
	if accel.IntersectNearest(&near) && !near.Backface {
		iv.hasNear = true
		iv.near = near
	}

	far := NewRay(org, dir)
	if accel.IntersectFurthest(&far) {
		iv.hasFar = true
		iv.far = far
	}
	return iv
}

// resolveNearest applies the operator decision table to the two child
// intervals and returns the surviving hit, plus whether that surface is
// an exit of the composite (the ray origin was inside it).
func (c *Composite) resolveNearest(a, b interval) (res Ray, exit, ok bool) {
	switch c.op {
	case OpUnion:
		insideA := a.hasFar && !a.hasNear
		insideB := b.hasFar && !b.hasNear
		switch {
		case !insideA && !insideB:
			switch {
			case a.hasNear && b.hasNear:
				if a.near.T <= b.near.T {
					return a.near, false, true
				}
				return b.near, false, true
			case a.hasNear:
				return a.near, false, true
			case b.hasNear:
				return b.near, false, true
			}
			return res, false, false
		case insideA && insideB:
			return furthestOf(a, b), true, true
		case insideB:
			// The other interval extends the covered span when it starts
			// before this one ends.
			if a.hasNear && a.near.T <= b.far.T+csgEpsilon {
				return furthestOf(a, b), true, true
			}
			return b.far, true, true
		default:
			if b.hasNear && b.near.T <= a.far.T+csgEpsilon {
				return furthestOf(a, b), true, true
			}
			return a.far, true, true
		}

	case OpIntersection:
		switch {
		case a.hasNear && b.hasNear:
			// Enter through the later surface, provided the other
			// interior still covers it.
			if a.near.T >= b.near.T {
				if b.hasFar && b.far.T >= a.near.T {
					return a.near, false, true
				}
				return res, false, false
			}
			if a.hasFar && a.far.T >= b.near.T {
				return b.near, false, true
			}
			return res, false, false
		case a.hasNear:
			// Origin inside b: a's entry counts while b still covers it.
			if b.hasFar && b.far.T >= a.near.T {
				return a.near, false, true
			}
			return res, false, false
		case b.hasNear:
			if a.hasFar && a.far.T >= b.near.T {
				return b.near, false, true
			}
			return res, false, false
		case a.hasFar && b.hasFar:
			// Inside both: the shared interior ends at the first exit.
			if a.far.T <= b.far.T {
				return a.far, true, true
			}
			return b.far, true, true
		}
		return res, false, false

	case OpDifference:
		if !a.hasFar {
			return res, false, false
		}
		aEnd := a.far.T
		aInside := !a.hasNear
		aStart := float32(0)
		if a.hasNear {
			aStart = a.near.T
		}

		if !b.hasFar {
			if aInside {
				return a.far, true, true
			}
			return a.near, false, true
		}
		bEnd := b.far.T
		bStart := float32(0)
		if b.hasNear {
			bStart = b.near.T
		}

		// Part of a ahead of b survives untouched.
		if !aInside && aStart+csgEpsilon < bStart {
			return a.near, false, true
		}
		if aInside && bStart > csgEpsilon {
			// The origin sits in the carved solid; the nearest surface
			// is where b starts carving or where a ends.
			if b.hasNear && bStart < aEnd {
				return b.near, true, true
			}
			return a.far, true, true
		}

		// b covers a's start; the surviving piece begins at b's exit.
		if bEnd+csgEpsilon < aEnd && bEnd > aStart-csgEpsilon {
			return b.far, false, true
		}
		if bEnd <= aStart {
			// b ends before a begins and cannot carve anything.
			return a.near, false, true
		}
		return res, false, false
	}
	return res, false, false
}

// resolveFurthest mirrors resolveNearest for the most distant surface of
// the composite. Every surface it can commit is an exit.
func (c *Composite) resolveFurthest(a, b interval) (res Ray, exit, ok bool) {
	switch c.op {
	case OpUnion:
		if a.hasFar || b.hasFar {
			return furthestOf(a, b), true, true
		}
		return res, false, false

	case OpIntersection:
		if !a.hasFar || !b.hasFar {
			return res, false, false
		}
		// The shared interior ends at the first exit, provided the two
		// coverage intervals overlap at all.
		if a.hasNear && b.hasFar && a.near.T > b.far.T {
			return res, false, false
		}
		if b.hasNear && a.hasFar && b.near.T > a.far.T {
			return res, false, false
		}
		if a.far.T <= b.far.T {
			return a.far, true, true
		}
		return b.far, true, true

	case OpDifference:
		if !a.hasFar {
			return res, false, false
		}
		if !b.hasFar || b.far.T+csgEpsilon < a.far.T {
			// a's own exit survives when b ends before it.
			return a.far, true, true
		}
		bStart := float32(0)
		if b.hasNear {
			bStart = b.near.T
		}
		if bStart >= a.far.T {
			// b lies entirely beyond a and cannot carve anything.
			return a.far, true, true
		}
		// b covers a's exit. The last surviving surface is b's entry
		// wall, provided it lies inside a.
		aStart := float32(0)
		if a.hasNear {
			aStart = a.near.T
		}
		if b.hasNear && bStart > aStart+csgEpsilon {
			return b.near, true, true
		}
		return res, false, false
	}
	return res, false, false
}

func furthestOf(a, b interval) Ray {
	if !b.hasFar {
		return a.far
	}
	if !a.hasFar {
		return b.far
	}
	if a.far.T >= b.far.T {
		return a.far
	}
	return b.far
}

// commit copies the resolved child hit onto the caller's ray. The child
// primitive is wrapped in a normal-flipping proxy whenever its geometric
// normal does not point away from the composite interior: entry surfaces
// face the ray, exit surfaces face along it. A difference that exposes a
// subtrahend wall is the usual source of such flips.
func commit(ray *Ray, res Ray, exit bool) {
	hit := res.Hit
	rawFacesRay := res.Dir.Dot(hit.Normal(&res)) > 0
	if rawFacesRay != exit {
		hit = &flippedPrim{inner: hit}
	}
	ray.T = res.T
	ray.Hit = hit
	ray.Backface = exit
}

// IntersectNearest resolves the nearest surface of the composite along
// the ray. Hits at or beyond the ray's current hit distance are
// discarded.
func (c *Composite) IntersectNearest(ray *Ray) bool {
	c.rebuild()

	if _, _, ok := c.Bounds().IntersectRange(ray); !ok {
		return false
	}

	a := probe(c.accelA, ray.Org, ray.Dir)
	b := probe(c.accelB, ray.Org, ray.Dir)

	res, exit, ok := c.resolveNearest(a, b)
	if !ok {
		return false
	}
	if res.T >= ray.T {
		return false
	}
	commit(ray, res, exit)
	return true
}

// IntersectFurthest resolves the most distant surface of the composite
// along the ray. When the ray already carries a hit, only strictly
// farther surfaces are committed.
func (c *Composite) IntersectFurthest(ray *Ray) bool {
	c.rebuild()

	if _, _, ok := c.Bounds().IntersectRange(ray); !ok {
		return false
	}

	a := probe(c.accelA, ray.Org, ray.Dir)
	b := probe(c.accelB, ray.Org, ray.Dir)

	res, exit, ok := c.resolveFurthest(a, b)
	if !ok {
		return false
	}
	if ray.HitSet() && res.T <= ray.T {
		return false
	}
	commit(ray, res, exit)
	return true
}

// Normal must not be called on a composite: hits resolved by a composite
// always carry the child primitive that produced the surface.
func (c *Composite) Normal(ray *Ray) types.Vec3 {
	panic("scene: composite does not expose a surface normal; the committed hit does")
}

// TextureCoords must not be called on a composite, for the same reason
// as Normal.
func (c *Composite) TextureCoords(ray *Ray) types.Vec2 {
	panic("scene: composite does not expose texture coordinates; the committed hit does")
}

// Shader returns nil; shading follows the child primitive committed to
// the ray.
func (c *Composite) Shader() Shader {
	return nil
}

// flippedPrim presents a child primitive with its geometric normal
// negated. Everything else delegates.
type flippedPrim struct {
	inner Primitive
}

func (f *flippedPrim) IntersectNearest(ray *Ray) bool  { return f.inner.IntersectNearest(ray) }
func (f *flippedPrim) IntersectFurthest(ray *Ray) bool { return f.inner.IntersectFurthest(ray) }
func (f *flippedPrim) Bounds() BoundingBox             { return f.inner.Bounds() }
func (f *flippedPrim) Transform(m types.Mat4)          { f.inner.Transform(m) }
func (f *flippedPrim) TextureCoords(ray *Ray) types.Vec2 {
	return f.inner.TextureCoords(ray)
}
func (f *flippedPrim) Shader() Shader { return f.inner.Shader() }

func (f *flippedPrim) Normal(ray *Ray) types.Vec3 {
	return f.inner.Normal(ray).Mul(-1)
}
