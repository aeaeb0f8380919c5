package scene

import (
	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// BoundingBox is an axis-aligned box. A freshly constructed box is empty;
// extending it with points or other boxes grows it to the enclosing bound.
type BoundingBox struct {
	Min types.Vec3
	Max types.Vec3
}

// NewBoundingBox creates an empty box that any Extend call will replace.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: types.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: types.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// BoxFromPoints returns the bound of the given points.
func BoxFromPoints(points ...types.Vec3) BoundingBox {
	box := NewBoundingBox()
	for _, p := range points {
		box.Extend(p)
	}
	return box
}

// Extend grows the box to include a point.
func (b *BoundingBox) Extend(p types.Vec3) {
	b.Min = types.MinVec3(b.Min, p)
	b.Max = types.MaxVec3(b.Max, p)
}

// ExtendBox grows the box to include another box.
func (b *BoundingBox) ExtendBox(other BoundingBox) {
	b.Min = types.MinVec3(b.Min, other.Min)
	b.Max = types.MaxVec3(b.Max, other.Max)
}

// Union returns the bound of both boxes.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	out := b
	out.ExtendBox(other)
	return out
}

// Valid reports whether Min <= Max on every axis. Boxes produced by
// intersecting disjoint bounds are invalid and reject every ray.
func (b BoundingBox) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the box center point.
func (b BoundingBox) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent along each axis.
func (b BoundingBox) Size() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns the axis index (0, 1 or 2) with the largest extent.
func (b BoundingBox) LongestAxis() int {
	size := b.Size()
	if size[0] > size[1] && size[0] > size[2] {
		return 0
	}
	if size[1] > size[2] {
		return 1
	}
	return 2
}

// IntersectRange performs the slab test and returns the parametric
// interval [t0, t1] over which the ray overlaps the box. ok is false when
// the ray misses. t0 may be negative when the ray starts inside the box.
func (b BoundingBox) IntersectRange(ray *Ray) (t0, t1 float32, ok bool) {
	if !b.Valid() {
		return 0, 0, false
	}

	t0 = -math32.MaxFloat32
	t1 = math32.MaxFloat32
	for axis := 0; axis < 3; axis++ {
		dir := ray.Dir[axis]
		org := ray.Org[axis]

		if math32.Abs(dir) < 1e-9 {
			if org < b.Min[axis] || org > b.Max[axis] {
				return 0, 0, false
			}
			continue
		}

		inv := 1.0 / dir
		tNear := (b.Min[axis] - org) * inv
		tFar := (b.Max[axis] - org) * inv
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		if tNear > t0 {
			t0 = tNear
		}
		if tFar < t1 {
			t1 = tFar
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}

	if t1 < 0 {
		return 0, 0, false
	}
	return t0, t1, true
}
