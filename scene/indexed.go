package scene

import (
	"github.com/otmanesabir/OpenRT/types"
)

// IndexedSolid adapts a solid into a Primitive by backing it with a BSP
// tree. Free-standing solids in a scene and solids nested next to
// composites both go through this wrapper. The tree is rebuilt lazily
// after a transform.
type IndexedSolid struct {
	solid *Solid
	accel *BSPTree
	dirty bool

	maxDepth int
	minPrims int
}

func NewIndexedSolid(solid *Solid, maxDepth, minPrims int) *IndexedSolid {
	return &IndexedSolid{
		solid:    solid,
		maxDepth: maxDepth,
		minPrims: minPrims,
		dirty:    true,
	}
}

func (is *IndexedSolid) rebuild() {
	if !is.dirty {
		return
	}
	is.accel = BuildBSP(is.solid.Primitives(), is.maxDepth, is.minPrims)
	is.dirty = false
}

func (is *IndexedSolid) IntersectNearest(ray *Ray) bool {
	is.rebuild()
	return is.accel.IntersectNearest(ray)
}

func (is *IndexedSolid) IntersectFurthest(ray *Ray) bool {
	is.rebuild()
	return is.accel.IntersectFurthest(ray)
}

func (is *IndexedSolid) Bounds() BoundingBox {
	return is.solid.Bounds()
}

func (is *IndexedSolid) Transform(m types.Mat4) {
	is.solid.Transform(m)
	is.dirty = true
}

// Normal must not be called on the wrapper; intersections commit the
// underlying triangle to the ray.
func (is *IndexedSolid) Normal(ray *Ray) types.Vec3 {
	panic("scene: indexed solid does not expose a surface normal; the committed hit does")
}

// TextureCoords must not be called on the wrapper, for the same reason
// as Normal.
func (is *IndexedSolid) TextureCoords(ray *Ray) types.Vec2 {
	panic("scene: indexed solid does not expose texture coordinates; the committed hit does")
}

// Shader returns nil; shading follows the triangle committed to the ray.
func (is *IndexedSolid) Shader() Shader {
	return nil
}
