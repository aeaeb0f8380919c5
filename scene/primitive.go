package scene

import (
	"github.com/otmanesabir/OpenRT/types"
)

// Primitive is the contract every intersectable scene object satisfies.
// Composites implement it too, which is what allows CSG nodes to nest.
type Primitive interface {
	// IntersectNearest tests the ray against the primitive and commits
	// the hit to the ray when it is closer than the ray's current hit.
	// Returns true when the ray was updated.
	IntersectNearest(ray *Ray) bool

	// IntersectFurthest is the CSG dual of IntersectNearest: it commits
	// the hit when it is further than the ray's current hit.
	IntersectFurthest(ray *Ray) bool

	// Bounds returns the primitive's axis-aligned bound.
	Bounds() BoundingBox

	// Transform applies a rigid transform to the primitive geometry.
	Transform(m types.Mat4)

	// Normal returns the outward geometric normal for a committed hit.
	Normal(ray *Ray) types.Vec3

	// TextureCoords returns the texture coordinates for a committed hit.
	TextureCoords(ray *Ray) types.Vec2

	// Shader returns the shader attached to the primitive.
	Shader() Shader
}
