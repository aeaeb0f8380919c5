package scene

import (
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// Ray is a parametric ray: points along it are Org + t*Dir. Dir is kept
// unit length so T measures euclidean distance. Hit references the
// primitive responsible for the current nearest (or furthest) hit; a nil
// Hit means the ray has not struck anything yet. Nearest queries treat T
// as the distance limit whether or not Hit is set.
type Ray struct {
	Org types.Vec3
	Dir types.Vec3

	// Parametric distance of the current hit.
	T float32

	// The primitive that produced the current hit.
	Hit Primitive

	// Backface is set when the hit surface faces away from the ray
	// origin, i.e. the ray was inside the solid and the hit is an exit.
	Backface bool

	// Counter identifies the ray during accelerator traversal. Callers
	// must ensure it is unique per in-flight ray; NextRayID hands out
	// process-wide unique values.
	Counter uint32
}

var rayTicket uint32

// NextRayID returns a process-wide unique ray identifier. Accelerators use
// it to avoid re-testing primitives shared between tree leaves.
func NextRayID() uint32 {
	return atomic.AddUint32(&rayTicket, 1)
}

// NewRay creates a ray with a normalized direction and no hit.
func NewRay(org, dir types.Vec3) Ray {
	return Ray{
		Org:     org,
		Dir:     dir.Normalize(),
		T:       math32.Inf(1),
		Counter: NextRayID(),
	}
}

// HitSet reports whether the ray currently references a hit.
func (r *Ray) HitSet() bool {
	return r.Hit != nil && !math32.IsInf(r.T, 1)
}

// HitPoint returns the point the ray hit. Only meaningful when HitSet.
func (r *Ray) HitPoint() types.Vec3 {
	return r.Org.Add(r.Dir.Mul(r.T))
}
