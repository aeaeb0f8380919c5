package scene

import (
	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// Rays are clipped against this lower parametric bound so that surfaces
// do not shadow themselves at their own origin.
const minHitDist float32 = 1e-4

// Triangle is the tessellation unit for all solids. Vertices are stored
// counter-clockwise when viewed from the outside so the geometric normal
// points away from the solid interior.
type Triangle struct {
	Vertices [3]types.Vec3
	UV       [3]types.Vec2

	normal types.Vec3
	shader Shader
}

// NewTriangle creates a triangle. Vertices should be specified in
// counter-clockwise order as seen from outside the solid.
func NewTriangle(vertices [3]types.Vec3, uv [3]types.Vec2, shader Shader) *Triangle {
	tri := &Triangle{
		Vertices: vertices,
		UV:       uv,
		shader:   shader,
	}
	tri.updateNormal()
	return tri
}

func (tri *Triangle) updateNormal() {
	e1 := tri.Vertices[1].Sub(tri.Vertices[0])
	e2 := tri.Vertices[2].Sub(tri.Vertices[0])
	tri.normal = e1.Cross(e2).Normalize()
}

// intersectDist runs the Moeller-Trumbore test and returns the parametric
// hit distance. ok is false when the ray misses or the triangle is
// degenerate.
func (tri *Triangle) intersectDist(ray *Ray) (t float32, ok bool) {
	e1 := tri.Vertices[1].Sub(tri.Vertices[0])
	e2 := tri.Vertices[2].Sub(tri.Vertices[0])

	pvec := ray.Dir.Cross(e2)
	det := e1.Dot(pvec)
	if math32.Abs(det) < 1e-9 {
		return 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Org.Sub(tri.Vertices[0])
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(e1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t < minHitDist {
		return 0, false
	}
	return t, true
}

func (tri *Triangle) IntersectNearest(ray *Ray) bool {
	t, ok := tri.intersectDist(ray)
	if !ok || t >= ray.T {
		return false
	}
	ray.T = t
	ray.Hit = tri
	ray.Backface = ray.Dir.Dot(tri.normal) > 0
	return true
}

func (tri *Triangle) IntersectFurthest(ray *Ray) bool {
	t, ok := tri.intersectDist(ray)
	if !ok {
		return false
	}
	if ray.Hit != nil && t <= ray.T {
		return false
	}
	ray.T = t
	ray.Hit = tri
	ray.Backface = ray.Dir.Dot(tri.normal) > 0
	return true
}

func (tri *Triangle) Bounds() BoundingBox {
	return BoxFromPoints(tri.Vertices[0], tri.Vertices[1], tri.Vertices[2])
}

func (tri *Triangle) Transform(m types.Mat4) {
	for i := range tri.Vertices {
		tri.Vertices[i] = m.TransformPoint(tri.Vertices[i])
	}
	tri.updateNormal()
}

func (tri *Triangle) Normal(ray *Ray) types.Vec3 {
	return tri.normal
}

// TextureCoords interpolates the vertex UVs at the hit point using
// barycentric coordinates.
func (tri *Triangle) TextureCoords(ray *Ray) types.Vec2 {
	p := ray.HitPoint()

	e1 := tri.Vertices[1].Sub(tri.Vertices[0])
	e2 := tri.Vertices[2].Sub(tri.Vertices[0])
	d := p.Sub(tri.Vertices[0])

	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	dp1 := d.Dot(e1)
	dp2 := d.Dot(e2)

	denom := d11*d22 - d12*d12
	if math32.Abs(denom) < 1e-12 {
		return tri.UV[0]
	}
	v := (d22*dp1 - d12*dp2) / denom
	w := (d11*dp2 - d12*dp1) / denom
	u := 1 - v - w

	return tri.UV[0].Mul(u).Add(tri.UV[1].Mul(v)).Add(tri.UV[2].Mul(w))
}

func (tri *Triangle) Shader() Shader {
	return tri.shader
}
