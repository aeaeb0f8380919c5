package scene

import (
	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// Solid owns a list of primitives that tessellate one closed surface and
// share a shader. Solids are the inputs to composite CSG nodes; handing a
// solid to a composite shares the primitive list, it does not copy it.
type Solid struct {
	prims []Primitive
	pivot types.Vec3
}

// NewSolid wraps an existing primitive list into a solid.
func NewSolid(prims []Primitive, pivot types.Vec3) *Solid {
	return &Solid{prims: prims, pivot: pivot}
}

// Primitives returns the solid's primitive list.
func (s *Solid) Primitives() []Primitive {
	return s.prims
}

// Pivot returns the point rigid transforms of the solid compose about.
func (s *Solid) Pivot() types.Vec3 {
	return s.pivot
}

// SetPivot overrides the transform pivot.
func (s *Solid) SetPivot(pivot types.Vec3) {
	s.pivot = pivot
}

// Bounds returns the bound of all primitives in the solid.
func (s *Solid) Bounds() BoundingBox {
	box := NewBoundingBox()
	for _, prim := range s.prims {
		box.ExtendBox(prim.Bounds())
	}
	return box
}

// Transform applies a rigid transform to every primitive, composed about
// the solid's pivot.
func (s *Solid) Transform(m types.Mat4) {
	if !m.IsRigid() {
		panic("scene: solid transform must be rigid")
	}
	t := types.Translate4(s.pivot).Mul4(m).Mul4(types.Translate4(s.pivot.Mul(-1)))
	for _, prim := range s.prims {
		prim.Transform(t)
	}
	s.pivot = s.pivot.Add(m.Translation())
}

func (s *Solid) add(prim Primitive) {
	s.prims = append(s.prims, prim)
}

// addQuad splits the quad (a, b, c, d), given counter-clockwise from
// outside, into two triangles.
func (s *Solid) addQuad(a, b, c, d types.Vec3, uva, uvb, uvc, uvd types.Vec2, shader Shader) {
	s.add(NewTriangle([3]types.Vec3{a, b, c}, [3]types.Vec2{uva, uvb, uvc}, shader))
	s.add(NewTriangle([3]types.Vec3{a, c, d}, [3]types.Vec2{uva, uvc, uvd}, shader))
}

// NewSphereSolid tessellates a sphere into triangles using a
// latitude/longitude grid with the poles along +y. sides controls the
// number of segments around the equator.
func NewSphereSolid(shader Shader, center types.Vec3, radius float32, sides int) *Solid {
	if sides < 3 {
		sides = 3
	}
	stacks := sides / 2
	if stacks < 2 {
		stacks = 2
	}

	s := &Solid{pivot: center}

	point := func(stack, slice int) types.Vec3 {
		phi := math32.Pi * float32(stack) / float32(stacks)
		theta := 2 * math32.Pi * float32(slice) / float32(sides)
		return center.Add(types.Vec3{
			radius * math32.Sin(phi) * math32.Cos(theta),
			radius * math32.Cos(phi),
			radius * math32.Sin(phi) * math32.Sin(theta),
		})
	}
	uv := func(stack, slice int) types.Vec2 {
		return types.Vec2{float32(slice) / float32(sides), float32(stack) / float32(stacks)}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < sides; j++ {
			v00, v01 := point(i, j), point(i, j+1)
			v10, v11 := point(i+1, j), point(i+1, j+1)

			if i > 0 {
				s.add(NewTriangle(
					[3]types.Vec3{v00, v01, v11},
					[3]types.Vec2{uv(i, j), uv(i, j+1), uv(i+1, j+1)},
					shader,
				))
			}
			if i < stacks-1 {
				s.add(NewTriangle(
					[3]types.Vec3{v00, v11, v10},
					[3]types.Vec2{uv(i, j), uv(i+1, j+1), uv(i+1, j)},
					shader,
				))
			}
		}
	}
	return s
}

// NewBoxSolid tessellates an axis-aligned box centered at center with the
// given side lengths into 12 triangles.
func NewBoxSolid(shader Shader, center types.Vec3, wx, wy, wz float32) *Solid {
	half := types.Vec3{wx * 0.5, wy * 0.5, wz * 0.5}
	lo := center.Sub(half)
	hi := center.Add(half)

	s := &Solid{pivot: center}

	u0, u1 := types.Vec2{0, 0}, types.Vec2{1, 0}
	u2, u3 := types.Vec2{1, 1}, types.Vec2{0, 1}

	// +x
	s.addQuad(
		types.Vec3{hi[0], lo[1], lo[2]}, types.Vec3{hi[0], hi[1], lo[2]},
		types.Vec3{hi[0], hi[1], hi[2]}, types.Vec3{hi[0], lo[1], hi[2]},
		u0, u1, u2, u3, shader)
	// -x
	s.addQuad(
		types.Vec3{lo[0], lo[1], lo[2]}, types.Vec3{lo[0], lo[1], hi[2]},
		types.Vec3{lo[0], hi[1], hi[2]}, types.Vec3{lo[0], hi[1], lo[2]},
		u0, u1, u2, u3, shader)
	// +y
	s.addQuad(
		types.Vec3{lo[0], hi[1], lo[2]}, types.Vec3{lo[0], hi[1], hi[2]},
		types.Vec3{hi[0], hi[1], hi[2]}, types.Vec3{hi[0], hi[1], lo[2]},
		u0, u1, u2, u3, shader)
	// -y
	s.addQuad(
		types.Vec3{lo[0], lo[1], lo[2]}, types.Vec3{hi[0], lo[1], lo[2]},
		types.Vec3{hi[0], lo[1], hi[2]}, types.Vec3{lo[0], lo[1], hi[2]},
		u0, u1, u2, u3, shader)
	// +z
	s.addQuad(
		types.Vec3{lo[0], lo[1], hi[2]}, types.Vec3{hi[0], lo[1], hi[2]},
		types.Vec3{hi[0], hi[1], hi[2]}, types.Vec3{lo[0], hi[1], hi[2]},
		u0, u1, u2, u3, shader)
	// -z
	s.addQuad(
		types.Vec3{lo[0], lo[1], lo[2]}, types.Vec3{lo[0], hi[1], lo[2]},
		types.Vec3{hi[0], hi[1], lo[2]}, types.Vec3{hi[0], lo[1], lo[2]},
		u0, u1, u2, u3, shader)

	return s
}

// NewCylinderSolid tessellates a cylinder whose axis runs along +y from
// origin to origin + (0, height, 0). When capped is false the tube is left
// open at both ends.
func NewCylinderSolid(shader Shader, origin types.Vec3, radius, height float32, sides int, capped bool) *Solid {
	if sides < 3 {
		sides = 3
	}

	s := &Solid{pivot: origin.Add(types.Vec3{0, height * 0.5, 0})}

	rim := func(slice int, y float32) types.Vec3 {
		theta := 2 * math32.Pi * float32(slice) / float32(sides)
		return origin.Add(types.Vec3{radius * math32.Cos(theta), y, radius * math32.Sin(theta)})
	}

	for j := 0; j < sides; j++ {
		b0, b1 := rim(j, 0), rim(j+1, 0)
		t0, t1 := rim(j, height), rim(j+1, height)

		fu0 := types.Vec2{float32(j) / float32(sides), 0}
		fu1 := types.Vec2{float32(j+1) / float32(sides), 0}
		fv0 := types.Vec2{float32(j) / float32(sides), 1}
		fv1 := types.Vec2{float32(j+1) / float32(sides), 1}

		s.addQuad(b1, b0, t0, t1, fu1, fu0, fv0, fv1, shader)
	}

	if capped {
		top := origin.Add(types.Vec3{0, height, 0})
		uvc := types.Vec2{0.5, 0.5}
		for j := 0; j < sides; j++ {
			s.add(NewTriangle(
				[3]types.Vec3{top, rim(j+1, height), rim(j, height)},
				[3]types.Vec2{uvc, uvc, uvc},
				shader,
			))
			s.add(NewTriangle(
				[3]types.Vec3{origin, rim(j, 0), rim(j+1, 0)},
				[3]types.Vec2{uvc, uvc, uvc},
				shader,
			))
		}
	}
	return s
}
