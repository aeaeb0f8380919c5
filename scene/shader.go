package scene

import (
	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// Shader turns a committed hit into a color. Composite surfaces inherit
// the shader of the child primitive that produced the hit.
type Shader interface {
	Shade(ray *Ray) types.Vec3
}

// EyelightShader modulates a base color by the angle between the viewing
// ray and the surface normal.
type EyelightShader struct {
	Color types.Vec3
}

func NewEyelightShader(color types.Vec3) *EyelightShader {
	return &EyelightShader{Color: color}
}

func (s *EyelightShader) Shade(ray *Ray) types.Vec3 {
	if ray.Hit == nil {
		return s.Color
	}
	n := ray.Hit.Normal(ray)
	return s.Color.Mul(math32.Abs(ray.Dir.Dot(n)))
}

// FlatShader returns its color unmodified.
type FlatShader struct {
	Color types.Vec3
}

func NewFlatShader(color types.Vec3) *FlatShader {
	return &FlatShader{Color: color}
}

func (s *FlatShader) Shade(ray *Ray) types.Vec3 {
	return s.Color
}
