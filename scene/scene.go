package scene

import (
	"fmt"

	"github.com/otmanesabir/OpenRT/types"
)

// Scene is the root container handed to the renderer: a camera plus the
// top-level primitives (solids, composites, or any mix of both).
type Scene struct {
	Camera *Camera

	Primitives []Primitive

	BgColor types.Vec3
}

func NewScene() *Scene {
	return &Scene{
		Primitives: make([]Primitive, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a primitive to the scene.
func (s *Scene) AddPrimitive(primitive Primitive) error {
	for _, prim := range s.Primitives {
		if prim == primitive {
			return fmt.Errorf("scene: primitive already added")
		}
	}
	s.Primitives = append(s.Primitives, primitive)
	return nil
}

// AddSolid indexes a free-standing solid with its own spatial tree and
// adds it to the scene.
func (s *Scene) AddSolid(solid *Solid, maxDepth, minPrims int) error {
	return s.AddPrimitive(NewIndexedSolid(solid, maxDepth, minPrims))
}

// TraceNearest intersects the ray against every top-level primitive and
// returns true when any of them committed a hit.
func (s *Scene) TraceNearest(ray *Ray) bool {
	found := false
	for _, prim := range s.Primitives {
		if prim.IntersectNearest(ray) {
			found = true
		}
	}
	return found
}

// Shade resolves a traced ray to a color: the committed primitive's
// shader on a hit, the background color on a miss.
func (s *Scene) Shade(ray *Ray) types.Vec3 {
	if !ray.HitSet() {
		return s.BgColor
	}
	shader := ray.Hit.Shader()
	if shader == nil {
		return s.BgColor
	}
	return shader.Shade(ray)
}
