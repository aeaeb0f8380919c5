package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

func TestSceneTraceAndShade(t *testing.T) {
	sc := NewScene()
	sc.BgColor = types.Vec3{0.1, 0.2, 0.3}

	solid := NewSphereSolid(NewFlatShader(types.Vec3{1, 0, 0}), types.Vec3{0, 0, 0}, 1, 16)
	if err := sc.AddSolid(solid, 10, 2); err != nil {
		t.Fatalf("expected solid to be added; got %v", err)
	}

	ray := NewRay(types.Vec3{0.1, 0.1, 5}, types.Vec3{0, 0, -1})
	if !sc.TraceNearest(&ray) {
		t.Fatal("expected ray through the sphere to hit")
	}
	if got := sc.Shade(&ray); got != (types.Vec3{1, 0, 0}) {
		t.Fatalf("expected the sphere's flat color; got %v", got)
	}

	miss := NewRay(types.Vec3{5, 5, 5}, types.Vec3{0, 0, -1})
	if sc.TraceNearest(&miss) {
		t.Fatal("expected ray far from the sphere to miss")
	}
	if got := sc.Shade(&miss); got != sc.BgColor {
		t.Fatalf("expected the background color on a miss; got %v", got)
	}
}

func TestSceneNearestAcrossPrimitives(t *testing.T) {
	sc := NewScene()
	near := NewSphereSolid(NewFlatShader(types.Vec3{1, 0, 0}), types.Vec3{0, 0, 2}, 0.5, 16)
	far := NewSphereSolid(NewFlatShader(types.Vec3{0, 1, 0}), types.Vec3{0, 0, -2}, 0.5, 16)
	sc.AddSolid(far, 10, 2)
	sc.AddSolid(near, 10, 2)

	ray := NewRay(types.Vec3{0.05, 0.05, 5}, types.Vec3{0, 0, -1})
	if !sc.TraceNearest(&ray) {
		t.Fatal("expected ray to hit one of the spheres")
	}
	if math32.Abs(ray.T-2.5) > 0.1 {
		t.Fatalf("expected the closer sphere to win at distance ~2.5; got %f", ray.T)
	}
	if got := sc.Shade(&ray); got != (types.Vec3{1, 0, 0}) {
		t.Fatalf("expected the closer sphere's color; got %v", got)
	}
}

func TestSceneRejectsDuplicates(t *testing.T) {
	sc := NewScene()
	solid := NewBoxSolid(NewFlatShader(types.Vec3{1, 1, 1}), types.Vec3{0, 0, 0}, 1, 1, 1)
	prim := NewIndexedSolid(solid, 10, 2)

	if err := sc.AddPrimitive(prim); err != nil {
		t.Fatalf("expected primitive to be added; got %v", err)
	}
	if err := sc.AddPrimitive(prim); err == nil {
		t.Fatal("expected adding the same primitive twice to fail")
	}
}
