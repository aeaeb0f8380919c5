package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

func TestCameraPrimaryRays(t *testing.T) {
	cam := NewCamera(60)
	cam.Position = types.Vec3{0, 0, 4}
	cam.LookAt = types.Vec3{0, 0, 0}
	cam.SetupFrame(101, 101)

	// The center pixel looks straight down the view axis.
	ray := cam.PrimaryRay(50, 50, 101, 101)
	if ray.Org != cam.Position {
		t.Fatalf("expected ray origin at the camera position; got %v", ray.Org)
	}
	if ray.Dir.Sub(types.Vec3{0, 0, -1}).Len() > 1e-3 {
		t.Fatalf("expected the center ray along -z; got %v", ray.Dir)
	}
	if math32.Abs(ray.Dir.Len()-1) > 1e-5 {
		t.Fatalf("expected a unit direction; got length %f", ray.Dir.Len())
	}

	// Pixels left of center bend towards -x, pixels above towards +y.
	left := cam.PrimaryRay(0, 50, 101, 101)
	if left.Dir[0] >= 0 {
		t.Fatalf("expected the left edge ray to bend towards -x; got %v", left.Dir)
	}
	top := cam.PrimaryRay(50, 0, 101, 101)
	if top.Dir[1] <= 0 {
		t.Fatalf("expected the top edge ray to bend towards +y; got %v", top.Dir)
	}
}

func TestCameraFrustumSpread(t *testing.T) {
	narrow := NewCamera(30)
	narrow.Position = types.Vec3{0, 0, 4}
	narrow.LookAt = types.Vec3{0, 0, 0}
	narrow.SetupFrame(100, 100)

	wide := NewCamera(90)
	wide.Position = types.Vec3{0, 0, 4}
	wide.LookAt = types.Vec3{0, 0, 0}
	wide.SetupFrame(100, 100)

	narrowSpread := narrow.Frustum[0].Sub(narrow.Frustum[1]).Len()
	wideSpread := wide.Frustum[0].Sub(wide.Frustum[1]).Len()
	if narrowSpread >= wideSpread {
		t.Fatalf("expected a wider fov to spread the corner rays further; got %f vs %f", narrowSpread, wideSpread)
	}
}
