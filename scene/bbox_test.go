package scene

import (
	"testing"

	"github.com/otmanesabir/OpenRT/types"
)

func TestBoundingBoxExtend(t *testing.T) {
	box := NewBoundingBox()
	if box.Valid() {
		t.Fatal("expected a fresh box to be invalid until extended")
	}

	box.Extend(types.Vec3{1, 2, 3})
	box.Extend(types.Vec3{-1, 0, 5})

	if box.Min != (types.Vec3{-1, 0, 3}) {
		t.Fatalf("expected min (-1, 0, 3); got %v", box.Min)
	}
	if box.Max != (types.Vec3{1, 2, 5}) {
		t.Fatalf("expected max (1, 2, 5); got %v", box.Max)
	}
	if got := box.Center(); got != (types.Vec3{0, 1, 4}) {
		t.Fatalf("expected center (0, 1, 4); got %v", got)
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoxFromPoints(types.Vec3{0, 0, 0}, types.Vec3{1, 1, 1})
	b := BoxFromPoints(types.Vec3{2, -1, 0}, types.Vec3{3, 0, 1})

	u := a.Union(b)
	if u.Min != (types.Vec3{0, -1, 0}) || u.Max != (types.Vec3{3, 1, 1}) {
		t.Fatalf("expected union [(0,-1,0), (3,1,1)]; got [%v, %v]", u.Min, u.Max)
	}
}

func TestBoundingBoxLongestAxis(t *testing.T) {
	box := BoxFromPoints(types.Vec3{0, 0, 0}, types.Vec3{1, 5, 2})
	if got := box.LongestAxis(); got != 1 {
		t.Fatalf("expected longest axis 1; got %d", got)
	}
}

func TestIntersectRange(t *testing.T) {
	box := BoxFromPoints(types.Vec3{-1, -1, -1}, types.Vec3{1, 1, 1})

	ray := NewRay(types.Vec3{0, 0, 5}, types.Vec3{0, 0, -1})
	t0, t1, ok := box.IntersectRange(&ray)
	if !ok {
		t.Fatal("expected ray to hit the box")
	}
	if t0 != 4 || t1 != 6 {
		t.Fatalf("expected interval [4, 6]; got [%f, %f]", t0, t1)
	}

	// Origin inside: entry distance is negative, exit positive.
	ray = NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, -1})
	t0, t1, ok = box.IntersectRange(&ray)
	if !ok {
		t.Fatal("expected ray starting inside the box to hit it")
	}
	if t0 != -1 || t1 != 1 {
		t.Fatalf("expected interval [-1, 1]; got [%f, %f]", t0, t1)
	}

	// Box entirely behind the ray.
	ray = NewRay(types.Vec3{0, 0, 5}, types.Vec3{0, 0, 1})
	if _, _, ok = box.IntersectRange(&ray); ok {
		t.Fatal("expected a box behind the ray to be missed")
	}

	// Parallel ray outside a slab.
	ray = NewRay(types.Vec3{0, 3, 5}, types.Vec3{0, 0, -1})
	if _, _, ok = box.IntersectRange(&ray); ok {
		t.Fatal("expected a parallel ray outside the slab to miss")
	}

	// Invalid boxes reject everything.
	empty := NewBoundingBox()
	ray = NewRay(types.Vec3{0, 0, 5}, types.Vec3{0, 0, -1})
	if _, _, ok = empty.IntersectRange(&ray); ok {
		t.Fatal("expected an empty box to reject all rays")
	}
}
