package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func vecNear(a, b Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

func TestTranslate4(t *testing.T) {
	m := Translate4(Vec3{1, 2, 3})

	if got := m.TransformPoint(Vec3{1, 1, 1}); got != (Vec3{2, 3, 4}) {
		t.Fatalf("expected translated point (2, 3, 4); got %v", got)
	}
	if got := m.TransformDir(Vec3{1, 0, 0}); got != (Vec3{1, 0, 0}) {
		t.Fatalf("expected direction to be unaffected by translation; got %v", got)
	}
	if got := m.Translation(); got != (Vec3{1, 2, 3}) {
		t.Fatalf("expected translation column (1, 2, 3); got %v", got)
	}
}

func TestRotate4(t *testing.T) {
	m := Rotate4(Vec3{0, 1, 0}, 90)

	got := m.TransformPoint(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("expected (1, 0, 0) rotated 90 deg about y to be (0, 0, -1); got %v", got)
	}

	got = m.TransformDir(Vec3{0, 0, 1})
	if !vecNear(got, Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected (0, 0, 1) rotated 90 deg about y to be (1, 0, 0); got %v", got)
	}
}

func TestMul4Compose(t *testing.T) {
	rot := Rotate4(Vec3{0, 0, 1}, 90)
	trans := Translate4(Vec3{5, 0, 0})

	// Rotate first, then translate.
	m := trans.Mul4(rot)
	got := m.TransformPoint(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{5, 1, 0}, 1e-5) {
		t.Fatalf("expected composed transform to yield (5, 1, 0); got %v", got)
	}

	ident := Ident4()
	if got := ident.Mul4(ident); got != ident {
		t.Fatalf("expected identity product to remain identity; got %v", got)
	}
}

func TestIsRigid(t *testing.T) {
	cases := []struct {
		name  string
		m     Mat4
		rigid bool
	}{
		{"identity", Ident4(), true},
		{"translation", Translate4(Vec3{1, -2, 3}), true},
		{"rotation", Rotate4(Vec3{1, 1, 0}, 33), true},
		{"composed", Translate4(Vec3{1, 0, 0}).Mul4(Rotate4(Vec3{0, 1, 0}, 45)), true},
		{"scale", Mat4{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 1}, false},
		{"shear", Mat4{1, 0, 0, 0, 0.5, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, false},
	}

	for _, tc := range cases {
		if got := tc.m.IsRigid(); got != tc.rigid {
			t.Fatalf("%s: expected IsRigid=%t; got %t", tc.name, tc.rigid, got)
		}
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)

	got := q.Rotate(Vec3{1, 0, 0})
	if !vecNear(got, Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("expected quaternion rotation to yield (0, 0, -1); got %v", got)
	}

	if math32.Abs(q.Len()-1) > 1e-6 {
		t.Fatalf("expected unit quaternion; got length %f", q.Len())
	}
}
