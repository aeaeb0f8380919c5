package types

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Fatalf("expected sum (5, -3, 9); got %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Fatalf("expected difference (-3, 7, -3); got %v", got)
	}
	if got := a.Mul(2); got != (Vec3{2, 4, 6}) {
		t.Fatalf("expected scaled vector (2, 4, 6); got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Fatalf("expected dot product 12; got %f", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}

	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Fatalf("expected x cross y = z; got %v", got)
	}
	if got := y.Cross(x); got != (Vec3{0, 0, -1}) {
		t.Fatalf("expected y cross x = -z; got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}

	n := v.Normalize()
	if math32.Abs(n.Len()-1) > 1e-6 {
		t.Fatalf("expected unit length; got %f", n.Len())
	}
	if math32.Abs(n[0]-0.6) > 1e-6 || math32.Abs(n[2]-0.8) > 1e-6 {
		t.Fatalf("expected (0.6, 0, 0.8); got %v", n)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Fatalf("expected zero vector to normalize to zero; got %v", got)
	}
}

func TestMinMaxVec3(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -4, 0}

	if got := MinVec3(a, b); got != (Vec3{1, -4, -2}) {
		t.Fatalf("expected component min (1, -4, -2); got %v", got)
	}
	if got := MaxVec3(a, b); got != (Vec3{3, 5, 0}) {
		t.Fatalf("expected component max (3, 5, 0); got %v", got)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 1}
	b := Vec2{1, 0}

	mid := a.Mul(0.5).Add(b.Mul(0.5))
	if math32.Abs(mid[0]-0.5) > 1e-6 || math32.Abs(mid[1]-0.5) > 1e-6 {
		t.Fatalf("expected midpoint (0.5, 0.5); got %v", mid)
	}
}
