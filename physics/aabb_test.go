package physics_test

import (
	"testing"

	"github.com/pointer-to-null/RobustToolbox/physics"
)

func TestAABBCenterExtentsPerimeter(t *testing.T) {
	bb := physics.MakeAABBFromBounds(physics.MakeVec2(-1, -2), physics.MakeVec2(3, 4))

	if got := bb.GetCenter(); got != physics.MakeVec2(1, 1) {
		t.Fatalf("center = %v", got)
	}
	if got := bb.GetExtents(); got != physics.MakeVec2(2, 3) {
		t.Fatalf("extents = %v", got)
	}
	if got := bb.GetPerimeter(); got != 20 {
		t.Fatalf("perimeter = %v", got)
	}
}

func TestAABBTranslate(t *testing.T) {
	bb := physics.MakeAABBFromBounds(physics.MakeVec2(0, 0), physics.MakeVec2(1, 1))

	moved := bb.Translate(physics.MakeVec2(5, -3))

	if moved.LowerBound != physics.MakeVec2(5, -3) || moved.UpperBound != physics.MakeVec2(6, -2) {
		t.Fatalf("moved = %v/%v", moved.LowerBound, moved.UpperBound)
	}
	if bb.LowerBound != physics.MakeVec2(0, 0) {
		t.Fatal("Translate must not mutate the receiver")
	}
}

func TestAABBIntersects(t *testing.T) {
	base := physics.MakeAABBFromBounds(physics.MakeVec2(0, 0), physics.MakeVec2(2, 2))

	cases := []struct {
		name  string
		other physics.AABB
		want  bool
	}{
		{"overlapping", physics.MakeAABBFromBounds(physics.MakeVec2(1, 1), physics.MakeVec2(3, 3)), true},
		{"contained", physics.MakeAABBFromBounds(physics.MakeVec2(0.5, 0.5), physics.MakeVec2(1.5, 1.5)), true},
		{"touching edge", physics.MakeAABBFromBounds(physics.MakeVec2(2, 0), physics.MakeVec2(4, 2)), true},
		{"disjoint x", physics.MakeAABBFromBounds(physics.MakeVec2(3, 0), physics.MakeVec2(4, 2)), false},
		{"disjoint y", physics.MakeAABBFromBounds(physics.MakeVec2(0, -4), physics.MakeVec2(2, -1)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Fatalf("intersects = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.other.Intersects(base); got != tc.want {
				t.Fatalf("reverse intersects = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAABBContains(t *testing.T) {
	outer := physics.MakeAABBFromBounds(physics.MakeVec2(0, 0), physics.MakeVec2(10, 10))
	inner := physics.MakeAABBFromBounds(physics.MakeVec2(2, 2), physics.MakeVec2(8, 8))

	if !outer.Contains(inner) {
		t.Fatal("outer must contain inner")
	}
	if inner.Contains(outer) {
		t.Fatal("inner must not contain outer")
	}
}

func TestAABBCombineInPlace(t *testing.T) {
	bb := physics.MakeAABBFromBounds(physics.MakeVec2(0, 0), physics.MakeVec2(1, 1))
	bb.CombineInPlace(physics.MakeAABBFromBounds(physics.MakeVec2(-2, 0.5), physics.MakeVec2(0.5, 3)))

	if bb.LowerBound != physics.MakeVec2(-2, 0) || bb.UpperBound != physics.MakeVec2(1, 3) {
		t.Fatalf("combined = %v/%v", bb.LowerBound, bb.UpperBound)
	}
}

func TestAABBIsValid(t *testing.T) {
	if !physics.MakeAABBFromBounds(physics.MakeVec2(0, 0), physics.MakeVec2(1, 1)).IsValid() {
		t.Fatal("well-formed box must be valid")
	}
	if physics.MakeAABBFromBounds(physics.MakeVec2(1, 1), physics.MakeVec2(0, 0)).IsValid() {
		t.Fatal("inverted box must be invalid")
	}
}
