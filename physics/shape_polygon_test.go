package physics_test

import (
	"testing"

	"github.com/pointer-to-null/RobustToolbox/physics"
)

func TestPolygonSetAsBox(t *testing.T) {
	poly := physics.MakePolygonShape()
	poly.SetAsBox(2, 1)

	if len(poly.Vertices) != 4 || len(poly.Normals) != 4 {
		t.Fatalf("vertex/normal count = %d/%d, want 4/4", len(poly.Vertices), len(poly.Normals))
	}
	if poly.Centroid != physics.MakeVec2(0, 0) {
		t.Fatalf("centroid = %v, want origin", poly.Centroid)
	}

	aabb := poly.ComputeAABB(physics.MakeTransform(), 0)
	wantLower := physics.MakeVec2(-2-physics.PolygonRadius, -1-physics.PolygonRadius)
	wantUpper := physics.MakeVec2(2+physics.PolygonRadius, 1+physics.PolygonRadius)
	if aabb.LowerBound != wantLower || aabb.UpperBound != wantUpper {
		t.Fatalf("aabb = %v/%v, want %v/%v", aabb.LowerBound, aabb.UpperBound, wantLower, wantUpper)
	}

	if got, want := poly.CalculateArea(), 8.0; got != want {
		t.Fatalf("area = %v, want %v", got, want)
	}
}

func TestPolygonSetDerivesNormalsAndCentroid(t *testing.T) {
	poly := physics.MakePolygonShape()
	poly.Set([]physics.Vec2{
		physics.MakeVec2(0, 0),
		physics.MakeVec2(1, 0),
		physics.MakeVec2(0, 1),
	})

	wantNormals := []physics.Vec2{
		physics.MakeVec2(0, -1), // bottom edge
	}
	if poly.Normals[0] != wantNormals[0] {
		t.Fatalf("normal[0] = %v, want %v", poly.Normals[0], wantNormals[0])
	}
	if poly.Normals[2] != physics.MakeVec2(-1, 0) {
		t.Fatalf("normal[2] = %v, want (-1,0)", poly.Normals[2])
	}

	if got, want := poly.CalculateArea(), 0.5; got != want {
		t.Fatalf("area = %v, want %v", got, want)
	}
	if poly.Centroid != physics.MakeVec2(1.0/3.0, 1.0/3.0) {
		t.Fatalf("centroid = %v, want (1/3, 1/3)", poly.Centroid)
	}
}

func TestPolygonEquals(t *testing.T) {
	a := physics.MakePolygonShape()
	a.SetAsBox(1, 1)
	b := physics.MakePolygonShape()
	b.SetAsBox(1, 1)

	if !a.Equals(&b) {
		t.Fatal("identical boxes must be equal")
	}

	b.SetRadius(1.0)
	if !a.Equals(&b) {
		t.Fatal("polygon skin radius must not participate in equality")
	}

	b.SetAsBox(1, 2)
	if a.Equals(&b) {
		t.Fatal("different boxes must not be equal")
	}
}

func TestPolygonApplyStateRebuildsDerivedFields(t *testing.T) {
	poly := physics.MakePolygonShape()
	poly.Set([]physics.Vec2{
		physics.MakeVec2(0, 0),
		physics.MakeVec2(1, 0),
		physics.MakeVec2(0, 1),
	})

	// Simulate a replicated vertex assignment: only Vertices travel.
	poly.Vertices = []physics.Vec2{
		physics.MakeVec2(-1, -1),
		physics.MakeVec2(1, -1),
		physics.MakeVec2(1, 1),
		physics.MakeVec2(-1, 1),
	}
	poly.ApplyState()

	if len(poly.Normals) != 4 {
		t.Fatalf("normals not rebuilt, count = %d", len(poly.Normals))
	}
	if poly.Normals[0] != physics.MakeVec2(0, -1) {
		t.Fatalf("normal[0] = %v, want (0,-1)", poly.Normals[0])
	}
	if poly.Centroid != physics.MakeVec2(0, 0) {
		t.Fatalf("centroid = %v, want origin", poly.Centroid)
	}
}

func TestPolygonRayCast(t *testing.T) {
	poly := physics.MakePolygonShape()
	poly.SetAsBox(1, 1)

	input := physics.RayCastInput{
		P1:          physics.MakeVec2(-3, 0),
		P2:          physics.MakeVec2(3, 0),
		MaxFraction: 1.0,
	}

	var output physics.RayCastOutput
	if !poly.RayCast(&output, input, physics.MakeTransform(), 0) {
		t.Fatal("ray through the box must hit")
	}
	if output.Fraction != 1.0/3.0 {
		t.Fatalf("fraction = %v, want 1/3", output.Fraction)
	}
	if output.Normal != physics.MakeVec2(-1, 0) {
		t.Fatalf("normal = %v, want (-1,0)", output.Normal)
	}
}

func TestPolygonChildIndexAssert(t *testing.T) {
	poly := physics.MakePolygonShape()
	poly.SetAsBox(1, 1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for child index 1")
		}
	}()

	poly.ComputeAABB(physics.MakeTransform(), 1)
}
