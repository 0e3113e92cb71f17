package physics_test

import (
	"testing"

	"github.com/pointer-to-null/RobustToolbox/physics"
)

func chainVertices() []physics.Vec2 {
	return []physics.Vec2{
		physics.MakeVec2(0, 0),
		physics.MakeVec2(1, 1),
		physics.MakeVec2(2, 0),
		physics.MakeVec2(3, 1),
	}
}

func TestChainChildCount(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())

	if got := chain.ChildCount(); got != 3 {
		t.Fatalf("child count = %d, want 3", got)
	}
}

func TestChainChildEdgeGhostWiring(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())

	var edge physics.EdgeShape

	// First segment: no previous neighbour, next vertex is a ghost.
	chain.ChildEdge(&edge, 0)
	if edge.HasVertex0 {
		t.Fatal("first child must have no leading ghost")
	}
	if !edge.HasVertex3 || edge.Vertex3 != physics.MakeVec2(2, 0) {
		t.Fatalf("first child trailing ghost = %v/%v", edge.HasVertex3, edge.Vertex3)
	}
	if !edge.OneSided() {
		t.Fatal("boundary child must be one-sided")
	}

	// Interior segment: ghosts on both sides, therefore two-sided.
	chain.ChildEdge(&edge, 1)
	if !edge.HasVertex0 || edge.Vertex0 != physics.MakeVec2(0, 0) {
		t.Fatalf("interior child leading ghost = %v/%v", edge.HasVertex0, edge.Vertex0)
	}
	if !edge.HasVertex3 || edge.Vertex3 != physics.MakeVec2(3, 1) {
		t.Fatalf("interior child trailing ghost = %v/%v", edge.HasVertex3, edge.Vertex3)
	}
	if edge.OneSided() {
		t.Fatal("interior child must be two-sided")
	}

	// Last segment: stale flags from the previous query must be overwritten.
	chain.ChildEdge(&edge, 2)
	if edge.HasVertex3 {
		t.Fatal("last child must have no trailing ghost")
	}
	if !edge.HasVertex0 {
		t.Fatal("last child must keep its leading ghost")
	}
}

func TestChainConnectivityToNeighbours(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())
	chain.SetPrevVertex(physics.MakeVec2(-1, 0))
	chain.SetNextVertex(physics.MakeVec2(4, 0))

	var edge physics.EdgeShape

	chain.ChildEdge(&edge, 0)
	if !edge.HasVertex0 || edge.Vertex0 != physics.MakeVec2(-1, 0) {
		t.Fatalf("first child must inherit the chain's prev vertex, got %v/%v",
			edge.HasVertex0, edge.Vertex0)
	}

	chain.ChildEdge(&edge, 2)
	if !edge.HasVertex3 || edge.Vertex3 != physics.MakeVec2(4, 0) {
		t.Fatalf("last child must inherit the chain's next vertex, got %v/%v",
			edge.HasVertex3, edge.Vertex3)
	}
}

func TestChainLoopIsFullyInterior(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateLoop([]physics.Vec2{
		physics.MakeVec2(-1, 3),
		physics.MakeVec2(1, 3),
		physics.MakeVec2(1, 5),
		physics.MakeVec2(-1, 5),
	})

	// The loop closes on itself: 4 input vertices become 4 edges.
	if got := chain.ChildCount(); got != 4 {
		t.Fatalf("loop child count = %d, want 4", got)
	}

	var edge physics.EdgeShape
	for i := 0; i < chain.ChildCount(); i++ {
		chain.ChildEdge(&edge, i)
		if edge.OneSided() {
			t.Fatalf("loop child %d must be two-sided", i)
		}
	}
}

func TestChainComputeAABBMatchesChildEdge(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())

	xf := physics.MakeTransform()
	xf.Set(physics.MakeVec2(5, -2), 0.3)

	var edge physics.EdgeShape
	for i := 0; i < chain.ChildCount(); i++ {
		chain.ChildEdge(&edge, i)

		if got, want := chain.ComputeAABB(xf, i), edge.ComputeAABB(xf, 0); got != want {
			t.Fatalf("child %d aabb = %v, child edge aabb = %v", i, got, want)
		}
	}
}

func TestChainChildIndexAssert(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range child index")
		}
	}()

	chain.ComputeAABB(physics.MakeTransform(), 3)
}

func TestChainCalculateArea(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain(chainVertices())

	if area := chain.CalculateArea(); area != 0.0 {
		t.Fatalf("chain area = %v, want 0", area)
	}
}

func TestChainEquals(t *testing.T) {
	a := physics.MakeChainShape()
	a.CreateChain(chainVertices())
	b := physics.MakeChainShape()
	b.CreateChain(chainVertices())

	if !a.Equals(&b) {
		t.Fatal("identical chains must be equal")
	}

	b.SetNextVertex(physics.MakeVec2(4, 0))
	if a.Equals(&b) {
		t.Fatal("connectivity difference must break equality")
	}
}

func TestChainRayCastChild(t *testing.T) {
	chain := physics.MakeChainShape()
	chain.CreateChain([]physics.Vec2{
		physics.MakeVec2(0, 0),
		physics.MakeVec2(10, 0),
		physics.MakeVec2(10, 10),
	})

	input := physics.RayCastInput{
		P1:          physics.MakeVec2(5, -1),
		P2:          physics.MakeVec2(5, 1),
		MaxFraction: 1.0,
	}

	var output physics.RayCastOutput
	if !chain.RayCast(&output, input, physics.MakeTransform(), 0) {
		t.Fatal("ray through the first segment must hit")
	}
	if output.Fraction != 0.5 {
		t.Fatalf("fraction = %v, want 0.5", output.Fraction)
	}

	// The same ray misses the vertical second segment.
	if chain.RayCast(&output, input, physics.MakeTransform(), 1) {
		t.Fatal("ray must miss the second segment")
	}
}
