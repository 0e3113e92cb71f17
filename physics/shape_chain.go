package physics

// ChainShape is a free-form sequence of line segments with two-sided
// collision. Connectivity information is used to create smooth collisions
// across segment boundaries.
// WARNING: the chain will not collide properly if there are self-intersections.
type ChainShape struct {
	shapeBase

	// The chain vertices.
	Vertices []Vec2

	// Ghost vertices before the first and after the last vertex, used to
	// smooth collision against neighbouring chains.
	PrevVertex, NextVertex       Vec2
	HasPrevVertex, HasNextVertex bool
}

func MakeChainShape() ChainShape {
	return ChainShape{
		shapeBase: shapeBase{
			shapeType: ChainType,
			radius:    PolygonRadius,
		},
	}
}

func NewChainShape() *ChainShape {
	res := MakeChainShape()
	return &res
}

// CreateChain builds an open chain with isolated end vertices.
func (chain *ChainShape) CreateChain(vertices []Vec2) {
	Assert(chain.Vertices == nil)
	Assert(len(vertices) >= 2)

	for i := 1; i < len(vertices); i++ {
		// If this trips, the vertices are too close together.
		Assert(Vec2DistanceSquared(vertices[i-1], vertices[i]) > LinearSlop*LinearSlop)
	}

	chain.Vertices = make([]Vec2, len(vertices))
	copy(chain.Vertices, vertices)

	chain.HasPrevVertex = false
	chain.HasNextVertex = false
	chain.PrevVertex.SetZero()
	chain.NextVertex.SetZero()
}

// CreateLoop builds a closed loop; the first vertex is duplicated at the end
// and both ghost vertices are wired so every edge is an interior link.
func (chain *ChainShape) CreateLoop(vertices []Vec2) {
	Assert(chain.Vertices == nil)
	Assert(len(vertices) >= 3)

	for i := 1; i < len(vertices); i++ {
		Assert(Vec2DistanceSquared(vertices[i-1], vertices[i]) > LinearSlop*LinearSlop)
	}

	chain.Vertices = make([]Vec2, len(vertices)+1)
	copy(chain.Vertices, vertices)
	chain.Vertices[len(vertices)] = chain.Vertices[0]

	chain.PrevVertex = chain.Vertices[len(chain.Vertices)-2]
	chain.NextVertex = chain.Vertices[1]
	chain.HasPrevVertex = true
	chain.HasNextVertex = true
}

// SetPrevVertex establishes connectivity to a previous chain.
func (chain *ChainShape) SetPrevVertex(prevVertex Vec2) {
	chain.PrevVertex = prevVertex
	chain.HasPrevVertex = true
}

// SetNextVertex establishes connectivity to a next chain.
func (chain *ChainShape) SetNextVertex(nextVertex Vec2) {
	chain.NextVertex = nextVertex
	chain.HasNextVertex = true
}

// ChildCount returns the edge count: vertex count - 1.
func (chain *ChainShape) ChildCount() int {
	return len(chain.Vertices) - 1
}

// ChildEdge populates edge with the indexed segment, including the adjacency
// vertices that make contact normals smooth across the chain.
func (chain *ChainShape) ChildEdge(edge *EdgeShape, index int) {
	Assert(0 <= index && index < chain.ChildCount())

	edge.shapeType = EdgeType
	edge.radius = chain.radius

	edge.Vertex1 = chain.Vertices[index+0]
	edge.Vertex2 = chain.Vertices[index+1]

	if index > 0 {
		edge.Vertex0 = chain.Vertices[index-1]
		edge.HasVertex0 = true
	} else {
		edge.Vertex0 = chain.PrevVertex
		edge.HasVertex0 = chain.HasPrevVertex
	}

	if index < chain.ChildCount()-1 {
		edge.Vertex3 = chain.Vertices[index+2]
		edge.HasVertex3 = true
	} else {
		edge.Vertex3 = chain.NextVertex
		edge.HasVertex3 = chain.HasNextVertex
	}
}

func (chain *ChainShape) Clone() Shape {
	clone := MakeChainShape()
	clone.radius = chain.radius
	if chain.Vertices != nil {
		clone.Vertices = make([]Vec2, len(chain.Vertices))
		copy(clone.Vertices, chain.Vertices)
	}
	clone.PrevVertex = chain.PrevVertex
	clone.NextVertex = chain.NextVertex
	clone.HasPrevVertex = chain.HasPrevVertex
	clone.HasNextVertex = chain.HasNextVertex

	return &clone
}

// Equals compares the vertex sequence and the adjacency data, mirroring the
// edge variant's geometry-only semantics.
func (chain *ChainShape) Equals(other Shape) bool {
	o, ok := other.(*ChainShape)
	if !ok {
		return false
	}

	if len(chain.Vertices) != len(o.Vertices) {
		return false
	}

	for i := range chain.Vertices {
		if chain.Vertices[i] != o.Vertices[i] {
			return false
		}
	}

	return chain.HasPrevVertex == o.HasPrevVertex &&
		chain.HasNextVertex == o.HasNextVertex &&
		chain.PrevVertex == o.PrevVertex &&
		chain.NextVertex == o.NextVertex
}

func (chain *ChainShape) CalculateLocalBounds(rotation Rot) AABB {
	Assert(len(chain.Vertices) >= 2)

	lower := RotVec2Mul(rotation, chain.Vertices[0])
	upper := lower

	for i := 1; i < len(chain.Vertices); i++ {
		v := RotVec2Mul(rotation, chain.Vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	r := MakeVec2(chain.radius, chain.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

func (chain *ChainShape) Intersects(worldAABB AABB, worldPos Vec2, worldRot Rot) bool {
	bounds := chain.CalculateLocalBounds(worldRot).Translate(worldPos)
	return bounds.Intersects(worldAABB)
}

// ComputeAABB bounds one indexed segment, matching the AABB its child edge
// would report.
func (chain *ChainShape) ComputeAABB(xf Transform, childIndex int) AABB {
	Assert(0 <= childIndex && childIndex < chain.ChildCount())

	v1 := TransformVec2Mul(xf, chain.Vertices[childIndex])
	v2 := TransformVec2Mul(xf, chain.Vertices[childIndex+1])

	lower := Vec2Min(v1, v2)
	upper := Vec2Max(v1, v2)

	r := MakeVec2(chain.radius, chain.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

// CalculateArea returns zero; a chain is a sequence of segments with no
// planar extent.
func (chain *ChainShape) CalculateArea() float64 {
	return 0.0
}

func (chain *ChainShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(0 <= childIndex && childIndex < chain.ChildCount())

	edge := EdgeShape{
		shapeBase: shapeBase{
			shapeType: EdgeType,
			radius:    chain.radius,
		},
	}
	edge.Vertex1 = chain.Vertices[childIndex]
	edge.Vertex2 = chain.Vertices[childIndex+1]

	return edge.RayCast(output, input, xf, 0)
}

// ApplyState is a no-op: the vertex sequence and ghost data are transmitted
// in full.
func (chain *ChainShape) ApplyState() {}
