package physics

// EdgeShape is a line segment. Edges can be connected in chains or loops to
// other edge shapes; the optional adjacency (ghost) vertices are used by the
// chain-smoothing logic to ensure correct contact normals across connected
// segments.
type EdgeShape struct {
	shapeBase

	// The edge vertices.
	Vertex1, Vertex2 Vec2

	// Optional adjacent ghost vertices, meaningful only while the matching
	// flag is set. Chain construction writes these fields directly.
	Vertex0, Vertex3       Vec2
	HasVertex0, HasVertex3 bool

	// Cached geometric center, defaulted to the origin. No operation
	// recomputes it yet.
	Centroid Vec2
}

// MakeEdgeShape constructs an isolated two-ended edge with the engine-wide
// default rounding radius.
func MakeEdgeShape(start, end Vec2) EdgeShape {
	edge := EdgeShape{
		shapeBase: shapeBase{
			shapeType: EdgeType,
			radius:    PolygonRadius,
		},
	}
	edge.Set(start, end)

	return edge
}

func NewEdgeShape(start, end Vec2) *EdgeShape {
	res := MakeEdgeShape(start, end)
	return &res
}

// Set re-initializes this shape as an isolated segment. Any adjacency data
// from a previous chain link is discarded.
func (edge *EdgeShape) Set(start, end Vec2) {
	edge.Vertex1 = start
	edge.Vertex2 = end
	edge.HasVertex0 = false
	edge.HasVertex3 = false
	// TODO: recompute Centroid here once edge centroid semantics are settled.
}

// OneSided reports whether this edge is an exposed boundary. An edge with
// both ghost vertices present is an interior link of a smooth chain and
// collides from both sides.
func (edge *EdgeShape) OneSided() bool {
	return !(edge.HasVertex0 && edge.HasVertex3)
}

func (edge *EdgeShape) ChildCount() int {
	return 1
}

func (edge *EdgeShape) Clone() Shape {
	clone := *edge
	return &clone
}

// Equals compares the segment and adjacency geometry only. Radius and
// Centroid are deliberately excluded: equality answers "does the replicated
// geometry differ", not "are the values identical".
func (edge *EdgeShape) Equals(other Shape) bool {
	o, ok := other.(*EdgeShape)
	if !ok {
		return false
	}

	return edge.HasVertex0 == o.HasVertex0 &&
		edge.HasVertex3 == o.HasVertex3 &&
		edge.Vertex0 == o.Vertex0 &&
		edge.Vertex1 == o.Vertex1 &&
		edge.Vertex2 == o.Vertex2 &&
		edge.Vertex3 == o.Vertex3
}

// CalculateLocalBounds ignores the supplied rotation: the bounds come
// straight from the stored local vertices, inflated by the rounding radius on
// every side. Callers needing rotation-sensitive bounds must use ComputeAABB
// with a full transform.
func (edge *EdgeShape) CalculateLocalBounds(rotation Rot) AABB {
	lower := Vec2Min(edge.Vertex1, edge.Vertex2)
	upper := Vec2Max(edge.Vertex1, edge.Vertex2)

	r := MakeVec2(edge.radius, edge.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

func (edge *EdgeShape) Intersects(worldAABB AABB, worldPos Vec2, worldRot Rot) bool {
	bounds := edge.CalculateLocalBounds(worldRot).Translate(worldPos)
	return bounds.Intersects(worldAABB)
}

func (edge *EdgeShape) ComputeAABB(xf Transform, childIndex int) AABB {
	Assert(childIndex == 0)

	v1 := TransformVec2Mul(xf, edge.Vertex1)
	v2 := TransformVec2Mul(xf, edge.Vertex2)

	lower := Vec2Min(v1, v2)
	upper := Vec2Max(v1, v2)

	r := MakeVec2(edge.radius, edge.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

// CalculateArea returns zero; a segment has no planar extent.
func (edge *EdgeShape) CalculateArea() float64 {
	return 0.0
}

// p = p1 + t * d
// v = v1 + s * e
// p1 + t * d = v1 + s * e
// s * e - t * d = p1 - v1
func (edge *EdgeShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(childIndex == 0)

	// Put the ray into the edge's frame of reference.
	p1 := RotVec2MulT(xf.Q, Vec2Sub(input.P1, xf.P))
	p2 := RotVec2MulT(xf.Q, Vec2Sub(input.P2, xf.P))
	d := Vec2Sub(p2, p1)

	v1 := edge.Vertex1
	v2 := edge.Vertex2
	e := Vec2Sub(v2, v1)
	normal := MakeVec2(e.Y, -e.X)
	normal.Normalize()

	// q = p1 + t * d
	// dot(normal, q - v1) = 0
	// dot(normal, p1 - v1) + t * dot(normal, d) = 0
	numerator := Vec2Dot(normal, Vec2Sub(v1, p1))
	denominator := Vec2Dot(normal, d)

	if denominator == 0.0 {
		return false
	}

	t := numerator / denominator
	if t < 0.0 || input.MaxFraction < t {
		return false
	}

	q := Vec2Add(p1, Vec2MulScalar(t, d))

	// q = v1 + s * r
	// s = dot(q - v1, r) / dot(r, r)
	r := Vec2Sub(v2, v1)
	rr := Vec2Dot(r, r)
	if rr == 0.0 {
		return false
	}

	s := Vec2Dot(Vec2Sub(q, v1), r) / rr
	if s < 0.0 || 1.0 < s {
		return false
	}

	output.Fraction = t
	if numerator > 0.0 {
		output.Normal = RotVec2Mul(xf.Q, normal).Negate()
	} else {
		output.Normal = RotVec2Mul(xf.Q, normal)
	}

	return true
}

// ApplyState is a no-op: every replicated field of an edge is authoritative
// state, nothing derived needs recomputation.
func (edge *EdgeShape) ApplyState() {}
