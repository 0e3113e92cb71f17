package physics

// PolygonShape is a convex polygon. The interior of the polygon is to the
// left of each edge, so vertices must be supplied in counter-clockwise order.
// Polygons have a maximum number of vertices equal to MaxPolygonVertices.
type PolygonShape struct {
	shapeBase

	// Vertices in the local frame, counter-clockwise.
	Vertices []Vec2

	// Normals holds the outward normal of the edge leaving each vertex.
	// Derived from Vertices; recomputed by ApplyState.
	Normals []Vec2

	// Centroid of the polygon, derived from Vertices.
	Centroid Vec2
}

func MakePolygonShape() PolygonShape {
	return PolygonShape{
		shapeBase: shapeBase{
			shapeType: PolygonType,
			radius:    PolygonRadius,
		},
		Centroid: MakeVec2(0, 0),
	}
}

func NewPolygonShape() *PolygonShape {
	res := MakePolygonShape()
	return &res
}

// Set replaces the polygon's vertices. The input must already be a convex
// counter-clockwise winding; no hull is computed.
func (poly *PolygonShape) Set(vertices []Vec2) {
	Assert(3 <= len(vertices) && len(vertices) <= MaxPolygonVertices)

	for i := 1; i < len(vertices); i++ {
		// If this trips, the vertices are too close together.
		Assert(Vec2DistanceSquared(vertices[i-1], vertices[i]) > LinearSlop*LinearSlop)
	}

	poly.Vertices = make([]Vec2, len(vertices))
	copy(poly.Vertices, vertices)

	poly.recompute()
}

// SetAsBox builds an axis-aligned box with the given half-widths, centered on
// the local origin.
func (poly *PolygonShape) SetAsBox(hx, hy float64) {
	poly.Vertices = []Vec2{
		MakeVec2(-hx, -hy),
		MakeVec2(hx, -hy),
		MakeVec2(hx, hy),
		MakeVec2(-hx, hy),
	}
	poly.Normals = []Vec2{
		MakeVec2(0.0, -1.0),
		MakeVec2(1.0, 0.0),
		MakeVec2(0.0, 1.0),
		MakeVec2(-1.0, 0.0),
	}
	poly.Centroid.SetZero()
}

func (poly *PolygonShape) ChildCount() int {
	return 1
}

func (poly *PolygonShape) Clone() Shape {
	clone := MakePolygonShape()
	clone.radius = poly.radius
	clone.Vertices = make([]Vec2, len(poly.Vertices))
	copy(clone.Vertices, poly.Vertices)
	clone.Normals = make([]Vec2, len(poly.Normals))
	copy(clone.Normals, poly.Normals)
	clone.Centroid = poly.Centroid

	return &clone
}

// Equals compares the vertex list only; Normals and Centroid are derived and
// the radius is a skin, not geometry.
func (poly *PolygonShape) Equals(other Shape) bool {
	o, ok := other.(*PolygonShape)
	if !ok {
		return false
	}

	if len(poly.Vertices) != len(o.Vertices) {
		return false
	}

	for i := range poly.Vertices {
		if poly.Vertices[i] != o.Vertices[i] {
			return false
		}
	}

	return true
}

func (poly *PolygonShape) CalculateLocalBounds(rotation Rot) AABB {
	Assert(len(poly.Vertices) > 0)

	lower := RotVec2Mul(rotation, poly.Vertices[0])
	upper := lower

	for i := 1; i < len(poly.Vertices); i++ {
		v := RotVec2Mul(rotation, poly.Vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	r := MakeVec2(poly.radius, poly.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

func (poly *PolygonShape) Intersects(worldAABB AABB, worldPos Vec2, worldRot Rot) bool {
	bounds := poly.CalculateLocalBounds(worldRot).Translate(worldPos)
	return bounds.Intersects(worldAABB)
}

func (poly *PolygonShape) ComputeAABB(xf Transform, childIndex int) AABB {
	Assert(childIndex == 0)
	Assert(len(poly.Vertices) > 0)

	lower := TransformVec2Mul(xf, poly.Vertices[0])
	upper := lower

	for i := 1; i < len(poly.Vertices); i++ {
		v := TransformVec2Mul(xf, poly.Vertices[i])
		lower = Vec2Min(lower, v)
		upper = Vec2Max(upper, v)
	}

	r := MakeVec2(poly.radius, poly.radius)
	return MakeAABBFromBounds(Vec2Sub(lower, r), Vec2Add(upper, r))
}

// CalculateArea integrates the signed triangle fan about the origin. The
// result is positive for a counter-clockwise winding.
func (poly *PolygonShape) CalculateArea() float64 {
	area := 0.0
	for i := range poly.Vertices {
		v1 := poly.Vertices[i]
		v2 := poly.Vertices[(i+1)%len(poly.Vertices)]
		area += Vec2Cross(v1, v2)
	}

	return 0.5 * area
}

func (poly *PolygonShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(childIndex == 0)

	// Put the ray into the polygon's frame of reference.
	p1 := RotVec2MulT(xf.Q, Vec2Sub(input.P1, xf.P))
	p2 := RotVec2MulT(xf.Q, Vec2Sub(input.P2, xf.P))
	d := Vec2Sub(p2, p1)

	lower := 0.0
	upper := input.MaxFraction

	index := -1

	for i := range poly.Vertices {
		// p = p1 + a * d
		// dot(normal, p - v) = 0
		// dot(normal, p1 - v) + a * dot(normal, d) = 0
		numerator := Vec2Dot(poly.Normals[i], Vec2Sub(poly.Vertices[i], p1))
		denominator := Vec2Dot(poly.Normals[i], d)

		if denominator == 0.0 {
			if numerator < 0.0 {
				return false
			}
		} else {
			// Note: we want this predicate without division:
			// lower < numerator / denominator, where denominator < 0
			// Since denominator < 0, we have to flip the inequality:
			// lower < numerator / denominator <==> denominator * lower > numerator.
			if denominator < 0.0 && numerator < lower*denominator {
				// The segment enters this half-space.
				lower = numerator / denominator
				index = i
			} else if denominator > 0.0 && numerator < upper*denominator {
				// The segment exits this half-space.
				upper = numerator / denominator
			}
		}

		if upper < lower {
			return false
		}
	}

	Assert(0.0 <= lower && lower <= input.MaxFraction)

	if index >= 0 {
		output.Fraction = lower
		output.Normal = RotVec2Mul(xf.Q, poly.Normals[index])
		return true
	}

	return false
}

// ApplyState rebuilds the normals and the centroid after the vertex list has
// been assigned from a snapshot. Only the vertices travel over the wire.
func (poly *PolygonShape) ApplyState() {
	poly.recompute()
}

func (poly *PolygonShape) recompute() {
	n := len(poly.Vertices)
	poly.Normals = make([]Vec2, n)

	for i := 0; i < n; i++ {
		i2 := (i + 1) % n
		edge := Vec2Sub(poly.Vertices[i2], poly.Vertices[i])
		Assert(edge.LengthSquared() > Epsilon*Epsilon)

		normal := Vec2CrossVectorScalar(edge, 1.0)
		normal.Normalize()
		poly.Normals[i] = normal
	}

	poly.Centroid = computeCentroid(poly.Vertices)
}

func computeCentroid(vertices []Vec2) Vec2 {
	c := MakeVec2(0, 0)
	area := 0.0
	const inv3 = 1.0 / 3.0

	for i := range vertices {
		p2 := vertices[i]
		p3 := vertices[(i+1)%len(vertices)]

		triangleArea := 0.5 * Vec2Cross(p2, p3)
		area += triangleArea

		// Area-weighted centroid.
		c = Vec2Add(c, Vec2MulScalar(triangleArea*inv3, Vec2Add(p2, p3)))
	}

	Assert(area > Epsilon)
	return Vec2MulScalar(1.0/area, c)
}
