package physics

// ShapeType discriminates the concrete shape variants. It is stable and used
// for serialization dispatch, so new kinds must only be appended.
type ShapeType uint8

const (
	CircleType ShapeType = iota
	EdgeType
	PolygonType
	ChainType

	shapeTypeCount
)

func (t ShapeType) String() string {
	switch t {
	case CircleType:
		return "circle"
	case EdgeType:
		return "edge"
	case PolygonType:
		return "polygon"
	case ChainType:
		return "chain"
	}
	return "unknown"
}

// Shape is the capability set every collision-shape variant implements. A
// shape is pure local geometry owned by a fixture; it never reaches back into
// the engine. Read operations are safe for concurrent use as long as no
// writer runs at the same time.
type Shape interface {
	// Type returns the variant discriminant, used for serialization and
	// dispatch.
	Type() ShapeType

	// ChildCount returns the number of independently-queryable sub-shapes.
	// Callers must pass a child index in [0, ChildCount) to ComputeAABB and
	// RayCast.
	ChildCount() int

	// Radius is the rounding margin applied uniformly around the core
	// geometry when computing collision bounds.
	Radius() float64

	// SetRadius assigns the rounding margin. Values within tolerance of the
	// current radius are ignored so no-op writes cause no downstream
	// recomputation.
	SetRadius(radius float64)

	// Clone returns a deep copy of the concrete shape.
	Clone() Shape

	// Equals is the structural geometry equality used to suppress redundant
	// state broadcasts. It is not a full-value comparison; see the concrete
	// variants for the fields they exclude.
	Equals(other Shape) bool

	// Intersects is the broad-phase accept/reject test: does this shape,
	// placed at the given world position and rotation, overlap the query box.
	Intersects(worldAABB AABB, worldPos Vec2, worldRot Rot) bool

	// CalculateLocalBounds returns the bounding box in the shape's local
	// frame for a hypothetical rotation, without translation.
	CalculateLocalBounds(rotation Rot) AABB

	// ComputeAABB returns the world-space bounding box of one indexed child
	// under the given transform. This is the authoritative bounds used by
	// broad-phase.
	ComputeAABB(xf Transform, childIndex int) AABB

	// CalculateArea returns the planar area, consumed by mass-property
	// computation. Degenerate shapes (edges, chains) report zero and
	// contribute no area-weighted mass.
	CalculateArea() float64

	// RayCast casts a ray against one indexed child.
	RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool

	// ApplyState recomputes derived fields after external state has been
	// assigned, e.g. from a replicated snapshot. Variants with no derived
	// fields implement it as a no-op.
	ApplyState()
}

var (
	_ Shape = (*CircleShape)(nil)
	_ Shape = (*EdgeShape)(nil)
	_ Shape = (*PolygonShape)(nil)
	_ Shape = (*ChainShape)(nil)
)

// shapeBase carries the fields shared by every variant.
type shapeBase struct {
	shapeType ShapeType
	radius    float64
}

func (s *shapeBase) Type() ShapeType {
	return s.shapeType
}

func (s *shapeBase) Radius() float64 {
	return s.radius
}

func (s *shapeBase) SetRadius(radius float64) {
	if CloseToPercent(s.radius, radius, radiusChangeTolerance) {
		return
	}

	s.radius = radius
}
