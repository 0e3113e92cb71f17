package physics

// RayCastInput holds the ray for a ray-cast query. The ray extends from P1
// to P1 + MaxFraction * (P2 - P1).
type RayCastInput struct {
	P1, P2      Vec2
	MaxFraction float64
}

// RayCastOutput is the result of a ray-cast query. The ray hits at
// p1 + fraction * (p2 - p1), where p1 and p2 come from RayCastInput.
type RayCastOutput struct {
	Normal   Vec2
	Fraction float64
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	LowerBound Vec2 // the lower left corner
	UpperBound Vec2 // the upper right corner
}

func MakeAABB() AABB {
	return AABB{
		LowerBound: MakeVec2(0, 0),
		UpperBound: MakeVec2(0, 0),
	}
}

// MakeAABBFromBounds constructs a box from its two corners.
func MakeAABBFromBounds(lower, upper Vec2) AABB {
	return AABB{
		LowerBound: lower,
		UpperBound: upper,
	}
}

// GetCenter returns the center of the AABB.
func (bb AABB) GetCenter() Vec2 {
	return Vec2MulScalar(0.5, Vec2Add(bb.LowerBound, bb.UpperBound))
}

// GetExtents returns the extents of the AABB (half-widths).
func (bb AABB) GetExtents() Vec2 {
	return Vec2MulScalar(0.5, Vec2Sub(bb.UpperBound, bb.LowerBound))
}

// GetPerimeter returns the perimeter length.
func (bb AABB) GetPerimeter() float64 {
	wx := bb.UpperBound.X - bb.LowerBound.X
	wy := bb.UpperBound.Y - bb.LowerBound.Y
	return 2.0 * (wx + wy)
}

// Translate returns this box shifted by the given offset.
func (bb AABB) Translate(offset Vec2) AABB {
	return MakeAABBFromBounds(
		Vec2Add(bb.LowerBound, offset),
		Vec2Add(bb.UpperBound, offset),
	)
}

// CombineInPlace grows this box to enclose the other one.
func (bb *AABB) CombineInPlace(aabb AABB) {
	bb.LowerBound = Vec2Min(bb.LowerBound, aabb.LowerBound)
	bb.UpperBound = Vec2Max(bb.UpperBound, aabb.UpperBound)
}

// Contains reports whether this box fully encloses the provided one.
func (bb AABB) Contains(aabb AABB) bool {
	return bb.LowerBound.X <= aabb.LowerBound.X &&
		bb.LowerBound.Y <= aabb.LowerBound.Y &&
		aabb.UpperBound.X <= bb.UpperBound.X &&
		aabb.UpperBound.Y <= bb.UpperBound.Y
}

// Intersects reports whether the two boxes overlap.
func (bb AABB) Intersects(other AABB) bool {
	d1 := Vec2Sub(other.LowerBound, bb.UpperBound)
	d2 := Vec2Sub(bb.LowerBound, other.UpperBound)

	if d1.X > 0.0 || d1.Y > 0.0 {
		return false
	}

	if d2.X > 0.0 || d2.Y > 0.0 {
		return false
	}

	return true
}

func (bb AABB) IsValid() bool {
	d := Vec2Sub(bb.UpperBound, bb.LowerBound)
	valid := d.X >= 0.0 && d.Y >= 0.0
	return valid && bb.LowerBound.IsValid() && bb.UpperBound.IsValid()
}
