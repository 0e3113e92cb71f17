package physics

import "math"

// CircleShape is a circle with a local-frame center position. Unlike the
// polygonal variants its radius is the geometry itself, not a skin around it.
type CircleShape struct {
	shapeBase

	// Position of the center in the local frame.
	Position Vec2
}

func MakeCircleShape(radius float64) CircleShape {
	return CircleShape{
		shapeBase: shapeBase{
			shapeType: CircleType,
			radius:    radius,
		},
		Position: MakeVec2(0, 0),
	}
}

func NewCircleShape(radius float64) *CircleShape {
	res := MakeCircleShape(radius)
	return &res
}

func (circle *CircleShape) ChildCount() int {
	return 1
}

func (circle *CircleShape) Clone() Shape {
	clone := *circle
	return &clone
}

// Equals includes the radius: for a circle it is the geometry, not a skin.
func (circle *CircleShape) Equals(other Shape) bool {
	o, ok := other.(*CircleShape)
	if !ok {
		return false
	}

	return circle.Position == o.Position && circle.radius == o.radius
}

func (circle *CircleShape) CalculateLocalBounds(rotation Rot) AABB {
	p := RotVec2Mul(rotation, circle.Position)
	r := MakeVec2(circle.radius, circle.radius)

	return MakeAABBFromBounds(Vec2Sub(p, r), Vec2Add(p, r))
}

func (circle *CircleShape) Intersects(worldAABB AABB, worldPos Vec2, worldRot Rot) bool {
	bounds := circle.CalculateLocalBounds(worldRot).Translate(worldPos)
	return bounds.Intersects(worldAABB)
}

func (circle *CircleShape) ComputeAABB(xf Transform, childIndex int) AABB {
	Assert(childIndex == 0)

	p := TransformVec2Mul(xf, circle.Position)
	r := MakeVec2(circle.radius, circle.radius)

	return MakeAABBFromBounds(Vec2Sub(p, r), Vec2Add(p, r))
}

func (circle *CircleShape) CalculateArea() float64 {
	return Pi * circle.radius * circle.radius
}

// Collision Detection in Interactive 3D Environments by Gino van den Bergen
// From Section 3.1.2
// x = s + a * r
// norm(x) = radius
func (circle *CircleShape) RayCast(output *RayCastOutput, input RayCastInput, xf Transform, childIndex int) bool {
	Assert(childIndex == 0)

	position := TransformVec2Mul(xf, circle.Position)
	s := Vec2Sub(input.P1, position)
	b := Vec2Dot(s, s) - circle.radius*circle.radius

	// Solve quadratic equation.
	r := Vec2Sub(input.P2, input.P1)
	c := Vec2Dot(s, r)
	rr := Vec2Dot(r, r)
	sigma := c*c - rr*b

	// Check for negative discriminant and short segment.
	if sigma < 0.0 || rr < Epsilon {
		return false
	}

	// Find the point of intersection of the line with the circle.
	a := -(c + math.Sqrt(sigma))

	// Is the intersection point on the segment?
	if 0.0 <= a && a <= input.MaxFraction*rr {
		a /= rr
		output.Fraction = a
		output.Normal = Vec2Add(s, Vec2MulScalar(a, r))
		output.Normal.Normalize()
		return true
	}

	return false
}

// ApplyState is a no-op: position and radius are both transmitted directly.
func (circle *CircleShape) ApplyState() {}
