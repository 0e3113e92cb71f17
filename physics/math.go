package physics

import (
	"math"
)

// IsValidFloat reports whether x is neither NaN nor infinite.
func IsValidFloat(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CloseToPercent compares two floats within a relative tolerance. The epsilon
// scales with the larger magnitude so that big values are not held to an
// absolute threshold.
func CloseToPercent(a, b, tolerance float64) bool {
	epsilon := math.Max(math.Max(math.Abs(a), math.Abs(b))*tolerance, tolerance)
	return math.Abs(a-b) <= epsilon
}

// Vec2 is a 2D column vector.
type Vec2 struct {
	X, Y float64
}

func MakeVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func NewVec2(x, y float64) *Vec2 {
	res := MakeVec2(x, y)
	return &res
}

// Set this vector to some specified coordinates.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// SetZero sets this vector to all zeros.
func (v *Vec2) SetZero() {
	v.X = 0.0
	v.Y = 0.0
}

// Length returns the norm of this vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared avoids the square root of Length.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize converts this vector into a unit vector and returns the length.
func (v *Vec2) Normalize() float64 {
	length := v.Length()
	if length < Epsilon {
		return 0.0
	}

	invLength := 1.0 / length
	v.X *= invLength
	v.Y *= invLength

	return length
}

// IsValid reports whether this vector contains finite coordinates.
func (v Vec2) IsValid() bool {
	return IsValidFloat(v.X) && IsValidFloat(v.Y)
}

func (v Vec2) Negate() Vec2 {
	return MakeVec2(-v.X, -v.Y)
}

// Vec2Add adds two vectors component-wise.
func Vec2Add(a, b Vec2) Vec2 {
	return MakeVec2(a.X+b.X, a.Y+b.Y)
}

// Vec2Sub subtracts two vectors component-wise.
func Vec2Sub(a, b Vec2) Vec2 {
	return MakeVec2(a.X-b.X, a.Y-b.Y)
}

func Vec2MulScalar(s float64, a Vec2) Vec2 {
	return MakeVec2(s*a.X, s*a.Y)
}

// Vec2Dot performs the dot product on two vectors.
func Vec2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Vec2Cross performs the cross product on two vectors. In 2D this produces a
// scalar.
func Vec2Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Vec2CrossVectorScalar performs the cross product on a vector and a scalar.
// In 2D this produces a vector.
func Vec2CrossVectorScalar(a Vec2, s float64) Vec2 {
	return MakeVec2(s*a.Y, -s*a.X)
}

func Vec2Min(a, b Vec2) Vec2 {
	return MakeVec2(math.Min(a.X, b.X), math.Min(a.Y, b.Y))
}

func Vec2Max(a, b Vec2) Vec2 {
	return MakeVec2(math.Max(a.X, b.X), math.Max(a.Y, b.Y))
}

func Vec2Abs(a Vec2) Vec2 {
	return MakeVec2(math.Abs(a.X), math.Abs(a.Y))
}

func Vec2Distance(a, b Vec2) float64 {
	return Vec2Sub(a, b).Length()
}

func Vec2DistanceSquared(a, b Vec2) float64 {
	c := Vec2Sub(a, b)
	return Vec2Dot(c, c)
}

// Rot is a rotation, stored as a sine/cosine pair.
type Rot struct {
	S, C float64
}

// MakeRot returns the identity rotation.
func MakeRot() Rot {
	return Rot{S: 0.0, C: 1.0}
}

// MakeRotFromAngle initializes from an angle in radians.
func MakeRotFromAngle(angle float64) Rot {
	return Rot{
		S: math.Sin(angle),
		C: math.Cos(angle),
	}
}

// Set replaces the rotation using an angle in radians.
func (r *Rot) Set(angle float64) {
	r.S = math.Sin(angle)
	r.C = math.Cos(angle)
}

// SetIdentity sets to the identity rotation.
func (r *Rot) SetIdentity() {
	r.S = 0.0
	r.C = 1.0
}

// GetAngle returns the angle in radians.
func (r Rot) GetAngle() float64 {
	return math.Atan2(r.S, r.C)
}

// GetXAxis returns the rotated x-axis.
func (r Rot) GetXAxis() Vec2 {
	return MakeVec2(r.C, r.S)
}

// GetYAxis returns the rotated y-axis.
func (r Rot) GetYAxis() Vec2 {
	return MakeVec2(-r.S, r.C)
}

// RotMul multiplies two rotations: q * r.
func RotMul(q, r Rot) Rot {
	return Rot{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

// RotMulT transpose-multiplies two rotations: qT * r.
func RotMulT(q, r Rot) Rot {
	return Rot{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

// RotVec2Mul rotates a vector.
func RotVec2Mul(q Rot, v Vec2) Vec2 {
	return MakeVec2(
		q.C*v.X-q.S*v.Y,
		q.S*v.X+q.C*v.Y,
	)
}

// RotVec2MulT inverse-rotates a vector.
func RotVec2MulT(q Rot, v Vec2) Vec2 {
	return MakeVec2(
		q.C*v.X+q.S*v.Y,
		-q.S*v.X+q.C*v.Y,
	)
}

// Transform contains translation and rotation. It is used to represent the
// position and orientation of rigid frames.
type Transform struct {
	P Vec2
	Q Rot
}

// MakeTransform returns the identity transform.
func MakeTransform() Transform {
	return Transform{
		P: MakeVec2(0, 0),
		Q: MakeRot(),
	}
}

// MakeTransformFromPositionAndRotation initializes using a position vector
// and a rotation.
func MakeTransformFromPositionAndRotation(position Vec2, rotation Rot) Transform {
	return Transform{
		P: position,
		Q: rotation,
	}
}

// SetIdentity sets this to the identity transform.
func (t *Transform) SetIdentity() {
	t.P.SetZero()
	t.Q.SetIdentity()
}

// Set replaces this transform with the position and angle.
func (t *Transform) Set(position Vec2, angle float64) {
	t.P = position
	t.Q.Set(angle)
}

// TransformVec2Mul maps a local point into the transform's frame.
func TransformVec2Mul(t Transform, v Vec2) Vec2 {
	return MakeVec2(
		(t.Q.C*v.X-t.Q.S*v.Y)+t.P.X,
		(t.Q.S*v.X+t.Q.C*v.Y)+t.P.Y,
	)
}

// TransformVec2MulT maps a world point back into the transform's local frame.
func TransformVec2MulT(t Transform, v Vec2) Vec2 {
	px := v.X - t.P.X
	py := v.Y - t.P.Y

	return MakeVec2(
		t.Q.C*px+t.Q.S*py,
		-t.Q.S*px+t.Q.C*py,
	)
}

// TransformMul composes two transforms: A * B.
func TransformMul(a, b Transform) Transform {
	q := RotMul(a.Q, b.Q)
	p := Vec2Add(RotVec2Mul(a.Q, b.P), a.P)

	return MakeTransformFromPositionAndRotation(p, q)
}

// TransformMulT composes A^T * B.
func TransformMulT(a, b Transform) Transform {
	q := RotMulT(a.Q, b.Q)
	p := RotVec2MulT(a.Q, Vec2Sub(b.P, a.P))

	return MakeTransformFromPositionAndRotation(p, q)
}
