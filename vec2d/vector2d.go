// Package vec2d provides a mutable 2D column vector with float32 components
// for high-frequency geometry and physics-style computation.
//
// It resembles github.com/go-spatial/geom's Point but trades the float64
// precision for a smaller footprint and an API that makes allocation
// behavior visible at the call site: methods carrying the Local suffix
// (and the Set family) mutate the receiver and return it for chaining,
// every other arithmetic method allocates a new vector and leaves its
// operands unchanged. Conversion to and from geom.Point happens only at
// the boundary and truncates float64 ordinates to float32 on the way in.
package vec2d

import (
	"fmt"
	"math"

	"github.com/go-spatial/geom"

	"github.com/pdok/vec2d/floathelp"
)

// Vector2D is a 2D column vector with float32 components.
// The zero value is the zero vector and ready to use.
// The fields may be assigned directly; no invariant constrains them to
// finite values (see IsValid).
type Vector2D struct {
	X float32
	Y float32
}

// NewZero returns the (0,0) vector.
func NewZero() *Vector2D {
	return &Vector2D{}
}

// New returns a vector with the given components.
// The float64 values are truncated to float32.
func New(x, y float64) *Vector2D {
	return &Vector2D{X: float32(x), Y: float32(y)}
}

// FromGeomPoint returns a vector with the point's ordinates truncated to float32.
func FromGeomPoint(p geom.Point) *Vector2D {
	return New(p.X(), p.Y())
}

// FromAngle returns the unit vector pointing at the given angle
// in degrees relative to the x-axis.
func FromAngle(degrees float64) *Vector2D {
	return &Vector2D{X: floathelp.CosDeg(degrees), Y: floathelp.SinDeg(degrees)}
}

// Clone returns a copy of the vector.
func (vec *Vector2D) Clone() *Vector2D {
	return &Vector2D{X: vec.X, Y: vec.Y}
}

// SetZero zeroes both components.
func (vec *Vector2D) SetZero() {
	vec.X = 0
	vec.Y = 0
}

// Reset restores the zero vector, readying the instance for a new logical
// lifetime. It is the whole contract an external pool manager relies on.
func (vec *Vector2D) Reset() {
	vec.SetZero()
}

// Set overwrites the components, truncating to float32, and returns the vector.
func (vec *Vector2D) Set(x, y float64) *Vector2D {
	vec.X = float32(x)
	vec.Y = float32(y)
	return vec
}

// SetVector overwrites the components with those of other and returns the vector.
func (vec *Vector2D) SetVector(other *Vector2D) *Vector2D {
	vec.X = other.X
	vec.Y = other.Y
	return vec
}

// SetGeomPoint overwrites the components with the point's ordinates
// truncated to float32 and returns the vector.
func (vec *Vector2D) SetGeomPoint(p geom.Point) *Vector2D {
	return vec.Set(p.X(), p.Y())
}

// SetFromAngle points the vector at the given angle in degrees
// with unit length and returns it.
func (vec *Vector2D) SetFromAngle(degrees float64) *Vector2D {
	vec.X = floathelp.CosDeg(degrees)
	vec.Y = floathelp.SinDeg(degrees)
	return vec
}

// Add returns the sum of this vector and other; neither is altered.
func (vec *Vector2D) Add(other *Vector2D) *Vector2D {
	return &Vector2D{X: vec.X + other.X, Y: vec.Y + other.Y}
}

// AddXY returns the sum of this vector and the given components; the vector is not altered.
func (vec *Vector2D) AddXY(otherX, otherY float64) *Vector2D {
	return New(float64(vec.X)+otherX, float64(vec.Y)+otherY)
}

// AddGeomPoint returns the sum of this vector and the point; the vector is not altered.
func (vec *Vector2D) AddGeomPoint(p geom.Point) *Vector2D {
	return vec.AddXY(p.X(), p.Y())
}

// Sub returns the difference of this vector and other; neither is altered.
func (vec *Vector2D) Sub(other *Vector2D) *Vector2D {
	return &Vector2D{X: vec.X - other.X, Y: vec.Y - other.Y}
}

// SubXY returns the difference of this vector and the given components; the vector is not altered.
func (vec *Vector2D) SubXY(otherX, otherY float64) *Vector2D {
	return New(float64(vec.X)-otherX, float64(vec.Y)-otherY)
}

// SubGeomPoint returns the difference of this vector and the point; the vector is not altered.
func (vec *Vector2D) SubGeomPoint(p geom.Point) *Vector2D {
	return vec.SubXY(p.X(), p.Y())
}

// Mul returns this vector scaled by a; the vector is not altered.
// The product is truncated to float32.
func (vec *Vector2D) Mul(a float64) *Vector2D {
	return New(float64(vec.X)*a, float64(vec.Y)*a)
}

// Negate returns the negation of this vector; the vector is not altered.
func (vec *Vector2D) Negate() *Vector2D {
	return &Vector2D{X: -vec.X, Y: -vec.Y}
}

// AddLocal adds other to this vector and returns it.
func (vec *Vector2D) AddLocal(other *Vector2D) *Vector2D {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// AddLocalXY adds the given components to this vector and returns it.
func (vec *Vector2D) AddLocalXY(otherX, otherY float64) *Vector2D {
	vec.X = float32(float64(vec.X) + otherX)
	vec.Y = float32(float64(vec.Y) + otherY)
	return vec
}

// SubLocal subtracts other from this vector and returns it.
func (vec *Vector2D) SubLocal(other *Vector2D) *Vector2D {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// SubLocalXY subtracts the given components from this vector and returns it.
func (vec *Vector2D) SubLocalXY(otherX, otherY float64) *Vector2D {
	vec.X = float32(float64(vec.X) - otherX)
	vec.Y = float32(float64(vec.Y) - otherY)
	return vec
}

// MulLocal scales this vector by a and returns it.
// The products are truncated to float32.
func (vec *Vector2D) MulLocal(a float64) *Vector2D {
	vec.X = float32(float64(vec.X) * a)
	vec.Y = float32(float64(vec.Y) * a)
	return vec
}

// NegateLocal flips this vector and returns it.
func (vec *Vector2D) NegateLocal() *Vector2D {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// Abs returns a vector with the absolute values of the components;
// the vector is not altered.
func (vec *Vector2D) Abs() *Vector2D {
	return &Vector2D{X: floathelp.Abs(vec.X), Y: floathelp.Abs(vec.Y)}
}

// AbsLocal makes both components positive and returns the vector.
func (vec *Vector2D) AbsLocal() *Vector2D {
	vec.X = floathelp.Abs(vec.X)
	vec.Y = floathelp.Abs(vec.Y)
	return vec
}

// Skew returns the skew vector (-y, x), this vector rotated by 90 degrees,
// such that Dot(vec.Skew(), other) == Cross(vec, other).
func (vec *Vector2D) Skew() *Vector2D {
	return &Vector2D{X: -vec.Y, Y: vec.X}
}

// SkewToOut writes the skew vector (-y, x) into out instead of allocating.
func (vec *Vector2D) SkewToOut(out *Vector2D) {
	out.X = -vec.Y
	out.Y = vec.X
}

// Length is the length of the vector, in float32 precision.
func (vec *Vector2D) Length() float32 {
	return floathelp.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// LengthSquared is the squared length of the vector, avoiding the square root
// for comparison use.
func (vec *Vector2D) LengthSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y
}

// Distance is the euclidean distance to other, computed in float64
// to reduce precision loss in comparisons.
func (vec *Vector2D) Distance(other *Vector2D) float64 {
	return vec.DistanceXY(float64(other.X), float64(other.Y))
}

// DistanceGeomPoint is the euclidean distance to the point, in float64.
func (vec *Vector2D) DistanceGeomPoint(p geom.Point) float64 {
	return vec.DistanceXY(p.X(), p.Y())
}

// DistanceXY is the euclidean distance to the given coordinates, in float64.
func (vec *Vector2D) DistanceXY(otherX, otherY float64) float64 {
	dx := otherX - float64(vec.X)
	dy := otherY - float64(vec.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquaredXY is the squared euclidean distance to the given
// coordinates, in float64, avoiding the square root for comparison use.
func (vec *Vector2D) DistanceSquaredXY(otherX, otherY float64) float64 {
	dx := otherX - float64(vec.X)
	dy := otherY - float64(vec.Y)
	return dx*dx + dy*dy
}

// DistanceLessThanOrEqual reports whether the given coordinates lie within
// distance of the vector, comparing squared distances to avoid the square
// root. distance must not be negative.
func (vec *Vector2D) DistanceLessThanOrEqual(otherX, otherY, distance float64) bool {
	return vec.DistanceSquaredXY(otherX, otherY) <= distance*distance
}

// DistanceGreaterThanOrEqual reports whether the given coordinates lie at or
// beyond distance from the vector, comparing squared distances to avoid the
// square root. distance must not be negative.
func (vec *Vector2D) DistanceGreaterThanOrEqual(otherX, otherY, distance float64) bool {
	return vec.DistanceSquaredXY(otherX, otherY) >= distance*distance
}

// Normalize scales this vector to unit length and returns the length it had
// before. A vector shorter than floathelp.Epsilon is left unchanged and 0 is
// returned, guarding the division by a near-zero length.
func (vec *Vector2D) Normalize() float32 {
	length := vec.Length()
	if length < floathelp.Epsilon {
		return 0
	}

	invLength := 1.0 / length
	vec.X *= invLength
	vec.Y *= invLength
	return length
}

// NormalizeLocal normalizes this vector and returns it for chaining.
// Same guard as Normalize: a near-zero vector is left unchanged.
func (vec *Vector2D) NormalizeLocal() *Vector2D {
	vec.Normalize()
	return vec
}

// NormalizeVec returns a new unit-length vector in the same direction,
// or a new zero vector when this vector is shorter than floathelp.Epsilon.
// The vector itself is never altered.
func (vec *Vector2D) NormalizeVec() *Vector2D {
	length := vec.Length()
	if length < floathelp.Epsilon {
		return &Vector2D{}
	}

	invLength := 1.0 / length
	return &Vector2D{X: vec.X * invLength, Y: vec.Y * invLength}
}

// Midpoint returns a new vector halfway between this vector and other.
func (vec *Vector2D) Midpoint(other *Vector2D) *Vector2D {
	return &Vector2D{
		X: vec.X + (other.X-vec.X)/2,
		Y: vec.Y + (other.Y-vec.Y)/2,
	}
}

// MidpointGeomPoint returns a new vector halfway between this vector and the point.
func (vec *Vector2D) MidpointGeomPoint(p geom.Point) *Vector2D {
	return New(
		float64(vec.X)+(p.X()-float64(vec.X))/2,
		float64(vec.Y)+(p.Y()-float64(vec.Y))/2,
	)
}

// Angle is the angle in degrees between this vector and the x-axis (1, 0).
func (vec *Vector2D) Angle() float32 {
	return vec.AngleXY(1, 0)
}

// AngleVector is the angle in degrees between this vector and other.
func (vec *Vector2D) AngleVector(other *Vector2D) float32 {
	return vec.AngleXY(float64(other.X), float64(other.Y))
}

// AngleGeomPoint is the angle in degrees between this vector and the point.
func (vec *Vector2D) AngleGeomPoint(p geom.Point) float32 {
	return vec.AngleXY(p.X(), p.Y())
}

// AngleXY is the angle in degrees between this vector and (otherX, otherY).
// It is the raw difference of the two atan2 angles and is NOT wrapped into
// (-180, 180]; near the boundary the result can leave that range. Callers
// needing a canonical range must wrap it themselves.
func (vec *Vector2D) AngleXY(otherX, otherY float64) float32 {
	angle1 := floathelp.ToDegrees(math.Atan2(float64(vec.Y), float64(vec.X)))
	angle2 := floathelp.ToDegrees(math.Atan2(otherY, otherX))

	return float32(angle1 - angle2)
}

// IsValid reports whether both components are valid, non-infinite floating
// point numbers. NaN or infinite components are allowed to exist; this query
// is how callers detect them.
func (vec *Vector2D) IsValid() bool {
	return floathelp.IsFinite(vec.X) && floathelp.IsFinite(vec.Y)
}

// ToGeomPoint returns the vector as a geom.Point. Always allocates.
func (vec *Vector2D) ToGeomPoint() geom.Point {
	return geom.Point{float64(vec.X), float64(vec.Y)}
}

// Equals reports whether both components have pairwise identical bit
// patterns. This deviates from IEEE numeric comparison: +0 and -0 compare
// unequal, and two NaNs with identical bits compare equal. That keeps
// Equals consistent with Hash for map and set use.
func (vec *Vector2D) Equals(other *Vector2D) bool {
	return math.Float32bits(vec.X) == math.Float32bits(other.X) &&
		math.Float32bits(vec.Y) == math.Float32bits(other.Y)
}

// Hash mixes the bit patterns of both components with an odd prime.
// Vectors that are Equals hash identically.
func (vec *Vector2D) Hash() uint32 {
	const prime = 31
	result := uint32(1)
	result = prime*result + math.Float32bits(vec.X)
	result = prime*result + math.Float32bits(vec.Y)
	return result
}

// EqualsGeomPoint reports whether the point, truncated to float32, matches
// this vector within floathelp.Epsilon per component. Unlike Equals this is
// a tolerance-based comparison.
func (vec *Vector2D) EqualsGeomPoint(p geom.Point) bool {
	return floathelp.IsEqual(vec.X, float32(p.X())) && floathelp.IsEqual(vec.Y, float32(p.Y()))
}

func (vec *Vector2D) String() string {
	return fmt.Sprintf("(%v,%v)", vec.X, vec.Y)
}
