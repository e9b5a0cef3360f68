package vec2d

import "github.com/pdok/vec2d/floathelp"

// Dot is the dot product of a and b.
func Dot(a, b *Vector2D) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Cross is the scalar cross product of a and b.
// Cross(a, b) == -Cross(b, a).
func Cross(a, b *Vector2D) float32 {
	return a.X*b.Y - a.Y*b.X
}

// CrossVecScalar returns the cross product of vector a and scalar s,
// the vector (s*a.y, -s*a.x). The order matters: CrossScalarVec has the
// opposite sign convention.
func CrossVecScalar(a *Vector2D, s float32) *Vector2D {
	return &Vector2D{X: s * a.Y, Y: -s * a.X}
}

// CrossVecScalarToOut writes CrossVecScalar(a, s) into out.
// out may alias a.
func CrossVecScalarToOut(a *Vector2D, s float32, out *Vector2D) {
	tempY := -s * a.X
	out.X = s * a.Y
	out.Y = tempY
}

// CrossVecScalarToOutUnsafe writes CrossVecScalar(a, s) into out
// without the temporary guard. out must not alias a.
func CrossVecScalarToOutUnsafe(a *Vector2D, s float32, out *Vector2D) {
	out.X = s * a.Y
	out.Y = -s * a.X
}

// CrossScalarVec returns the cross product of scalar s and vector a,
// the vector (-s*a.y, s*a.x). The order matters: CrossVecScalar has the
// opposite sign convention.
func CrossScalarVec(s float32, a *Vector2D) *Vector2D {
	return &Vector2D{X: -s * a.Y, Y: s * a.X}
}

// CrossScalarVecToOut writes CrossScalarVec(s, a) into out.
// out may alias a.
func CrossScalarVecToOut(s float32, a *Vector2D, out *Vector2D) {
	tempY := s * a.X
	out.X = -s * a.Y
	out.Y = tempY
}

// CrossScalarVecToOutUnsafe writes CrossScalarVec(s, a) into out
// without the temporary guard. out must not alias a.
func CrossScalarVecToOutUnsafe(s float32, a *Vector2D, out *Vector2D) {
	out.X = -s * a.Y
	out.Y = s * a.X
}

// NegateToOut writes the negation of a into out.
func NegateToOut(a, out *Vector2D) {
	out.X = -a.X
	out.Y = -a.Y
}

// Min returns the component-wise minimum of a and b as a new vector.
func Min(a, b *Vector2D) *Vector2D {
	return &Vector2D{X: floathelp.Min(a.X, b.X), Y: floathelp.Min(a.Y, b.Y)}
}

// Max returns the component-wise maximum of a and b as a new vector.
func Max(a, b *Vector2D) *Vector2D {
	return &Vector2D{X: floathelp.Max(a.X, b.X), Y: floathelp.Max(a.Y, b.Y)}
}

// MinToOut writes the component-wise minimum of a and b into out.
func MinToOut(a, b, out *Vector2D) {
	out.X = floathelp.Min(a.X, b.X)
	out.Y = floathelp.Min(a.Y, b.Y)
}

// MaxToOut writes the component-wise maximum of a and b into out.
func MaxToOut(a, b, out *Vector2D) {
	out.X = floathelp.Max(a.X, b.X)
	out.Y = floathelp.Max(a.Y, b.Y)
}

// AbsVec returns a vector with the absolute values of a's components.
func AbsVec(a *Vector2D) *Vector2D {
	return a.Abs()
}

// AbsToOut writes the absolute values of a's components into out.
func AbsToOut(a, out *Vector2D) {
	out.X = floathelp.Abs(a.X)
	out.Y = floathelp.Abs(a.Y)
}
