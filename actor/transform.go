package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform places and orients a rigid body in world space: a rotation
// followed by a translation, i.e. an element of SE(3).
//
// It is a plain value type: assignment copies both fields, accessors return
// owned copies, and the operations below never mutate their receiver unless
// they take a pointer. The orientation is treated as a unit quaternion; no
// operation validates it, but every operation that produces a new orientation
// goes through mgl64 primitives that preserve unit length.
type Transform struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
}

// TransformIdentity returns the identity transform: zero translation,
// identity orientation.
func TransformIdentity() Transform {
	return Transform{
		position:    mgl64.Vec3{0, 0, 0},
		orientation: mgl64.QuatIdent(),
	}
}

// NewTransform builds a transform from a position and an orientation
// quaternion. The quaternion is assumed normalized.
func NewTransform(position mgl64.Vec3, orientation mgl64.Quat) Transform {
	return Transform{position: position, orientation: orientation}
}

// TransformFromMat3 builds a transform from a position and a 3x3 rotation
// matrix. The matrix is assumed orthonormal.
func TransformFromMat3(position mgl64.Vec3, rotation mgl64.Mat3) Transform {
	return Transform{
		position:    position,
		orientation: mgl64.Mat4ToQuat(rotation.Mat4()),
	}
}

// TransformFromMat4 builds a transform from a column-major affine matrix,
// reading the upper-left 3x3 rotation block and the translation column.
func TransformFromMat4(m mgl64.Mat4) Transform {
	return Transform{
		position:    mgl64.Vec3{m[12], m[13], m[14]},
		orientation: mgl64.Mat4ToQuat(m),
	}
}

// Position returns the translation component.
func (t Transform) Position() mgl64.Vec3 {
	return t.position
}

// Orientation returns the rotation component.
func (t Transform) Orientation() mgl64.Quat {
	return t.orientation
}

// SetPosition replaces the translation component.
func (t *Transform) SetPosition(position mgl64.Vec3) {
	t.position = position
}

// SetOrientation replaces the rotation component. The quaternion is assumed
// normalized; no validation is performed.
func (t *Transform) SetOrientation(orientation mgl64.Quat) {
	t.orientation = orientation
}

// SetToIdentity resets the transform to the identity.
func (t *Transform) SetToIdentity() {
	t.position = mgl64.Vec3{0, 0, 0}
	t.orientation = mgl64.QuatIdent()
}

// SetFromOpenGLMatrix reads a column-major 4x4 affine matrix in the OpenGL
// layout: rotation in the upper-left 3x3 block (indices 0,1,2 / 4,5,6 /
// 8,9,10), translation at indices 12,13,14.
func (t *Transform) SetFromOpenGLMatrix(m [16]float32) {
	// mgl64.Mat3 stores columns contiguously, same as the wire layout.
	rotation := mgl64.Mat3{
		float64(m[0]), float64(m[1]), float64(m[2]),
		float64(m[4]), float64(m[5]), float64(m[6]),
		float64(m[8]), float64(m[9]), float64(m[10]),
	}
	t.orientation = mgl64.Mat4ToQuat(rotation.Mat4())
	t.position = mgl64.Vec3{float64(m[12]), float64(m[13]), float64(m[14])}
}

// OpenGLMatrix writes the transform as a column-major 4x4 affine matrix in
// the OpenGL layout, including the homogeneous row (indices 3, 7, 11 are 0
// and index 15 is 1).
func (t Transform) OpenGLMatrix() [16]float32 {
	r := t.orientation.Mat4()

	return [16]float32{
		float32(r[0]), float32(r[1]), float32(r[2]), 0,
		float32(r[4]), float32(r[5]), float32(r[6]), 0,
		float32(r[8]), float32(r[9]), float32(r[10]), 0,
		float32(t.position.X()), float32(t.position.Y()), float32(t.position.Z()), 1,
	}
}

// Mat4 returns the transform as a column-major mgl64.Mat4, the same layout
// as OpenGLMatrix at full precision.
func (t Transform) Mat4() mgl64.Mat4 {
	m := t.orientation.Mat4()
	m[12] = t.position.X()
	m[13] = t.position.Y()
	m[14] = t.position.Z()

	return m
}

// Inverse returns the inverse transform: for T = (R, t) it is
// (R⁻¹, -R⁻¹·t), so that T.Mul(T.Inverse()) is the identity.
func (t Transform) Inverse() Transform {
	inverse := t.orientation.Inverse()

	return Transform{
		position:    inverse.Rotate(t.position.Mul(-1)),
		orientation: inverse,
	}
}

// Mul composes two transforms: t.Mul(u) applies u first, then t. The
// quaternion product is non-commutative, so the order matches rotation
// matrix composition.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		position:    t.position.Add(t.orientation.Rotate(u.position)),
		orientation: t.orientation.Mul(u.orientation),
	}
}

// Apply transforms a point from local space to world space: R·p + position.
// Applying the identity is the identity function, and
// t.Mul(u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Apply(point mgl64.Vec3) mgl64.Vec3 {
	return t.orientation.Rotate(point).Add(t.position)
}

// Interpolate blends two transforms: linear interpolation of the positions
// and spherical linear interpolation of the orientations. factor is
// expected in [0, 1]; values outside that range extrapolate the way the
// underlying primitives do.
func Interpolate(from, to Transform, factor float64) Transform {
	return Transform{
		position:    from.position.Mul(1 - factor).Add(to.position.Mul(factor)),
		orientation: mgl64.QuatSlerp(from.orientation, to.orientation, factor),
	}
}

// Eq reports exact component-wise equality of both fields.
func (t Transform) Eq(u Transform) bool {
	return t.position == u.position && t.orientation == u.orientation
}

// ApproxEq reports equality within the mgl64 epsilon. Orientations are
// compared as rotations, so q and -q are considered equal.
func (t Transform) ApproxEq(u Transform) bool {
	return t.ApproxEqThreshold(u, mgl64.Epsilon)
}

// ApproxEqThreshold reports equality within the given tolerance, comparing
// orientations up to the quaternion double cover.
func (t Transform) ApproxEqThreshold(u Transform, epsilon float64) bool {
	return t.position.ApproxEqualThreshold(u.position, epsilon) &&
		t.orientation.OrientationEqualThreshold(u.orientation, epsilon)
}
