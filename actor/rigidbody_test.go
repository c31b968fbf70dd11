package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// BodyType Tests
// =============================================================================

func TestBodyType_Constants(t *testing.T) {
	if BodyTypeDynamic == BodyTypeStatic {
		t.Error("BodyTypeDynamic and BodyTypeStatic should have different values")
	}
	if BodyTypeDynamic != 0 {
		t.Errorf("BodyTypeDynamic = %d, want 0", BodyTypeDynamic)
	}
	if BodyTypeStatic != 1 {
		t.Errorf("BodyTypeStatic = %d, want 1", BodyTypeStatic)
	}
}

// =============================================================================
// NewRigidBody Tests
// =============================================================================

func TestNewRigidBody(t *testing.T) {
	tests := []struct {
		name     string
		shape    ShapeInterface
		bodyType BodyType
		density  float64
		wantMass float64
	}{
		{
			name:     "dynamic sphere",
			shape:    &Sphere{Radius: 0.5},
			bodyType: BodyTypeDynamic,
			density:  1.0,
			wantMass: (4.0 / 3.0) * math.Pi * 0.125,
		},
		{
			name:     "dynamic unit box",
			shape:    &Box{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}},
			bodyType: BodyTypeDynamic,
			density:  2.0,
			wantMass: 2.0,
		},
		{
			name:     "static body has infinite mass",
			shape:    &Box{HalfExtents: mgl64.Vec3{10, 1, 10}},
			bodyType: BodyTypeStatic,
			density:  1.0,
			wantMass: math.Inf(1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewRigidBody(TransformIdentity(), tt.shape, tt.bodyType, tt.density)

			mass := body.Material.GetMass()
			if math.IsInf(tt.wantMass, 1) {
				if !math.IsInf(mass, 1) {
					t.Errorf("GetMass() = %v, want +Inf", mass)
				}
			} else if !floatEqual(mass, tt.wantMass, 1e-12) {
				t.Errorf("GetMass() = %v, want %v", mass, tt.wantMass)
			}

			if !body.PreviousTransform.Eq(body.Transform) {
				t.Error("previous transform should start equal to the current one")
			}
		})
	}
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// =============================================================================
// Integration Tests
// =============================================================================

func TestRigidBody_Integrate_Gravity(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)
	gravity := mgl64.Vec3{0, -9.81, 0}
	dt := 1.0 / 60.0

	body.Integrate(dt, gravity)

	// Semi-implicit Euler: velocity updates first, then position
	wantVelocity := gravity.Mul(dt)
	if !vec3Equal(body.Velocity, wantVelocity, 1e-12) {
		t.Errorf("Velocity = %v, want %v", body.Velocity, wantVelocity)
	}

	wantPosition := wantVelocity.Mul(dt)
	if !vec3Equal(body.Transform.Position(), wantPosition, 1e-12) {
		t.Errorf("Position = %v, want %v", body.Transform.Position(), wantPosition)
	}

	// The pre-step pose is kept for render interpolation
	if !vec3Equal(body.PreviousTransform.Position(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("PreviousTransform position = %v, want origin", body.PreviousTransform.Position())
	}
}

func TestRigidBody_Integrate_StaticIgnoresForces(t *testing.T) {
	transform := NewTransform(mgl64.Vec3{0, -1, 0}, mgl64.QuatIdent())
	body := NewRigidBody(transform, &Box{HalfExtents: mgl64.Vec3{10, 1, 10}}, BodyTypeStatic, 0)

	body.AddForce(mgl64.Vec3{0, 100, 0})
	body.Integrate(1.0/60.0, mgl64.Vec3{0, -9.81, 0})

	if !body.Transform.Eq(transform) {
		t.Errorf("static body moved: %v", body.Transform)
	}
	if body.Velocity.Len() != 0 {
		t.Errorf("static body gained velocity: %v", body.Velocity)
	}
}

func TestRigidBody_Integrate_AngularVelocity(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)
	body.AngularVelocity = mgl64.Vec3{0, 0, math.Pi}

	// Many small steps approximate a continuous rotation about Z
	dt := 1.0 / 600.0
	for range 300 {
		body.Integrate(dt, mgl64.Vec3{})
	}

	// After half a second at π rad/s the body should be near 90° about Z
	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	if !quatEqualUpToSign(body.Transform.Orientation(), want, 1e-4) {
		t.Errorf("orientation = %v, want ≈ 90° about Z", body.Transform.Orientation())
	}

	// The quaternion derivative update must keep the orientation unit length
	if !floatEqual(body.Transform.Orientation().Len(), 1.0, 1e-12) {
		t.Errorf("orientation norm = %v, want 1", body.Transform.Orientation().Len())
	}
}

func TestRigidBody_Integrate_LinearDamping(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)
	body.Material.LinearDamping = 1.0
	body.Velocity = mgl64.Vec3{10, 0, 0}

	dt := 0.5
	body.Integrate(dt, mgl64.Vec3{})

	want := 10 * math.Exp(-1.0*dt)
	if !floatEqual(body.Velocity.X(), want, 1e-12) {
		t.Errorf("damped velocity = %v, want %v", body.Velocity.X(), want)
	}
}

// =============================================================================
// Sleep Tests
// =============================================================================

func TestRigidBody_TrySleep(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)

	// Below the threshold but not long enough
	body.TrySleep(0.05, 0.1, 0.05)
	if body.IsSleeping {
		t.Error("body should not sleep before the time threshold")
	}

	// Long enough
	body.TrySleep(0.06, 0.1, 0.05)
	if !body.IsSleeping {
		t.Error("body should sleep after staying slow long enough")
	}

	// A sleeping body does not integrate
	body.Integrate(1.0/60.0, mgl64.Vec3{0, -9.81, 0})
	if !vec3Equal(body.Transform.Position(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("sleeping body moved: %v", body.Transform.Position())
	}
}

func TestRigidBody_AddForceAwakes(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)
	body.Sleep()

	body.AddForce(mgl64.Vec3{1, 0, 0})

	if body.IsSleeping {
		t.Error("AddForce should wake the body up")
	}
}

func TestRigidBody_TrySleep_FastBodyResetsTimer(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)
	body.SleepTimer = 0.09
	body.Velocity = mgl64.Vec3{1, 0, 0}

	body.TrySleep(0.05, 0.1, 0.05)

	if body.IsSleeping {
		t.Error("fast body should not sleep")
	}
	if body.SleepTimer != 0 {
		t.Errorf("SleepTimer = %v, want 0", body.SleepTimer)
	}
}

// =============================================================================
// Spatial Mapping Tests
// =============================================================================

func TestRigidBody_LocalWorldRoundTrip(t *testing.T) {
	transform := NewTransform(
		mgl64.Vec3{3, -2, 5},
		mgl64.QuatRotate(1.1, mgl64.Vec3{1, 2, -1}.Normalize()),
	)
	body := NewRigidBody(transform, &Sphere{Radius: 1}, BodyTypeDynamic, 1.0)

	point := mgl64.Vec3{0.5, -1, 2}
	got := body.WorldToLocal(body.LocalToWorld(point))

	if !vec3Equal(got, point, 1e-12) {
		t.Errorf("WorldToLocal(LocalToWorld(p)) = %v, want %v", got, point)
	}
}

func TestRigidBody_SupportWorld(t *testing.T) {
	// Unit box rotated 90° about Z: its local +X axis points along world +Y
	transform := NewTransform(
		mgl64.Vec3{10, 0, 0},
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	)
	body := NewRigidBody(transform, &Box{HalfExtents: mgl64.Vec3{1, 2, 1}}, BodyTypeDynamic, 1.0)

	// Along world +Y the furthest corner is a rotated (+1, ±2, ±1) corner
	support := body.SupportWorld(mgl64.Vec3{0, 1, 0})

	if !floatEqual(support.Y(), 1.0, 1e-12) {
		t.Errorf("support Y = %v, want 1 (local +X half extent)", support.Y())
	}
	if !body.Shape.GetAABB().ContainsPoint(support) {
		t.Errorf("support point %v should be inside the body AABB", support)
	}
}

// =============================================================================
// Inertia Tests
// =============================================================================

func TestRigidBody_InertiaWorld(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Box{HalfExtents: mgl64.Vec3{1, 2, 3}}, BodyTypeDynamic, 1.0)

	// With no rotation the world tensor equals the local one
	if !mat3Equal(body.GetInertiaWorld(), body.InertiaLocal, 1e-12) {
		t.Errorf("GetInertiaWorld() = %v, want %v", body.GetInertiaWorld(), body.InertiaLocal)
	}

	// Rotating 90° about Z swaps the X and Y diagonal entries
	body.Transform.SetOrientation(mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}))
	world := body.GetInertiaWorld()

	if !floatEqual(world.At(0, 0), body.InertiaLocal.At(1, 1), 1e-9) {
		t.Errorf("world I[0][0] = %v, want local I[1][1] = %v", world.At(0, 0), body.InertiaLocal.At(1, 1))
	}
	if !floatEqual(world.At(1, 1), body.InertiaLocal.At(0, 0), 1e-9) {
		t.Errorf("world I[1][1] = %v, want local I[0][0] = %v", world.At(1, 1), body.InertiaLocal.At(0, 0))
	}
}

func TestRigidBody_InverseInertiaWorld_Static(t *testing.T) {
	body := NewRigidBody(TransformIdentity(), &Box{HalfExtents: mgl64.Vec3{1, 1, 1}}, BodyTypeStatic, 0)

	if got := body.GetInverseInertiaWorld(); got != (mgl64.Mat3{}) {
		t.Errorf("static inverse inertia = %v, want zero matrix", got)
	}
}

// Helper to compare 3x3 matrices
func mat3Equal(a, b mgl64.Mat3, tolerance float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a.At(i, j)-b.At(i, j)) >= tolerance {
				return false
			}
		}
	}
	return true
}
