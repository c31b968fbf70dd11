package rigid

import (
	"github.com/akmonengine/rigid/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// World owns the rigid bodies of a simulation and advances their motion
// state with a fixed timestep split into substeps.
type World struct {
	// List of all rigid bodies in the world
	Bodies []*actor.RigidBody
	// Gravity acceleration (m/s², or N/kg)
	Gravity  mgl64.Vec3
	Substeps int
	Workers  int
}

// AddBody adds a rigid body to the world
func (w *World) AddBody(body *actor.RigidBody) {
	w.Bodies = append(w.Bodies, body)
}

// RemoveBody removes a rigid body from the world
func (w *World) RemoveBody(body *actor.RigidBody) {
	k := -1
	for i, b := range w.Bodies {
		if b == body {
			k = i
			break
		}
	}

	if k != -1 {
		w.Bodies = append(w.Bodies[:k], w.Bodies[k+1:]...)
	}
}

// Step advances the simulation by dt, split into w.Substeps substeps for
// stability. Bodies below the velocity threshold long enough are put to
// sleep.
func (w *World) Step(dt float64) {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)
	h := dt / float64(max(1, w.Substeps))

	for range max(1, w.Substeps) {
		w.integrate(h)
		w.trySleep(h)
	}
}

func (w *World) integrate(h float64) {
	task(w.Workers, w.Bodies, func(body *actor.RigidBody) {
		body.Integrate(h, w.Gravity)
	})
}

// trySleep sets a body to sleep if its velocity stays under the threshold
// for a given duration. Too cheap to be worth spreading over goroutines.
func (w *World) trySleep(h float64) {
	for _, body := range w.Bodies {
		body.TrySleep(h, 0.1, 0.05)
	}
}

// RenderTransform returns the pose of a body blended between its previous
// and current step at alpha in [0, 1]. Renderers running between fixed
// simulation steps use this to avoid temporal aliasing.
func (w *World) RenderTransform(body *actor.RigidBody, alpha float64) actor.Transform {
	return actor.Interpolate(body.PreviousTransform, body.Transform, alpha)
}

// RenderMatrix returns the interpolated pose of a body as a column-major
// OpenGL matrix, ready to upload as a model matrix.
func (w *World) RenderMatrix(body *actor.RigidBody, alpha float64) [16]float32 {
	return w.RenderTransform(body, alpha).OpenGLMatrix()
}
