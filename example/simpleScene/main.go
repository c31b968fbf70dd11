package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/rigid"
	"github.com/akmonengine/rigid/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene creates the test scene: a spinning cube and a falling sphere
func SetupScene() (*rigid.World, *actor.RigidBody, *actor.RigidBody) {
	world := &rigid.World{
		Gravity:  mgl64.Vec3{0, -9.81, 0},
		Substeps: 4,
	}

	// Cube spinning in place around Z
	boxShape := &actor.Box{
		HalfExtents: mgl64.Vec3{1.5, 1.5, 1.5},
	}
	cubeTransform := actor.NewTransform(
		mgl64.Vec3{-5.0, 5.0, -5.0},
		mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1}),
	)
	cubeBody := actor.NewRigidBody(cubeTransform, boxShape, actor.BodyTypeDynamic, 1.0)
	cubeBody.AngularVelocity = mgl64.Vec3{0, 0, math.Pi}
	world.AddBody(cubeBody)

	// Sphere dropped from above the origin
	sphereShape := &actor.Sphere{Radius: 0.5}
	sphereTransform := actor.NewTransform(mgl64.Vec3{0, 10.0, 0}, mgl64.QuatIdent())
	sphereBody := actor.NewRigidBody(sphereTransform, sphereShape, actor.BodyTypeDynamic, 1.0)
	world.AddBody(sphereBody)

	return world, cubeBody, sphereBody
}

func main() {
	world, cubeBody, sphereBody := SetupScene()

	fmt.Println("Initial configuration:")
	fmt.Printf("  Cube:   position %v, orientation %v\n",
		cubeBody.Transform.Position(), cubeBody.Transform.Orientation())
	fmt.Printf("  Sphere: position %v\n", sphereBody.Transform.Position())
	fmt.Printf("  Gravity: %v\n", world.Gravity)
	fmt.Println()

	const dt float64 = 1.0 / 60.0
	const maxSteps int = 120

	for step := 0; step < maxSteps; step++ {
		world.Step(dt)

		if step%30 == 0 {
			fmt.Printf("step %3d: cube %v, sphere %v\n", step,
				cubeBody.Transform.Position(), sphereBody.Transform.Position())
		}
	}

	// A renderer running mid-step would draw the blended pose
	renderPose := world.RenderTransform(sphereBody, 0.5)
	fmt.Println()
	fmt.Printf("Sphere render pose at alpha=0.5: %v\n", renderPose.Position())

	// The model matrix, column-major, as OpenGL expects it
	model := world.RenderMatrix(sphereBody, 0.5)
	fmt.Println("Model matrix (columns):")
	for col := 0; col < 4; col++ {
		fmt.Printf("  [%8.4f %8.4f %8.4f %8.4f]\n",
			model[4*col], model[4*col+1], model[4*col+2], model[4*col+3])
	}

	// Round-trip through the interchange layout
	var restored actor.Transform
	restored.SetFromOpenGLMatrix(model)
	fmt.Printf("Restored from matrix: %v\n", restored.Position())
}
