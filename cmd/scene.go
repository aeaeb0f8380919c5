package cmd

import (
	"fmt"
	"strings"

	"github.com/otmanesabir/OpenRT/scene"
	"github.com/otmanesabir/OpenRT/types"
)

const (
	bspMaxDepth = 20
	bspMinPrims = 3
)

func parseOp(name string) (scene.BoolOp, error) {
	switch strings.ToLower(name) {
	case "union":
		return scene.OpUnion, nil
	case "intersection":
		return scene.OpIntersection, nil
	case "difference":
		return scene.OpDifference, nil
	}
	return 0, fmt.Errorf("unknown boolean operator %q; expected union, intersection or difference", name)
}

// demoScene builds the two-sphere composite used by the render and
// bench commands: unit-radius spheres offset along x so that they
// overlap, viewed from the front.
func demoScene(op scene.BoolOp, sides int) (*scene.Scene, int) {
	sphereA := scene.NewSphereSolid(
		scene.NewEyelightShader(types.Vec3{0.85, 0.35, 0.3}),
		types.Vec3{-0.55, 0, 0}, 1, sides,
	)
	sphereB := scene.NewSphereSolid(
		scene.NewEyelightShader(types.Vec3{0.3, 0.45, 0.85}),
		types.Vec3{0.55, 0, 0}, 1, sides,
	)
	nPrims := len(sphereA.Primitives()) + len(sphereB.Primitives())

	composite := scene.NewComposite(op, sphereA, sphereB, bspMaxDepth, bspMinPrims)

	sc := scene.NewScene()
	sc.BgColor = types.Vec3{0.05, 0.05, 0.08}
	sc.AddPrimitive(composite)

	camera := scene.NewCamera(45)
	camera.Position = types.Vec3{0, 0, 4}
	camera.LookAt = types.Vec3{0, 0, 0}
	camera.Update()
	sc.SetCamera(camera)

	return sc, nPrims
}
