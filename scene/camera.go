package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/otmanesabir/OpenRT/types"
)

// Frustum stores the ray directions at the four corners of the camera
// frustum. Per-pixel rays are generated by bilinear interpolation of the
// corner rays, which avoids a matrix multiply per pixel.
type Frustum [4]types.Vec3

func (fr Frustum) String() string {
	return fmt.Sprintf(
		"Frustum Rays:\nTL : (%3.3f, %3.3f, %3.3f)\nTR : (%3.3f, %3.3f, %3.3f)\nBL : (%3.3f, %3.3f, %3.3f)\nBR : (%3.3f, %3.3f, %3.3f)",
		fr[0][0], fr[0][1], fr[0][2],
		fr[1][0], fr[1][1], fr[1][2],
		fr[2][0], fr[2][1], fr[2][2],
		fr[3][0], fr[3][1], fr[3][2],
	)
}

// Camera is a pinhole perspective camera. After changing any of the
// public fields the caller must invoke Update to refresh the frustum.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	Frustum Frustum

	aspect float32
}

// NewCamera creates a camera with the given vertical field of view. The
// caller positions it via the public fields and calls Update.
func NewCamera(fov float32) *Camera {
	return &Camera{
		Up:     types.Vec3{0, 1, 0},
		LookAt: types.Vec3{0, 0, -1},
		FOV:    fov,
		aspect: 1,
	}
}

// SetupFrame sets the output aspect ratio from frame dimensions and
// refreshes the frustum.
func (c *Camera) SetupFrame(frameW, frameH uint32) {
	c.aspect = float32(frameW) / float32(frameH)
	c.Update()
}

// Update recalculates the frustum corner rays from the camera fields.
func (c *Camera) Update() {
	dir := c.LookAt.Sub(c.Position).Normalize()
	right := dir.Cross(c.Up).Normalize()
	up := right.Cross(dir)

	halfH := math32.Tan(c.FOV * math32.Pi / 360)
	halfW := halfH * c.aspect

	// Corner order: TL, TR, BL, BR.
	c.Frustum[0] = dir.Add(up.Mul(halfH)).Sub(right.Mul(halfW)).Normalize()
	c.Frustum[1] = dir.Add(up.Mul(halfH)).Add(right.Mul(halfW)).Normalize()
	c.Frustum[2] = dir.Sub(up.Mul(halfH)).Sub(right.Mul(halfW)).Normalize()
	c.Frustum[3] = dir.Sub(up.Mul(halfH)).Add(right.Mul(halfW)).Normalize()
}

// PrimaryRay generates the ray through the pixel center at (x, y) for a
// frame of the given dimensions.
func (c *Camera) PrimaryRay(x, y, frameW, frameH uint32) Ray {
	u := (float32(x) + 0.5) / float32(frameW)
	v := (float32(y) + 0.5) / float32(frameH)

	top := c.Frustum[0].Mul(1 - u).Add(c.Frustum[1].Mul(u))
	bottom := c.Frustum[2].Mul(1 - u).Add(c.Frustum[3].Mul(u))
	dir := top.Mul(1 - v).Add(bottom.Mul(v))

	return NewRay(c.Position, dir)
}
