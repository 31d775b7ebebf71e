package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices. It sits on the +Z axis at
// Distance and always looks down -Z, so a negative Distance puts it behind
// the origin still facing away from the globe.
type Camera struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
	Distance    float32
}

func NewCamera(width, height int, fov, near, far, distance float32) *Camera {
	c := &Camera{
		FOV:       fov,
		NearPlane: near,
		FarPlane:  far,
		Distance:  distance,
	}
	c.SetViewport(width, height)
	return c
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Distance)
}

// Position returns the camera position in world space
func (c *Camera) Position() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, c.Distance}
}

// SetViewport updates the aspect ratio, ignoring a minimized (zero) size
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}
