package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a local position/rotation/scale. Rotation is Euler angles in
// radians applied in X, Y, Z order.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// Identity returns a transform that leaves geometry untouched
func Identity() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// SetUniformScale scales all three axes by the same factor
func (t *Transform) SetUniformScale(s float32) {
	t.Scale = mgl32.Vec3{s, s, s}
}

// Matrix returns T * Rx * Ry * Rz * S
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation.X()))
	m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation.Y()))
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation.Z()))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
