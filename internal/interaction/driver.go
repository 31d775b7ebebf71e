package interaction

import "globe/internal/scene"

// Driver applies the interaction state to the scene once per frame
type Driver struct {
	State    *State
	Scene    *scene.Scene
	Parallax *Parallax

	frames uint64
}

func NewDriver(s *State, sc *scene.Scene, p *Parallax) *Driver {
	return &Driver{State: s, Scene: sc, Parallax: p}
}

// Step runs the per-frame update. Self rotation advances by RotationSpeed
// per call regardless of dt; parallax easing advances by dt seconds.
func (d *Driver) Step(dt float64) {
	sc := d.Scene
	s := d.State

	sc.Globe.Transform.Rotation[1] += s.RotationSpeed
	sc.Globe.Transform.SetUniformScale(s.GlobeScale)
	sc.Atmosphere.Transform.SetUniformScale(s.AtmosphereScale)
	sc.Camera.Distance = s.CameraDistance

	yaw, pitch := d.Parallax.Step(s, dt)
	sc.Group.Transform.Rotation[0] = pitch
	sc.Group.Transform.Rotation[1] = yaw

	d.frames++
}

// Frames returns how many times Step has run
func (d *Driver) Frames() uint64 { return d.frames }
