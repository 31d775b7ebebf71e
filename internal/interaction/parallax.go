package interaction

import "globe/internal/config"

// Parallax eases the rotation group toward an orientation derived from the
// pointer. Yaw swing grows with the globe's rotation speed, so a faster spin
// also widens the parallax.
type Parallax struct {
	YawAmplitude   float32
	PitchAmplitude float32
	SpeedCoupling  float32

	yaw   Axis
	pitch Axis
}

// NewParallax builds the controller with the easing mode from cfg
func NewParallax(cfg config.ParallaxConfig) *Parallax {
	p := &Parallax{
		YawAmplitude:   cfg.YawAmplitude,
		PitchAmplitude: cfg.PitchAmplitude,
		SpeedCoupling:  cfg.SpeedCoupling,
	}
	switch cfg.Easing {
	case config.EasingSpring:
		p.yaw = NewSpringAxis(cfg.SpringFrequency, cfg.SpringDamping)
		p.pitch = NewSpringAxis(cfg.SpringFrequency, cfg.SpringDamping)
	default:
		p.yaw = NewTweenAxis(cfg.Duration)
		p.pitch = NewTweenAxis(cfg.Duration)
	}
	return p
}

// Target returns the (yaw, pitch) the group is easing toward
func (p *Parallax) Target(s *State) (yaw, pitch float32) {
	yaw = s.Pointer.X * (p.YawAmplitude + s.RotationSpeed*p.SpeedCoupling)
	pitch = -s.Pointer.Y * p.PitchAmplitude
	return yaw, pitch
}

// Step advances the easing by dt seconds and returns the current (yaw, pitch)
func (p *Parallax) Step(s *State, dt float64) (yaw, pitch float32) {
	ty, tp := p.Target(s)
	return p.yaw.Update(ty, dt), p.pitch.Update(tp, dt)
}

// Current returns the eased (yaw, pitch) without advancing time
func (p *Parallax) Current() (yaw, pitch float32) {
	return p.yaw.Value(), p.pitch.Value()
}

// Reset snaps back to the neutral pose
func (p *Parallax) Reset() {
	p.yaw.Reset(0)
	p.pitch.Reset(0)
}
