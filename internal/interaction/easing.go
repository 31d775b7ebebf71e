package interaction

import (
	"github.com/charmbracelet/harmonica"
)

// Axis eases one scalar toward a target that may change every frame
type Axis interface {
	// Update moves toward target by dt seconds and returns the new value
	Update(target float32, dt float64) float32
	Value() float32
	// Reset jumps to v and drops any motion in progress
	Reset(v float32)
}

// Power1Out is the quadratic ease-out curve, t clamped to [0,1]
func Power1Out(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv
}

// TweenAxis runs a fixed-duration ease-out tween. A new target restarts the
// tween from wherever the value currently is; an unchanged target lets the
// running tween finish and land exactly on it.
type TweenAxis struct {
	Duration float64 // seconds

	from, to, value float32
	elapsed         float64
	started         bool
}

func NewTweenAxis(duration float64) *TweenAxis {
	return &TweenAxis{Duration: duration}
}

func (a *TweenAxis) Update(target float32, dt float64) float32 {
	if !a.started || target != a.to {
		a.from = a.value
		a.to = target
		a.elapsed = 0
		a.started = true
	}
	if dt > 0 {
		a.elapsed += dt
	}

	if a.Duration <= 0 || a.elapsed >= a.Duration {
		a.value = a.to
		return a.value
	}
	k := float32(Power1Out(a.elapsed / a.Duration))
	a.value = a.from + (a.to-a.from)*k
	return a.value
}

func (a *TweenAxis) Value() float32 { return a.value }

func (a *TweenAxis) Reset(v float32) {
	a.from, a.to, a.value = v, v, v
	a.elapsed = a.Duration
	a.started = true
}

// SpringAxis follows the target with a damped harmonic spring
type SpringAxis struct {
	frequency float64
	damping   float64

	spring   harmonica.Spring
	springDT float64
	pos, vel float64
}

// NewSpringAxis creates a spring with the given angular frequency and
// damping ratio (1 is critically damped, no overshoot)
func NewSpringAxis(frequency, damping float64) *SpringAxis {
	return &SpringAxis{frequency: frequency, damping: damping}
}

func (a *SpringAxis) Update(target float32, dt float64) float32 {
	if dt <= 0 {
		return float32(a.pos)
	}
	// Spring coefficients are baked for one time step; rebuild when the frame time changes
	if dt != a.springDT {
		a.spring = harmonica.NewSpring(dt, a.frequency, a.damping)
		a.springDT = dt
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, float64(target))
	return float32(a.pos)
}

func (a *SpringAxis) Value() float32 { return float32(a.pos) }

func (a *SpringAxis) Reset(v float32) {
	a.pos = float64(v)
	a.vel = 0
}
