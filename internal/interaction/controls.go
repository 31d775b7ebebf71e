package interaction

import (
	"errors"
	"fmt"

	"globe/internal/config"

	"github.com/chewxy/math32"
)

// SliderID names one of the on-screen range inputs
type SliderID string

const (
	EarthSlider      SliderID = "EarthSlider"
	AtmosphereSlider SliderID = "AtmosphereSlider"
	OrbitSpeedSlider SliderID = "OrbitSpeedSlider"
)

var ErrUnknownSlider = errors.New("unknown slider")

// Binding ties a slider to the state field it writes
type Binding struct {
	ID    SliderID
	Label string
	Range config.SliderRange

	get func(*State) float32
	set func(*State, float32)
}

// Value reads the bound field
func (b *Binding) Value(s *State) float32 { return b.get(s) }

// Controls holds the three slider bindings in display order
type Controls struct {
	state    *State
	bindings []*Binding
}

func NewControls(s *State, cfg config.SlidersConfig) *Controls {
	return &Controls{
		state: s,
		bindings: []*Binding{
			{
				ID: EarthSlider, Label: "Earth", Range: cfg.Earth,
				get: func(s *State) float32 { return s.GlobeScale },
				set: func(s *State, v float32) { s.GlobeScale = v },
			},
			{
				ID: AtmosphereSlider, Label: "Atmosphere", Range: cfg.Atmosphere,
				get: func(s *State) float32 { return s.AtmosphereScale },
				set: func(s *State, v float32) { s.AtmosphereScale = v },
			},
			{
				ID: OrbitSpeedSlider, Label: "Orbit speed", Range: cfg.OrbitSpeed,
				get: func(s *State) float32 { return s.RotationSpeed },
				set: func(s *State, v float32) { s.RotationSpeed = v },
			},
		},
	}
}

// Bindings returns the sliders in display order
func (c *Controls) Bindings() []*Binding { return c.bindings }

// Binding looks up a slider by ID
func (c *Controls) Binding(id SliderID) (*Binding, error) {
	for _, b := range c.bindings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSlider, id)
}

// Set writes v to the field bound to id. It reports whether the value
// changed; repeating the same value is a no-op. No range check is made here,
// the widget constrains its own input.
func (c *Controls) Set(id SliderID, v float32) (bool, error) {
	b, err := c.Binding(id)
	if err != nil {
		return false, err
	}
	if b.get(c.state) == v {
		return false, nil
	}
	b.set(c.state, v)
	return true, nil
}

// Get reads the current value bound to id
func (c *Controls) Get(id SliderID) (float32, error) {
	b, err := c.Binding(id)
	if err != nil {
		return 0, err
	}
	return b.get(c.state), nil
}

// Steps is how many discrete positions the slider track has, 0 if continuous
func (b *Binding) Steps() int {
	r := b.Range
	if r.Step <= 0 {
		return 0
	}
	return int(math32.Round((r.Max-r.Min)/r.Step)) + 1
}

// Normalize maps v into the thumb position [0,1], clamping outside values
func (b *Binding) Normalize(v float32) float32 {
	r := b.Range
	n := (v - r.Min) / (r.Max - r.Min)
	return max(0, min(1, n))
}

// Denormalize maps a thumb position back into the range, snapped to Step
// relative to Min
func (b *Binding) Denormalize(n float32) float32 {
	r := b.Range
	n = max(0, min(1, n))
	v := r.Min + n*(r.Max-r.Min)
	if r.Step > 0 {
		v = r.Min + math32.Round((v-r.Min)/r.Step)*r.Step
	}
	return max(r.Min, min(r.Max, v))
}
