// Package interaction owns the mutable state shared between input callbacks
// and the per-frame update, and the controllers that read and write it.
package interaction

import "globe/internal/config"

// Pointer is the cursor position normalized to [-1,1] on both axes, +Y up
type Pointer struct {
	X, Y float32
}

// State is everything input handlers may change between frames. The render
// loop reads it once per frame; all writes are last-write-wins on the main
// thread.
type State struct {
	Pointer         Pointer
	RotationSpeed   float32 // radians added to the globe's yaw each frame
	CameraDistance  float32
	GlobeScale      float32
	AtmosphereScale float32
}

// NewState returns the state a fresh session starts with. The pointer
// starts centered so parallax targets a neutral pose until the first move.
func NewState(cfg *config.Config) *State {
	return &State{
		RotationSpeed:   cfg.Globe.RotationSpeed,
		CameraDistance:  cfg.Camera.Distance,
		GlobeScale:      cfg.Globe.Scale,
		AtmosphereScale: cfg.Atmosphere.Scale,
	}
}

// Reset restores the configured defaults in place
func (s *State) Reset(cfg *config.Config) {
	*s = *NewState(cfg)
}

// SetPointerFromWindow normalizes window coordinates (pixels, top-left
// origin) into the pointer. A zero-sized window leaves the pointer unchanged.
func (s *State) SetPointerFromWindow(x, y float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Pointer.X = float32(x/float64(width))*2 - 1
	s.Pointer.Y = -float32(y/float64(height))*2 + 1
}
