package config

import "sync"

// RenderSettings holds the settings that may change while the window is open
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means uncapped
	vsync    bool
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120,
	vsync:    false,
}

// GetFPSLimit returns the current frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values mean uncapped.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	// Clamp to something a display can actually show
	if limit > 0 && limit < 15 {
		limit = 15
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// GetVSync returns whether buffer swaps wait for the display refresh
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync sets whether buffer swaps wait for the display refresh
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

// ApplyRuntime copies the runtime part of a loaded Config into the global store
func ApplyRuntime(c *Config) {
	SetFPSLimit(c.Window.FPSLimit)
	SetVSync(c.Window.VSync)
}

// FPSLimitRange maps frame caps onto a slider track. The right end of the
// track, past Max, means uncapped (0).
type FPSLimitRange struct {
	Min, Max int
}

// DefaultFPSLimitRange is the range offered by the control panel
var DefaultFPSLimitRange = FPSLimitRange{Min: 15, Max: 240}

const uncappedThumb = 0.99

// Normalize places limit on the track; uncapped sits at the right end
func (r FPSLimitRange) Normalize(limit float32) float32 {
	if limit <= 0 {
		return 1
	}
	n := (limit - float32(r.Min)) / float32(r.Max-r.Min)
	return max(0, min(0.95, n))
}

// Denormalize returns the whole frame cap at thumb position n
func (r FPSLimitRange) Denormalize(n float32) float32 {
	if n > uncappedThumb {
		return 0
	}
	n = max(0, n)
	return float32(int(float32(r.Min) + n*float32(r.Max-r.Min) + 0.5))
}

// Steps is 0; whole-number rounding happens in Denormalize
func (r FPSLimitRange) Steps() int { return 0 }
