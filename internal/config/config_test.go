package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if c.Camera.Distance != 15 {
		t.Errorf("Expected camera distance 15, got %v", c.Camera.Distance)
	}
	if c.Atmosphere.Scale != 1.1 {
		t.Errorf("Expected atmosphere scale 1.1, got %v", c.Atmosphere.Scale)
	}
	if c.Zoom.NoticeDuration != 2*time.Second {
		t.Errorf("Expected notice duration 2s, got %v", c.Zoom.NoticeDuration)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if c.Globe.Radius != Default().Globe.Radius {
		t.Errorf("Expected default radius, got %v", c.Globe.Radius)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globe.yaml")
	data := []byte(`
camera:
  distance: 20
parallax:
  easing: spring
zoom:
  notice_duration: 500ms
sliders:
  orbit_speed:
    min: -0.1
    max: 0.1
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Camera.Distance != 20 {
		t.Errorf("Expected distance 20, got %v", c.Camera.Distance)
	}
	if c.Camera.FOV != 75 {
		t.Errorf("Expected untouched fov 75, got %v", c.Camera.FOV)
	}
	if c.Parallax.Easing != EasingSpring {
		t.Errorf("Expected spring easing, got %q", c.Parallax.Easing)
	}
	if c.Zoom.NoticeDuration != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", c.Zoom.NoticeDuration)
	}
	if c.Sliders.OrbitSpeed.Min != -0.1 || c.Sliders.OrbitSpeed.Max != 0.1 {
		t.Errorf("Expected orbit range [-0.1,0.1], got %+v", c.Sliders.OrbitSpeed)
	}
}

func TestLoadExplicitZeroOverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "globe.yaml")
	data := []byte(`
globe:
  rotation_speed: 0
hud:
  show_controls: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Globe.RotationSpeed != 0 {
		t.Errorf("Expected explicit 0 rotation speed, got %v", c.Globe.RotationSpeed)
	}
	if c.HUD.ShowControls {
		t.Error("Expected explicit false to hide the controls")
	}
	if c.Globe.Scale != 1 {
		t.Errorf("Expected absent scale to keep default 1, got %v", c.Globe.Scale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 180 }},
		{"near beyond far", func(c *Config) { c.Camera.Near = 2000 }},
		{"negative radius", func(c *Config) { c.Globe.Radius = -1 }},
		{"too few segments", func(c *Config) { c.Globe.WidthSegments = 2 }},
		{"negative stars", func(c *Config) { c.Stars.Count = -5 }},
		{"unknown easing", func(c *Config) { c.Parallax.Easing = "bounce" }},
		{"zero duration", func(c *Config) { c.Parallax.Duration = 0 }},
		{"zero spring frequency", func(c *Config) {
			c.Parallax.Easing = EasingSpring
			c.Parallax.SpringFrequency = 0
		}},
		{"zero spring damping", func(c *Config) {
			c.Parallax.Easing = EasingSpring
			c.Parallax.SpringDamping = 0
		}},
		{"empty slider range", func(c *Config) { c.Sliders.Earth.Max = c.Sliders.Earth.Min }},
		{"negative step", func(c *Config) { c.Sliders.Atmosphere.Step = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateIgnoresSpringSettingsForTween(t *testing.T) {
	c := Default()
	c.Parallax.Easing = EasingTween
	c.Parallax.SpringFrequency = 0
	c.Parallax.SpringDamping = 0
	if err := c.Validate(); err != nil {
		t.Errorf("Expected tween config to validate, got %v", err)
	}
}

func TestValidateAllowsUnboundedScene(t *testing.T) {
	c := Default()
	c.Camera.Distance = -50
	c.Globe.Scale = 100
	c.Globe.RotationSpeed = -0.2
	if err := c.Validate(); err != nil {
		t.Errorf("Expected scene values to stay unbounded, got %v", err)
	}
}

func TestMarshalRoundTripKeepsDuration(t *testing.T) {
	c := Default()
	c.Zoom.NoticeDuration = 3 * time.Second
	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load of marshalled config failed: %v", err)
	}
	if back.Zoom.NoticeDuration != 3*time.Second {
		t.Errorf("Expected 3s after round trip, got %v", back.Zoom.NoticeDuration)
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("Expected uncapped (0), got %d", got)
	}
	SetFPSLimit(5)
	if got := GetFPSLimit(); got != 15 {
		t.Errorf("Expected 15, got %d", got)
	}
	SetFPSLimit(5000)
	if got := GetFPSLimit(); got != 1000 {
		t.Errorf("Expected 1000, got %d", got)
	}
}

func TestFPSLimitRange(t *testing.T) {
	r := DefaultFPSLimitRange

	tests := []struct {
		thumb float32
		limit float32
	}{
		{0, 15},
		{0.5, 128},
		{0.99, 238},
		{1, 0},
		{-0.2, 15},
	}
	for _, tt := range tests {
		if got := r.Denormalize(tt.thumb); got != tt.limit {
			t.Errorf("Denormalize(%v): expected %v, got %v", tt.thumb, tt.limit, got)
		}
	}

	if got := r.Normalize(0); got != 1 {
		t.Errorf("Expected uncapped at the right end, got %v", got)
	}
	if got := r.Normalize(15); got != 0 {
		t.Errorf("Expected 15 fps at the left end, got %v", got)
	}
	if got := r.Normalize(1000); got != 0.95 {
		t.Errorf("Expected caps above the range to stay left of uncapped, got %v", got)
	}
	if got := r.Denormalize(r.Normalize(120)); got != 120 {
		t.Errorf("Expected 120 to survive a round trip, got %v", got)
	}
}
