package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure returned from Validate
var ErrInvalid = errors.New("invalid config")

// Config is the full startup configuration. Load decodes on top of
// Default(), so keys absent from the YAML file keep their defaults while
// keys set explicitly, even to zero or false, override them.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Camera     CameraConfig     `yaml:"camera"`
	Globe      GlobeConfig      `yaml:"globe"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
	Stars      StarsConfig      `yaml:"stars"`
	Parallax   ParallaxConfig   `yaml:"parallax"`
	Zoom       ZoomConfig       `yaml:"zoom"`
	Sliders    SlidersConfig    `yaml:"sliders"`
	HUD        HUDConfig        `yaml:"hud"`
	Assets     AssetsConfig     `yaml:"assets"`
}

type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FPSLimit int    `yaml:"fps_limit"`
	VSync    bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV      float32 `yaml:"fov"` // vertical, degrees
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

type GlobeConfig struct {
	Radius         float32 `yaml:"radius"`
	WidthSegments  int     `yaml:"width_segments"`
	HeightSegments int     `yaml:"height_segments"`
	Scale          float32 `yaml:"scale"`
	RotationSpeed  float32 `yaml:"rotation_speed"` // radians per frame
}

type AtmosphereConfig struct {
	Scale float32 `yaml:"scale"`
}

type StarsConfig struct {
	Count     int     `yaml:"count"`
	Spread    float32 `yaml:"spread"` // x/y extent, centered on 0
	Depth     float32 `yaml:"depth"`
	Offset    float32 `yaml:"offset"` // distance of the nearest star plane behind the origin
	Seed      int64   `yaml:"seed"`
	PointSize float32 `yaml:"point_size"`
}

// Easing modes for the parallax controller
const (
	EasingTween  = "tween"
	EasingSpring = "spring"
)

type ParallaxConfig struct {
	Easing          string  `yaml:"easing"`
	Duration        float64 `yaml:"duration"` // seconds, tween mode
	YawAmplitude    float32 `yaml:"yaw_amplitude"`
	PitchAmplitude  float32 `yaml:"pitch_amplitude"`
	SpeedCoupling   float32 `yaml:"speed_coupling"` // extra yaw swing per unit of rotation speed
	SpringFrequency float64 `yaml:"spring_frequency"`
	SpringDamping   float64 `yaml:"spring_damping"`
}

type ZoomConfig struct {
	Factor         float32       `yaml:"factor"`     // distance units per unit of wheel delta
	WheelStep      float32       `yaml:"wheel_step"` // wheel delta reported for one notch
	NoticeDuration time.Duration `yaml:"notice_duration"`
}

// SliderRange describes the input range of one on-screen slider
type SliderRange struct {
	Min  float32 `yaml:"min"`
	Max  float32 `yaml:"max"`
	Step float32 `yaml:"step"`
}

type SlidersConfig struct {
	Earth      SliderRange `yaml:"earth"`
	Atmosphere SliderRange `yaml:"atmosphere"`
	OrbitSpeed SliderRange `yaml:"orbit_speed"`
}

type HUDConfig struct {
	FontSize         int        `yaml:"font_size"`
	DistancePosition [2]float32 `yaml:"distance_position"` // pixels, top-left origin
	LabelPosition    [2]float32 `yaml:"label_position"`
	ApproachingLabel string     `yaml:"approaching_label"`
	RecedingLabel    string     `yaml:"receding_label"`
	ShowControls     bool       `yaml:"show_controls"`
	ShowProfiling    bool       `yaml:"show_profiling"`
}

type AssetsConfig struct {
	ShadersDir string `yaml:"shaders_dir"`
	Texture    string `yaml:"texture"`
	Font       string `yaml:"font"`
}

// Default returns the configuration the viewer ships with
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    1280,
			Height:   720,
			Title:    "globe",
			FPSLimit: 120,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Distance: 15,
		},
		Globe: GlobeConfig{
			Radius:         5,
			WidthSegments:  100,
			HeightSegments: 100,
			Scale:          1,
			RotationSpeed:  0.001,
		},
		Atmosphere: AtmosphereConfig{Scale: 1.1},
		Stars: StarsConfig{
			Count:     10000,
			Spread:    2000,
			Depth:     2000,
			Offset:    100,
			Seed:      1,
			PointSize: 1,
		},
		Parallax: ParallaxConfig{
			Easing:          EasingTween,
			Duration:        2,
			YawAmplitude:    1.2,
			PitchAmplitude:  1.2,
			SpeedCoupling:   10,
			SpringFrequency: 3,
			SpringDamping:   1,
		},
		Zoom: ZoomConfig{
			Factor:         0.01,
			WheelStep:      100,
			NoticeDuration: 2 * time.Second,
		},
		Sliders: SlidersConfig{
			Earth:      SliderRange{Min: 0.1, Max: 3, Step: 0.01},
			Atmosphere: SliderRange{Min: 0.1, Max: 3, Step: 0.01},
			OrbitSpeed: SliderRange{Min: -0.05, Max: 0.05, Step: 0.0005},
		},
		HUD: HUDConfig{
			FontSize:         24,
			DistancePosition: [2]float32{800, 600},
			LabelPosition:    [2]float32{400, 600},
			ApproachingLabel: "Approaching!",
			RecedingLabel:    "Receding!",
			ShowControls:     true,
		},
		Assets: AssetsConfig{
			ShadersDir: "assets/shaders",
			Texture:    "assets/textures/earth.jpg",
			Font:       "assets/fonts/OpenSans-Regular.ttf",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first setting that would make the viewer unusable.
// Camera distance and scales are deliberately left unbounded.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: camera near %v far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Globe.Radius <= 0:
		return fmt.Errorf("%w: globe radius %v", ErrInvalid, c.Globe.Radius)
	case c.Globe.WidthSegments < 3 || c.Globe.HeightSegments < 2:
		return fmt.Errorf("%w: globe segments %dx%d", ErrInvalid, c.Globe.WidthSegments, c.Globe.HeightSegments)
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: star count %d", ErrInvalid, c.Stars.Count)
	case c.Parallax.Easing != EasingTween && c.Parallax.Easing != EasingSpring:
		return fmt.Errorf("%w: easing %q", ErrInvalid, c.Parallax.Easing)
	case c.Parallax.Easing == EasingSpring && c.Parallax.SpringFrequency <= 0:
		return fmt.Errorf("%w: spring frequency %v", ErrInvalid, c.Parallax.SpringFrequency)
	case c.Parallax.Easing == EasingSpring && c.Parallax.SpringDamping <= 0:
		return fmt.Errorf("%w: spring damping %v", ErrInvalid, c.Parallax.SpringDamping)
	case c.Parallax.Duration <= 0:
		return fmt.Errorf("%w: parallax duration %v", ErrInvalid, c.Parallax.Duration)
	case c.Zoom.NoticeDuration <= 0:
		return fmt.Errorf("%w: notice duration %v", ErrInvalid, c.Zoom.NoticeDuration)
	}

	sliders := map[string]SliderRange{
		"earth":       c.Sliders.Earth,
		"atmosphere":  c.Sliders.Atmosphere,
		"orbit_speed": c.Sliders.OrbitSpeed,
	}
	for name, r := range sliders {
		if r.Min >= r.Max {
			return fmt.Errorf("%w: slider %s range [%v, %v]", ErrInvalid, name, r.Min, r.Max)
		}
		if r.Step < 0 {
			return fmt.Errorf("%w: slider %s step %v", ErrInvalid, name, r.Step)
		}
	}
	return nil
}
