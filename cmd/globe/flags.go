package main

import (
	"globe/internal/config"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	width      int
	height     int
	texture    string
	fps        int
	easing     string
	vsync      bool
	profile    bool
	verbose    bool
}

func (o *options) register(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML config file; unset keys keep their defaults")
	f.IntVar(&o.width, "width", 0, "window width in pixels")
	f.IntVar(&o.height, "height", 0, "window height in pixels")
	f.StringVar(&o.texture, "texture", "", "equirectangular Earth texture (JPEG or PNG)")
	f.IntVar(&o.fps, "fps", 0, "frame limit, 0 for uncapped")
	f.StringVar(&o.easing, "easing", "", "parallax easing: tween or spring")
	f.BoolVar(&o.vsync, "vsync", false, "wait for the display refresh instead of the frame limiter")
	f.BoolVar(&o.profile, "profile", false, "start with the profiling overlay shown")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "print the frame rate once per second")
}

// load reads the config file and applies the flags the user actually set
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Window.Width = o.width
	}
	if f.Changed("height") {
		cfg.Window.Height = o.height
	}
	if f.Changed("texture") {
		cfg.Assets.Texture = o.texture
	}
	if f.Changed("fps") {
		cfg.Window.FPSLimit = o.fps
	}
	if f.Changed("easing") {
		cfg.Parallax.Easing = o.easing
	}
	if f.Changed("vsync") {
		cfg.Window.VSync = o.vsync
	}
	if f.Changed("profile") {
		cfg.HUD.ShowProfiling = o.profile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
