package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"globe/internal/app"
	"globe/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetPrefix("globe: ")

	// SIGINT is handled by the run loop so GL teardown happens on the main thread
	closer.Init(closer.Config{
		ExitCodeOK:  0,
		ExitCodeErr: 1,
		ExitSignals: []os.Signal{syscall.SIGTERM, syscall.SIGHUP, syscall.SIGABRT},
	})
	defer closer.Close()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		closer.Fatalln(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "globe",
		Short: "Interactive rotating globe",
		Long: `globe - interactive rotating globe

Renders a textured Earth with an atmosphere glow over a starfield.
Move the pointer to tilt the view, scroll to zoom, and use the
control panel sliders to scale the globe, the atmosphere and the
orbit speed.

Keys:
  H    show or hide the control panel
  R    reset the view
  P    toggle the profiling overlay
  F    toggle the wireframe overlay
  Esc  quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.verbose)
		},
	}
	opts.register(cmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.AddCommand(configCmd)

	return cmd
}

func run(ctx context.Context, cfg *config.Config, verbose bool) error {
	// SIGINT also aborts startup, including the texture decode
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	config.ApplyRuntime(cfg)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := app.SetupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	a, err := app.New(ctx, cfg, window)
	if errors.Is(err, context.Canceled) {
		log.Println("interrupted during startup")
		return nil
	}
	if err != nil {
		return err
	}
	defer a.Close()
	a.Verbose = verbose

	closer.Bind(func() {
		log.Println(a.Summary())
	})

	log.Printf("window %dx%d, %d stars, easing %s", cfg.Window.Width, cfg.Window.Height, cfg.Stars.Count, cfg.Parallax.Easing)
	a.Run(ctx)
	return nil
}
