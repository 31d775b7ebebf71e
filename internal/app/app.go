// Package app runs the viewer: it owns the window, feeds input into the
// interaction controllers and drives the renderer once per frame.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"globe/internal/assets"
	"globe/internal/config"
	"globe/internal/graphics"
	"globe/internal/graphics/renderables/atmosphere"
	"globe/internal/graphics/renderables/globe"
	"globe/internal/graphics/renderables/hud"
	"globe/internal/graphics/renderables/stars"
	"globe/internal/graphics/renderables/ui"
	"globe/internal/graphics/renderables/wireframe"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/input"
	"globe/internal/interaction"
	"globe/internal/profiling"
	"globe/internal/scene"
	"globe/internal/ui/menu"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 50 * time.Millisecond

type App struct {
	cfg    *config.Config
	window *glfw.Window
	input  *input.InputManager

	scene    *scene.Scene
	state    *interaction.State
	parallax *interaction.Parallax
	driver   *interaction.Driver
	zoom     *interaction.WheelZoom
	controls *interaction.Controls
	session  *interaction.Session

	font      *graphics.FontRenderer
	wireframe *wireframe.Wireframe
	ui        *ui.UI
	hud       *hud.HUD
	panel     *menu.ControlPanel
	renderer  *renderer.Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	vsync      bool

	// Verbose prints the frame rate to stdout once per second
	Verbose bool
}

// New builds the scene, the controllers and every renderable for window.
// The GL context of window must be current.
func New(ctx context.Context, cfg *config.Config, window *glfw.Window) (*App, error) {
	// Large textures take a while to decode; overlap it with GL setup
	texture := assets.DecodeAsync(ctx, cfg.Assets.Texture, true)

	a := &App{
		cfg:        cfg,
		window:     window,
		input:      input.NewInputManager(),
		scene:      scene.New(cfg),
		state:      interaction.NewState(cfg),
		parallax:   interaction.NewParallax(cfg.Parallax),
		zoom:       interaction.NewWheelZoom(cfg.Zoom, cfg.HUD),
		fpsLimiter: NewFPSLimiter(),
		vsync:      config.GetVSync(),
	}
	a.driver = interaction.NewDriver(a.state, a.scene, a.parallax)
	a.controls = interaction.NewControls(a.state, cfg.Sliders)
	a.panel = menu.NewControlPanel(a.controls, a.state, cfg.HUD.ShowControls)

	atlas, err := graphics.BuildFontAtlas(cfg.Assets.Font, cfg.HUD.FontSize)
	if err != nil {
		return nil, fmt.Errorf("font atlas: %w", err)
	}
	winW, winH := window.GetSize()
	a.font, err = graphics.NewFontRenderer(atlas, cfg.Assets.ShadersDir, winW, winH)
	if err != nil {
		return nil, fmt.Errorf("font renderer: %w", err)
	}

	// Globe, wireframe and atmosphere all draw the same sphere
	sphere := graphics.NewSharedMesh(a.scene.Sphere)

	a.ui = ui.NewUI(cfg.Assets.ShadersDir, a.font)
	a.wireframe = wireframe.NewWireframe(cfg.Assets.ShadersDir, a.scene.Globe, sphere)
	a.hud = hud.NewHUD(cfg.HUD, a.font, a.ui, a.panel, a.zoom, window)

	earth := globe.NewGlobe(cfg.Assets.ShadersDir, cfg.Assets.Texture, a.scene.Globe, sphere)
	earth.Pending = texture

	// Draw order: background first, the additive halo after the opaque globe
	a.renderer, err = renderer.NewRenderer(a.scene,
		stars.NewStars(cfg.Assets.ShadersDir, a.scene.Stars, a.scene.StarPositions, cfg.Stars.PointSize),
		earth,
		a.wireframe,
		atmosphere.NewAtmosphere(cfg.Assets.ShadersDir, a.scene.Atmosphere, sphere),
		a.ui,
		a.hud,
	)
	if err != nil {
		a.font.Delete()
		return nil, err
	}

	a.input.Install(window)
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ww, wh := w.GetSize()
		a.renderer.UpdateViewport(width, height, ww, wh)
	})
	fbW, fbH := window.GetFramebufferSize()
	a.renderer.UpdateViewport(fbW, fbH, winW, winH)

	return a, nil
}

// Run ticks until the window is closed, Esc is pressed or ctx is done
func (a *App) Run(ctx context.Context) {
	a.lastTime = time.Now()
	a.session = interaction.NewSession(a.lastTime)

	frames := 0
	lastFPSCheck := a.lastTime

	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		a.tick()

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			if a.Verbose {
				fmt.Println("FPS: ", frames)
			}
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}

// Summary describes the session so far
func (a *App) Summary() string {
	if a.session == nil {
		return "session not started"
	}
	return a.session.Summary(time.Now())
}

// Close releases every GL resource. Call on the main thread before the
// window is destroyed.
func (a *App) Close() {
	a.renderer.Dispose()
	a.font.Delete()
	graphics.ReleaseTextures()
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	eventsStart := time.Now()
	glfw.PollEvents()
	eventsDur := time.Since(eventsStart)

	a.handleInput(now)

	updateStart := time.Now()
	func() {
		defer profiling.Track("app.update")()
		a.driver.Step(dt)
	}()
	updateDur := time.Since(updateStart)
	a.session.Frames = a.driver.Frames()

	renderStart := time.Now()
	a.renderer.Render(a.state, dt)
	a.hud.ProfilingSetRenderDuration(time.Since(renderStart))

	swapStart := time.Now()
	a.window.SwapBuffers()
	swapDur := time.Since(swapStart)

	processing := time.Since(now)
	if processing > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	a.hud.ProfilingSetLastTotalFrameDuration(processing)
	a.hud.ProfilingSetLastUpdateDuration(updateDur)
	a.hud.ProfilingSetPhases(eventsDur, swapDur)

	a.input.PostUpdate()

	if !a.vsync {
		a.fpsLimiter.Wait()
	}
}

func (a *App) handleInput(now time.Time) {
	im := a.input

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleControls) {
		a.panel.Toggle()
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		a.hud.ToggleProfiling()
	}
	if im.JustPressed(input.ActionToggleWireframe) {
		a.wireframe.Toggle()
	}
	if im.JustPressed(input.ActionReset) {
		a.resetView()
	}

	if x, y, ok := im.CursorPos(); ok {
		w, h := a.window.GetSize()
		a.state.SetPointerFromWindow(x, y, w, h)
	}

	for _, ev := range a.zoom.ApplyScroll(a.state, im.ConsumeScroll(), now) {
		a.session.RecordZoom(ev)
	}

	if a.panel.Update(a.window, im.JustPressed(input.ActionMouseLeft)) == menu.ActionResetView {
		a.resetView()
	}

	if vsync := config.GetVSync(); vsync != a.vsync {
		applySwapInterval(vsync)
		a.vsync = vsync
		log.Printf("vsync %v", vsync)
	}
}

func (a *App) resetView() {
	a.state.Reset(a.cfg)
	a.parallax.Reset()
	a.zoom.Distance.Hide()
	a.zoom.Label.Hide()
	a.session.Resets++
}
