package hud

import (
	"fmt"
	"time"

	"globe/internal/config"
	"globe/internal/graphics"
	"globe/internal/graphics/renderables/ui"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/interaction"
	"globe/internal/profiling"
	"globe/internal/ui/menu"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// HUD draws the zoom notices, the FPS counter, the profiling overlay and
// the control panel on top of the scene
type HUD struct {
	cfg    config.HUDConfig
	font   *graphics.FontRenderer
	ui     *ui.UI
	panel  *menu.ControlPanel
	zoom   *interaction.WheelZoom
	window *glfw.Window
	now    func() time.Time

	showProfiling bool

	frames       int
	lastFPSCheck time.Time
	currentFPS   int

	stats ProfilingStats
}

// NewHUD wires the HUD to the shared font, the UI primitives and the
// controllers whose state it shows
func NewHUD(cfg config.HUDConfig, font *graphics.FontRenderer, u *ui.UI, panel *menu.ControlPanel, zoom *interaction.WheelZoom, window *glfw.Window) *HUD {
	return &HUD{
		cfg:           cfg,
		font:          font,
		ui:            u,
		panel:         panel,
		zoom:          zoom,
		window:        window,
		now:           time.Now,
		showProfiling: cfg.ShowProfiling,
		stats:         newProfilingStats(),
	}
}

// Init starts the FPS window; GL resources belong to the font and UI
func (h *HUD) Init() error {
	h.lastFPSCheck = h.now()
	return nil
}

// Render draws every overlay element for this frame
func (h *HUD) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.hud")()

	now := h.now()
	h.frames++
	if now.Sub(h.lastFPSCheck) >= time.Second {
		h.currentFPS = h.frames
		h.lastFPSCheck = now
		h.frames = 0
	}

	h.renderNotices(now)
	h.renderFPS()

	if h.showProfiling {
		h.RenderProfilingInfo()
	}

	if h.panel != nil {
		h.panel.Render(h.ui, h.window)
	}
}

// SetViewport is handled by the UI, which owns the font projection
func (h *HUD) SetViewport(width, height int) {}

// Dispose is a no-op; the font and UI are released by their owners
func (h *HUD) Dispose() {}

// ToggleProfiling toggles profiling overlay visibility
func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

// ShowProfiling returns whether the profiling overlay is enabled
func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}

// FPS returns the frame count of the last full second
func (h *HUD) FPS() int {
	return h.currentFPS
}

func (h *HUD) renderNotices(now time.Time) {
	white := mgl32.Vec3{1, 1, 1}
	if n := h.zoom.Distance; n.Visible(now) {
		pos := h.cfg.DistancePosition
		h.font.Render(n.Text(), pos[0], pos[1], 1.0, white)
	}
	if n := h.zoom.Label; n.Visible(now) {
		pos := h.cfg.LabelPosition
		h.font.Render(n.Text(), pos[0], pos[1], 1.0, white)
	}
}

func (h *HUD) renderFPS() {
	text := fmt.Sprintf("FPS: %d", h.currentFPS)
	h.font.Render(text, 10, 24, 0.6, mgl32.Vec3{1, 1, 1})
}
