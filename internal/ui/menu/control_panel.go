package menu

import (
	"fmt"
	"log"

	"globe/internal/config"
	"globe/internal/graphics/renderables/ui"
	"globe/internal/interaction"
	"globe/internal/ui/widget"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	panelWidth  = float32(280)
	panelMargin = float32(16)
	sliderW     = float32(180)
	sliderH     = float32(18)
	rowSpacing  = float32(48)
	labelScale  = float32(0.55)
	valueScale  = float32(0.5)
)

type boundSlider struct {
	binding *interaction.Binding
	slider  *widget.Slider
}

// ControlPanel is the overlay with the scale and orbit sliders, the frame
// limiter and the reset button
type ControlPanel struct {
	controls *interaction.Controls
	state    *interaction.State
	sliders  []boundSlider
	fpsLimit *widget.Slider
	vsync    *widget.Toggle
	reset    *widget.Button

	visible    bool
	resetAsked bool
}

func NewControlPanel(controls *interaction.Controls, state *interaction.State, visible bool) *ControlPanel {
	cp := &ControlPanel{controls: controls, state: state, visible: visible}

	for _, b := range controls.Bindings() {
		s := widget.NewSlider(0, 0, sliderW, sliderH, b, b.Value(state), string(b.ID), func(v float32) {
			cp.set(b.ID, v)
		})
		cp.sliders = append(cp.sliders, boundSlider{binding: b, slider: s})
	}

	cp.fpsLimit = widget.NewSlider(0, 0, sliderW, sliderH, config.DefaultFPSLimitRange, float32(config.GetFPSLimit()), "fpsLimit", func(v float32) {
		config.SetFPSLimit(int(v))
	})

	cp.vsync = widget.NewToggle("VSync", 0, 0, 40, sliderH, config.GetVSync(), func(isOn bool) {
		config.SetVSync(isOn)
	})

	cp.reset = widget.NewButton("Reset view", 0, 0, sliderW, 32, func() {
		cp.resetAsked = true
	})

	return cp
}

func (p *ControlPanel) set(id interaction.SliderID, v float32) {
	if _, err := p.controls.Set(id, v); err != nil {
		log.Printf("slider %s: %v", id, err)
	}
}

func (p *ControlPanel) Visible() bool { return p.visible }

func (p *ControlPanel) Toggle() { p.visible = !p.visible }

// Update handles clicks for this frame and reports what the app should do
func (p *ControlPanel) Update(window *glfw.Window, justPressedLeft bool) Action {
	p.resetAsked = false
	if !p.visible {
		return ActionNone
	}

	p.vsync.IsOn = config.GetVSync()
	p.vsync.HandleInput(window, justPressedLeft)
	p.reset.HandleInput(window, justPressedLeft)

	if p.resetAsked {
		return ActionResetView
	}
	return ActionNone
}

// Render lays the panel out along the right edge of the window
func (p *ControlPanel) Render(u *ui.UI, window *glfw.Window) {
	if !p.visible {
		return
	}
	winW, _ := window.GetSize()
	x := float32(winW) - panelWidth - panelMargin
	y := panelMargin

	rows := len(p.sliders) + 2
	panelH := float32(rows)*rowSpacing + 64
	u.DrawFilledRect(x, y, panelWidth, panelH, mgl32.Vec3{0, 0, 0}, 0.45)

	white := mgl32.Vec3{1, 1, 1}
	grey := mgl32.Vec3{0.8, 0.8, 0.8}
	left := x + 12
	rowY := y + 28

	for _, bs := range p.sliders {
		// Resync the thumb in case the state changed elsewhere (reset key)
		if !u.Dragging() {
			bs.slider.Value = bs.binding.Value(p.state)
		}
		u.DrawText(bs.binding.Label, left, rowY, labelScale, white)
		bs.slider.SetPosition(left, rowY+6)
		bs.slider.Render(u, window)
		u.DrawText(p.formatValue(bs.binding), left+sliderW+8, rowY+20, valueScale, grey)
		rowY += rowSpacing
	}

	u.DrawText("FPS limit", left, rowY, labelScale, white)
	if !u.Dragging() {
		p.fpsLimit.Value = float32(config.GetFPSLimit())
	}
	p.fpsLimit.SetPosition(left, rowY+6)
	p.fpsLimit.Render(u, window)
	fpsText := "Uncapped"
	if limit := config.GetFPSLimit(); limit > 0 {
		fpsText = fmt.Sprintf("%d", limit)
	}
	u.DrawText(fpsText, left+sliderW+8, rowY+20, valueScale, grey)
	rowY += rowSpacing

	u.DrawText("VSync", left, rowY+14, labelScale, white)
	p.vsync.SetPosition(left+sliderW-40, rowY)
	p.vsync.Render(u, window)
	rowY += rowSpacing - 12

	p.reset.SetPosition(left, rowY)
	p.reset.Render(u, window)

	u.DrawText("H hide  R reset  P stats  F mesh", left, rowY+56, valueScale, grey)
}

func (p *ControlPanel) formatValue(b *interaction.Binding) string {
	if b.ID == interaction.OrbitSpeedSlider {
		return fmt.Sprintf("%.4f", b.Value(p.state))
	}
	return fmt.Sprintf("%.2f", b.Value(p.state))
}
