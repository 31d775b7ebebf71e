package ui

import (
	"globe/internal/graphics"
	renderer "globe/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// UI draws screen-space rectangles, sliders and text. Coordinates are
// window pixels with a top-left origin, matching GLFW cursor positions.
type UI struct {
	shadersDir string
	shader     *graphics.Shader
	font       *graphics.FontRenderer
	vao        uint32
	vbo        uint32

	width, height float32

	isDraggingSlider bool
	activeSliderID   string
}

// NewUI creates a new UI renderable. font may be nil, in which case text
// calls are ignored.
func NewUI(shadersDir string, font *graphics.FontRenderer) *UI {
	return &UI{shadersDir: shadersDir, font: font, width: 1, height: 1}
}

// Init initializes the UI rendering system
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShader(u.shadersDir, "ui")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render is a no-op; widgets draw through the HUD after the scene
func (u *UI) Render(ctx renderer.RenderContext) {}

// SetViewport sets the logical window size used for pixel to NDC conversion
func (u *UI) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	u.width, u.height = float32(width), float32(height)
	if u.font != nil {
		u.font.SetViewport(width, height)
	}
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
	if u.shader != nil {
		u.shader.Delete()
	}
}

// Dragging reports whether a slider currently holds the pointer
func (u *UI) Dragging() bool {
	return u.isDraggingSlider
}

// DrawText draws text with its baseline at (x, y)
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	if u.font == nil {
		return
	}
	u.font.Render(text, x, y, scale, color)
}

// MeasureText returns the width and height of text at scale
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	if u.font == nil {
		return 0, 0
	}
	return u.font.Measure(text, scale)
}

// DrawSlider draws a horizontal slider at value (0..1) and returns the value
// after pointer interaction. sliderID must be unique so only one slider is
// captured during a drag. steps > 1 snaps to that many positions.
func (u *UI) DrawSlider(x, y, w, h float32, value float32, window *glfw.Window, steps int, sliderID string) float32 {
	u.DrawFilledRect(x, y+h*0.35, w, h*0.3, mgl32.Vec3{0.3, 0.3, 0.3}, 0.8)

	if window != nil {
		cx, cy := window.GetCursorPos()
		mouseX, mouseY := float32(cx), float32(cy)
		leftDown := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
		inside := mouseY >= y && mouseY <= y+h && mouseX >= x && mouseX <= x+w

		switch {
		case u.isDraggingSlider && u.activeSliderID == sliderID:
			if leftDown {
				value = snap((mouseX-x)/w, steps)
			} else {
				u.isDraggingSlider = false
				u.activeSliderID = ""
			}
		case !u.isDraggingSlider && leftDown && inside:
			u.isDraggingSlider = true
			u.activeSliderID = sliderID
			value = snap((mouseX-x)/w, steps)
		}
	}

	thumbWidth := float32(12)
	thumbColor := mgl32.Vec3{0.6, 0.6, 0.6}
	if u.isDraggingSlider && u.activeSliderID == sliderID {
		thumbColor = mgl32.Vec3{0.85, 0.85, 0.85}
	}
	u.DrawFilledRect(x+(w-thumbWidth)*value, y, thumbWidth, h, thumbColor, 0.9)

	return value
}

func snap(v float32, steps int) float32 {
	v = max(0, min(1, v))
	if steps > 1 {
		denom := float32(steps - 1)
		v = float32(int(v*denom+0.5)) / denom
	}
	return v
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin)
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	x0 := (x/u.width)*2 - 1
	y0 := 1 - (y/u.height)*2
	x1 := ((x+w)/u.width)*2 - 1
	y1 := 1 - ((y+h)/u.height)*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetVector4("uColor", color.Vec4(alpha))

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}
