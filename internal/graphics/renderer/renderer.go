package renderer

import (
	"fmt"

	"globe/internal/interaction"
	"globe/internal/profiling"
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	scene       *scene.Scene
}

// NewRenderer configures global GL state and initializes rs in order
func NewRenderer(sc *scene.Scene, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r := &Renderer{renderables: rs, scene: sc}

	for i, renderable := range rs {
		if err := renderable.Init(); err != nil {
			// Release what was already set up
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return r, nil
}

// Render clears the frame and draws every renderable in order
func (r *Renderer) Render(state *interaction.State, dt float64) {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	defer profiling.Track("renderer.total")()

	cam := r.scene.Camera
	ctx := RenderContext{
		Camera: cam,
		Scene:  r.scene,
		State:  state,
		DT:     dt,
		View:   cam.GetViewMatrix(),
		Proj:   cam.GetProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport to the framebuffer and passes the
// logical window size to the camera and every renderable
func (r *Renderer) UpdateViewport(fbWidth, fbHeight, winWidth, winHeight int) {
	if fbWidth > 0 && fbHeight > 0 {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	}
	r.scene.Camera.SetViewport(winWidth, winHeight)
	for _, renderable := range r.renderables {
		renderable.SetViewport(winWidth, winHeight)
	}
}
