package wireframe

import (
	"globe/internal/graphics"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/profiling"
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Wireframe outlines the globe's triangles, for inspecting the tessellation
type Wireframe struct {
	shadersDir string
	node       *scene.Node
	sphere     *graphics.SharedMesh
	enabled    bool

	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewWireframe creates a disabled overlay for node
func NewWireframe(shadersDir string, node *scene.Node, sphere *graphics.SharedMesh) *Wireframe {
	return &Wireframe{shadersDir: shadersDir, node: node, sphere: sphere}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(w.shadersDir, "wireframe")
	if err != nil {
		return err
	}
	w.mesh = w.sphere.Acquire()
	return nil
}

// Toggle switches the overlay on or off
func (w *Wireframe) Toggle() {
	w.enabled = !w.enabled
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !w.enabled || !w.node.Visible {
		return
	}
	defer profiling.Track("renderer.wireframe")()

	// Slightly larger than the surface so lines win the depth test
	model := w.node.WorldMatrix().Mul4(mgl32.Scale3D(1.002, 1.002, 1.002))

	w.shader.Use()
	w.shader.SetMatrix4("mvp", ctx.Proj.Mul4(ctx.View).Mul4(model))
	w.shader.SetVector3("color", mgl32.Vec3{0.9, 0.9, 0.9})

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	w.mesh.Draw()
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (w *Wireframe) SetViewport(width, height int) {}

func (w *Wireframe) Dispose() {
	if w.mesh != nil {
		w.sphere.Release()
		w.mesh = nil
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}
