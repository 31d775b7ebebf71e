package atmosphere

import (
	"globe/internal/graphics"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/profiling"
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is the glow tint
var Color = mgl32.Vec3{0.3, 0.6, 1.0}

// Atmosphere draws the inside faces of a scaled sphere with additive
// blending so it reads as a halo around the globe
type Atmosphere struct {
	shadersDir string
	node       *scene.Node
	sphere     *graphics.SharedMesh

	shader *graphics.Shader
	mesh   *graphics.Mesh
}

func NewAtmosphere(shadersDir string, node *scene.Node, sphere *graphics.SharedMesh) *Atmosphere {
	return &Atmosphere{shadersDir: shadersDir, node: node, sphere: sphere}
}

func (a *Atmosphere) Init() error {
	var err error
	a.shader, err = graphics.NewShader(a.shadersDir, "atmosphere")
	if err != nil {
		return err
	}
	a.mesh = a.sphere.Acquire()
	return nil
}

func (a *Atmosphere) Render(ctx renderer.RenderContext) {
	if !a.node.Visible {
		return
	}
	defer profiling.Track("renderer.atmosphere")()

	model := a.node.WorldMatrix()

	a.shader.Use()
	a.shader.SetMatrix4("model", model)
	a.shader.SetMatrix4("view", ctx.View)
	a.shader.SetMatrix4("projection", ctx.Proj)
	a.shader.SetMatrix3("normalMatrix", ctx.View.Mul4(model).Mat3().Inv().Transpose())
	a.shader.SetVector3("glowColor", Color)

	gl.CullFace(gl.FRONT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)

	a.mesh.Draw()

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.CullFace(gl.BACK)
}

func (a *Atmosphere) SetViewport(width, height int) {}

func (a *Atmosphere) Dispose() {
	if a.mesh != nil {
		a.sphere.Release()
		a.mesh = nil
	}
	if a.shader != nil {
		a.shader.Delete()
	}
}
