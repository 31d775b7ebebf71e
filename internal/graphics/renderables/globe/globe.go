package globe

import (
	"fmt"

	"globe/internal/assets"
	"globe/internal/graphics"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/profiling"
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Globe draws the textured sphere with a fresnel rim
type Globe struct {
	shadersDir  string
	texturePath string
	node        *scene.Node
	sphere      *graphics.SharedMesh

	// Pending, when set, delivers the surface image decoded in the background
	Pending <-chan assets.Decoded

	shader  *graphics.Shader
	mesh    *graphics.Mesh
	texture uint32
}

// NewGlobe creates the renderable for node using the shared sphere mesh
func NewGlobe(shadersDir, texturePath string, node *scene.Node, sphere *graphics.SharedMesh) *Globe {
	return &Globe{
		shadersDir:  shadersDir,
		texturePath: texturePath,
		node:        node,
		sphere:      sphere,
	}
}

// Init compiles the shader, uploads the sphere and loads the surface texture
func (g *Globe) Init() error {
	var err error
	g.shader, err = graphics.NewShader(g.shadersDir, "globe")
	if err != nil {
		return err
	}

	if err := g.loadTexture(); err != nil {
		g.shader.Delete()
		return fmt.Errorf("globe texture: %w", err)
	}

	g.mesh = g.sphere.Acquire()
	return nil
}

func (g *Globe) loadTexture() error {
	if g.Pending == nil {
		var err error
		g.texture, err = graphics.GetTexture(g.texturePath)
		return err
	}

	d, ok := <-g.Pending
	if !ok {
		return fmt.Errorf("%s: decode abandoned", g.texturePath)
	}
	if d.Err != nil {
		return d.Err
	}
	g.texture = graphics.AddTexture(d.Path, d.Image)
	return nil
}

// Render draws the globe with its current world transform
func (g *Globe) Render(ctx renderer.RenderContext) {
	if !g.node.Visible {
		return
	}
	defer profiling.Track("renderer.globe")()

	model := g.node.WorldMatrix()

	g.shader.Use()
	g.shader.SetMatrix4("model", model)
	g.shader.SetMatrix4("view", ctx.View)
	g.shader.SetMatrix4("projection", ctx.Proj)
	g.shader.SetMatrix3("normalMatrix", ctx.View.Mul4(model).Mat3().Inv().Transpose())
	g.shader.SetInt("globeTexture", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, g.texture)

	g.mesh.Draw()

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// SetViewport is a no-op; the globe only depends on the camera
func (g *Globe) SetViewport(width, height int) {}

// Dispose releases the mesh and shader. The texture belongs to the cache.
func (g *Globe) Dispose() {
	if g.mesh != nil {
		g.sphere.Release()
		g.mesh = nil
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}
