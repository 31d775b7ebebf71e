package stars

import (
	"globe/internal/graphics"
	renderer "globe/internal/graphics/renderer"
	"globe/internal/profiling"
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Stars draws the background starfield as white points
type Stars struct {
	shadersDir string
	node       *scene.Node
	positions  []float32
	pointSize  float32

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

// NewStars creates the renderable. positions holds xyz triples.
func NewStars(shadersDir string, node *scene.Node, positions []float32, pointSize float32) *Stars {
	return &Stars{
		shadersDir: shadersDir,
		node:       node,
		positions:  positions,
		pointSize:  pointSize,
		count:      int32(len(positions) / 3),
	}
}

func (s *Stars) Init() error {
	var err error
	s.shader, err = graphics.NewShader(s.shadersDir, "stars")
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	if len(s.positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(s.positions)*4, gl.Ptr(s.positions), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return nil
}

func (s *Stars) Render(ctx renderer.RenderContext) {
	if !s.node.Visible || s.count == 0 {
		return
	}
	defer profiling.Track("renderer.stars")()

	s.shader.Use()
	s.shader.SetMatrix4("mvp", ctx.Proj.Mul4(ctx.View).Mul4(s.node.WorldMatrix()))
	s.shader.SetFloat("pointSize", s.pointSize)
	s.shader.SetVector3("starColor", mgl32.Vec3{1, 1, 1})

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.POINTS, 0, s.count)
	gl.BindVertexArray(0)
}

func (s *Stars) SetViewport(width, height int) {}

func (s *Stars) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
