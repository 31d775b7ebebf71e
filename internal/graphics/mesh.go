package graphics

import (
	"globe/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Mesh is an indexed triangle mesh on the GPU laid out as
// position(3) normal(3) uv(2)
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// NewMesh uploads g and returns the bound buffers
func NewMesh(g scene.Geometry) *Mesh {
	m := &Mesh{IndexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*floatSize, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(scene.VertexStride * floatSize)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*floatSize))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return m
}

// Draw issues the indexed draw call
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElements(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers
func (m *Mesh) Delete() {
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	*m = Mesh{}
}

// SharedMesh lets several renderables draw one uploaded geometry. The
// buffers are created on the first Acquire and deleted on the last Release.
type SharedMesh struct {
	geometry scene.Geometry
	mesh     *Mesh
	refs     int

	upload func(scene.Geometry) *Mesh
	free   func(*Mesh)
}

func NewSharedMesh(g scene.Geometry) *SharedMesh {
	return &SharedMesh{
		geometry: g,
		upload:   NewMesh,
		free:     (*Mesh).Delete,
	}
}

// Acquire returns the mesh, uploading it if nobody holds it yet
func (s *SharedMesh) Acquire() *Mesh {
	if s.refs == 0 {
		s.mesh = s.upload(s.geometry)
	}
	s.refs++
	return s.mesh
}

// Release drops one reference taken with Acquire
func (s *SharedMesh) Release() {
	if s.refs == 0 {
		return
	}
	s.refs--
	if s.refs == 0 {
		s.free(s.mesh)
		s.mesh = nil
	}
}
