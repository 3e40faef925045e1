package gpu

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goshapes/geometry"
	"github.com/richinsley/goshapes/graphics"
	"github.com/richinsley/goshapes/shader"
)

const floatSize = 4

// Device issues the renderer's per-frame GL calls.
type Device struct {
	Compiler
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Clear(c geometry.RGBA) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) SetUniformColor(location int32, c geometry.RGBA) {
	if location < 0 {
		return
	}
	gl.Uniform4f(location, c.R, c.G, c.B, c.A)
}

// Mesh owns the VAO and buffers of one transient upload.
type Mesh struct {
	vao      uint32
	vbos     [2]uint32
	nbuffers int32
	count    int
}

func (m *Mesh) VertexCount() int { return m.count }

// Release deletes the GPU objects. Further calls do nothing.
func (m *Mesh) Release() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(0)
	gl.DeleteBuffers(m.nbuffers, &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao = 0
}

func (d *Device) Upload(positions, colors []float32) graphics.Mesh {
	m := &Mesh{count: len(positions) / 2, nbuffers: 1}
	if colors != nil {
		m.nbuffers = 2
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(m.nbuffers, &m.vbos[0])

	bindAttrib(m.vbos[0], shader.PositionAttrib, 2, positions)
	if colors != nil {
		bindAttrib(m.vbos[1], shader.ColorAttrib, 3, colors)
	}
	return m
}

func bindAttrib(vbo uint32, index uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STREAM_DRAW)
	}
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, size*floatSize, 0)
	gl.EnableVertexAttribArray(index)
}

var primitives = map[geometry.Primitive]uint32{
	geometry.TriangleFan:  gl.TRIANGLE_FAN,
	geometry.TriangleList: gl.TRIANGLES,
}

func (d *Device) Draw(mesh graphics.Mesh, prim geometry.Primitive) {
	m, ok := mesh.(*Mesh)
	if !ok || m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(primitives[prim], 0, int32(m.count))
}
